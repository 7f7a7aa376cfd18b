// Package memory is an in-process store with the same constraints as the
// postgres schema. It backs local runs without a database and the API tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
	"github.com/jwalitptl/prescriptions-api/pkg/errors"
)

type userRow struct {
	user           model.User
	specialty      *string
	medicalHistory *string
}

// Store holds all tables behind one lock
type Store struct {
	mu             sync.RWMutex
	users          map[int64]*userRow
	prescriptions  []*model.Prescription
	nextUserID     int64
	nextPrescripID int64
}

func NewStore() *Store {
	return &Store{
		users:          make(map[int64]*userRow),
		nextUserID:     1,
		nextPrescripID: 1,
	}
}

// PingContext lets the store stand in for a database in readiness checks
func (s *Store) PingContext(_ context.Context) error { return nil }

func (s *Store) Doctors() repository.DoctorRepository             { return &doctorRepository{s} }
func (s *Store) Patients() repository.PatientRepository           { return &patientRepository{s} }
func (s *Store) Prescriptions() repository.PrescriptionRepository { return &prescriptionRepository{s} }

func (s *Store) insertUser(row *userRow, resource string) (int64, error) {
	validRole := row.user.Role == model.RoleDoctor || row.user.Role == model.RolePatient
	if row.user.Username == "" || row.user.Password == "" || !validRole {
		return 0, errors.RequiredField(fmt.Sprintf("%s is missing a required field", resource), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row.user.ID = s.nextUserID
	row.user.CreatedAt = time.Now().UTC()
	s.nextUserID++
	s.users[row.user.ID] = row
	return row.user.ID, nil
}

func (s *Store) findUser(id int64, role model.Role) (*userRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.users[id]
	if !ok || row.user.Role != role {
		return nil, false
	}
	copied := *row
	return &copied, true
}

func (s *Store) listUsers(role model.Role) []*userRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*userRow, 0)
	for id := int64(1); id < s.nextUserID; id++ {
		if row, ok := s.users[id]; ok && row.user.Role == role {
			copied := *row
			rows = append(rows, &copied)
		}
	}
	return rows
}

type doctorRepository struct{ s *Store }

func (r *doctorRepository) Save(_ context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	saved := *doctor
	id, err := r.s.insertUser(&userRow{user: saved.User, specialty: saved.Specialty}, "doctor")
	if err != nil {
		return nil, err
	}
	saved.ID = id
	return &saved, nil
}

func (r *doctorRepository) FindByID(_ context.Context, id int64) (*model.Doctor, error) {
	row, ok := r.s.findUser(id, model.RoleDoctor)
	if !ok {
		return nil, errors.NotFound("doctor", nil)
	}
	return &model.Doctor{User: row.user, Specialty: row.specialty}, nil
}

func (r *doctorRepository) FindAll(_ context.Context) ([]*model.Doctor, error) {
	doctors := make([]*model.Doctor, 0)
	for _, row := range r.s.listUsers(model.RoleDoctor) {
		doctors = append(doctors, &model.Doctor{User: row.user, Specialty: row.specialty})
	}
	return doctors, nil
}

type patientRepository struct{ s *Store }

func (r *patientRepository) Save(_ context.Context, patient *model.Patient) (*model.Patient, error) {
	saved := *patient
	id, err := r.s.insertUser(&userRow{user: saved.User, medicalHistory: saved.MedicalHistory}, "patient")
	if err != nil {
		return nil, err
	}
	saved.ID = id
	return &saved, nil
}

func (r *patientRepository) FindByID(_ context.Context, id int64) (*model.Patient, error) {
	row, ok := r.s.findUser(id, model.RolePatient)
	if !ok {
		return nil, errors.NotFound("patient", nil)
	}
	return &model.Patient{User: row.user, MedicalHistory: row.medicalHistory}, nil
}

func (r *patientRepository) FindAll(_ context.Context) ([]*model.Patient, error) {
	patients := make([]*model.Patient, 0)
	for _, row := range r.s.listUsers(model.RolePatient) {
		patients = append(patients, &model.Patient{User: row.user, MedicalHistory: row.medicalHistory})
	}
	return patients, nil
}

type prescriptionRepository struct{ s *Store }

func (r *prescriptionRepository) Save(_ context.Context, prescription *model.Prescription) (*model.Prescription, error) {
	if prescription.MedicineName == "" || prescription.Dosage == "" || prescription.Instructions == "" {
		return nil, errors.RequiredField("prescription is missing a required field", nil)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Same as the foreign keys: any user id satisfies the constraint
	if _, ok := r.s.users[prescription.DoctorID]; !ok {
		return nil, errors.ReferentialIntegrity("prescription references a record that does not exist", nil)
	}
	if _, ok := r.s.users[prescription.PatientID]; !ok {
		return nil, errors.ReferentialIntegrity("prescription references a record that does not exist", nil)
	}

	saved := *prescription
	saved.ID = r.s.nextPrescripID
	saved.CreatedAt = time.Now().UTC()
	r.s.nextPrescripID++
	r.s.prescriptions = append(r.s.prescriptions, &saved)

	out := saved
	return &out, nil
}

func (r *prescriptionRepository) FindByID(_ context.Context, id int64) (*model.Prescription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.prescriptions {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.NotFound("prescription", nil)
}

func (r *prescriptionRepository) FindAll(_ context.Context) ([]*model.Prescription, error) {
	return r.filter(func(*model.Prescription) bool { return true }), nil
}

func (r *prescriptionRepository) FindByDoctorID(_ context.Context, doctorID int64) ([]*model.Prescription, error) {
	return r.filter(func(p *model.Prescription) bool { return p.DoctorID == doctorID }), nil
}

func (r *prescriptionRepository) FindByPatientID(_ context.Context, patientID int64) ([]*model.Prescription, error) {
	return r.filter(func(p *model.Prescription) bool { return p.PatientID == patientID }), nil
}

func (r *prescriptionRepository) filter(keep func(*model.Prescription) bool) []*model.Prescription {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*model.Prescription, 0)
	for _, p := range r.s.prescriptions {
		if keep(p) {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result
}

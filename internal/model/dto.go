package model

import (
	stderrors "errors"
	"fmt"

	"github.com/jwalitptl/prescriptions-api/pkg/errors"
)

// ErrUnresolvedReference is returned when a prescription is projected without
// both of its party references
var ErrUnresolvedReference = stderrors.New("unresolved reference")

// DoctorDTO is the external shape of a doctor. Password is never exposed.
type DoctorDTO struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Specialty *string `json:"specialty"`
}

// PatientDTO is the external shape of a patient
type PatientDTO struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	MedicalHistory *string `json:"medicalHistory"`
}

// PrescriptionDTO flattens the doctor and patient references to their ids
type PrescriptionDTO struct {
	ID           int64  `json:"id"`
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
	DoctorID     int64  `json:"doctorId"`
	PatientID    int64  `json:"patientId"`
}

func NewDoctorDTO(d *Doctor) *DoctorDTO {
	return &DoctorDTO{
		ID:        d.ID,
		Username:  d.Username,
		Specialty: d.Specialty,
	}
}

func NewPatientDTO(p *Patient) *PatientDTO {
	return &PatientDTO{
		ID:             p.ID,
		Username:       p.Username,
		MedicalHistory: p.MedicalHistory,
	}
}

// NewPrescriptionDTO fails when either party reference is unresolved
func NewPrescriptionDTO(p *Prescription) (*PrescriptionDTO, error) {
	if p == nil {
		return nil, errors.Internal(fmt.Errorf("%w: nil prescription", ErrUnresolvedReference))
	}
	if p.DoctorID == 0 {
		return nil, errors.Internal(fmt.Errorf("%w: prescription %d has no doctor", ErrUnresolvedReference, p.ID))
	}
	if p.PatientID == 0 {
		return nil, errors.Internal(fmt.Errorf("%w: prescription %d has no patient", ErrUnresolvedReference, p.ID))
	}

	return &PrescriptionDTO{
		ID:           p.ID,
		MedicineName: p.MedicineName,
		Dosage:       p.Dosage,
		Instructions: p.Instructions,
		DoctorID:     p.DoctorID,
		PatientID:    p.PatientID,
	}, nil
}

// NewPrescriptionDTOs always returns a non-nil slice so empty results encode as []
func NewPrescriptionDTOs(prescriptions []*Prescription) ([]*PrescriptionDTO, error) {
	dtos := make([]*PrescriptionDTO, 0, len(prescriptions))
	for _, p := range prescriptions {
		dto, err := NewPrescriptionDTO(p)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

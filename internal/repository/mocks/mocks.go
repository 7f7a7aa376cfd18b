// Package mocks provides testify mocks of the repository interfaces
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
)

var (
	_ repository.DoctorRepository       = (*DoctorRepository)(nil)
	_ repository.PatientRepository      = (*PatientRepository)(nil)
	_ repository.PrescriptionRepository = (*PrescriptionRepository)(nil)
)

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) Save(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	args := m.Called(ctx, doctor)
	if d := args.Get(0); d != nil {
		return d.(*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DoctorRepository) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DoctorRepository) FindAll(ctx context.Context) ([]*model.Doctor, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*model.Doctor), args.Error(1)
	}
	return nil, args.Error(1)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Save(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, patient)
	if p := args.Get(0); p != nil {
		return p.(*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context) ([]*model.Patient, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*model.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Save(ctx context.Context, prescription *model.Prescription) (*model.Prescription, error) {
	args := m.Called(ctx, prescription)
	if p := args.Get(0); p != nil {
		return p.(*model.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionRepository) FindByID(ctx context.Context, id int64) (*model.Prescription, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionRepository) FindAll(ctx context.Context) ([]*model.Prescription, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*model.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]*model.Prescription, error) {
	args := m.Called(ctx, doctorID)
	if p := args.Get(0); p != nil {
		return p.([]*model.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionRepository) FindByPatientID(ctx context.Context, patientID int64) ([]*model.Prescription, error) {
	args := m.Called(ctx, patientID)
	if p := args.Get(0); p != nil {
		return p.([]*model.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

// Publisher mocks messaging.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

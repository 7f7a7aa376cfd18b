package repository

import (
	"context"

	"github.com/jwalitptl/prescriptions-api/internal/model"
)

// All repository interfaces in one file
type (
	// DoctorRepository persists users with the DOCTOR role
	DoctorRepository interface {
		Save(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
		FindByID(ctx context.Context, id int64) (*model.Doctor, error)
		FindAll(ctx context.Context) ([]*model.Doctor, error)
	}

	// PatientRepository persists users with the PATIENT role
	PatientRepository interface {
		Save(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		FindByID(ctx context.Context, id int64) (*model.Patient, error)
		FindAll(ctx context.Context) ([]*model.Patient, error)
	}

	// PrescriptionRepository lookups by party return prescriptions in insertion
	// order and never fail for an unknown party id.
	PrescriptionRepository interface {
		Save(ctx context.Context, prescription *model.Prescription) (*model.Prescription, error)
		FindByID(ctx context.Context, id int64) (*model.Prescription, error)
		FindAll(ctx context.Context) ([]*model.Prescription, error)
		FindByDoctorID(ctx context.Context, doctorID int64) ([]*model.Prescription, error)
		FindByPatientID(ctx context.Context, patientID int64) ([]*model.Prescription, error)
	}
)

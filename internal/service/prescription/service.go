package prescription

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
	"github.com/jwalitptl/prescriptions-api/pkg/errors"
	"github.com/jwalitptl/prescriptions-api/pkg/messaging"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

type Service interface {
	CreatePrescription(ctx context.Context, prescription *model.Prescription) (*model.Prescription, error)
	GetPrescriptionsByDoctorID(ctx context.Context, doctorID int64) ([]*model.Prescription, error)
	GetPrescriptionsByPatientID(ctx context.Context, patientID int64) ([]*model.Prescription, error)
}

type service struct {
	repo        repository.PrescriptionRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	publisher   messaging.Publisher
	metrics     *metrics.Metrics
}

func NewService(
	repo repository.PrescriptionRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	publisher messaging.Publisher,
	m *metrics.Metrics,
) Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &service{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		publisher:   publisher,
		metrics:     m,
	}
}

// CreatePrescription rejects references to a missing doctor or patient before
// touching the prescriptions table.
func (s *service) CreatePrescription(ctx context.Context, prescription *model.Prescription) (*model.Prescription, error) {
	if err := s.checkReferences(ctx, prescription); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, prescription)
	if err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	log.Info().
		Int64("prescription_id", saved.ID).
		Int64("doctor_id", saved.DoctorID).
		Int64("patient_id", saved.PatientID).
		Str("medicine_name", saved.MedicineName).
		Msg("prescription created")

	if s.metrics != nil {
		s.metrics.PrescriptionsCreated.Inc()
	}

	if dto, err := model.NewPrescriptionDTO(saved); err == nil {
		if err := s.publisher.Publish(ctx, messaging.EventPrescriptionCreated, dto); err != nil {
			log.Warn().Err(err).Int64("prescription_id", saved.ID).Msg("failed to publish prescription event")
		}
	}

	return saved, nil
}

func (s *service) GetPrescriptionsByDoctorID(ctx context.Context, doctorID int64) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions for doctor %d: %w", doctorID, err)
	}
	return prescriptions, nil
}

func (s *service) GetPrescriptionsByPatientID(ctx context.Context, patientID int64) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions for patient %d: %w", patientID, err)
	}
	return prescriptions, nil
}

func (s *service) checkReferences(ctx context.Context, prescription *model.Prescription) error {
	if _, err := s.doctorRepo.FindByID(ctx, prescription.DoctorID); err != nil {
		if errors.IsNotFound(err) {
			return errors.ReferentialIntegrity(fmt.Sprintf("doctor %d does not exist", prescription.DoctorID), err)
		}
		return fmt.Errorf("failed to resolve doctor: %w", err)
	}

	if _, err := s.patientRepo.FindByID(ctx, prescription.PatientID); err != nil {
		if errors.IsNotFound(err) {
			return errors.ReferentialIntegrity(fmt.Sprintf("patient %d does not exist", prescription.PatientID), err)
		}
		return fmt.Errorf("failed to resolve patient: %w", err)
	}

	return nil
}

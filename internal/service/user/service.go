package user

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
	"github.com/jwalitptl/prescriptions-api/pkg/messaging"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

// Service registers doctors and patients. The role of a new user is always
// decided here, never by the caller.
type Service interface {
	RegisterDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	RegisterPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
}

type service struct {
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	publisher   messaging.Publisher
	metrics     *metrics.Metrics
}

func NewService(
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	publisher messaging.Publisher,
	m *metrics.Metrics,
) Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &service{
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		publisher:   publisher,
		metrics:     m,
	}
}

func (s *service) RegisterDoctor(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	doctor.Role = model.RoleDoctor

	saved, err := s.doctorRepo.Save(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	s.registered(ctx, saved.User, model.NewDoctorDTO(saved))
	return saved, nil
}

func (s *service) RegisterPatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	patient.Role = model.RolePatient

	saved, err := s.patientRepo.Save(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}

	s.registered(ctx, saved.User, model.NewPatientDTO(saved))
	return saved, nil
}

func (s *service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *service) registered(ctx context.Context, u model.User, projection interface{}) {
	log.Info().
		Int64("user_id", u.ID).
		Str("role", string(u.Role)).
		Str("username", u.Username).
		Msg("user registered")

	if s.metrics != nil {
		s.metrics.RegistrationsTotal.WithLabelValues(string(u.Role)).Inc()
	}

	// Publishing is best effort; the record is already committed.
	if err := s.publisher.Publish(ctx, messaging.EventUserRegistered, map[string]interface{}{
		"role": u.Role,
		"user": projection,
	}); err != nil {
		log.Warn().Err(err).Int64("user_id", u.ID).Msg("failed to publish registration event")
	}
}

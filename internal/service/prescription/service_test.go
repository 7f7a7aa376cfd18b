package prescription

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository/mocks"
	"github.com/jwalitptl/prescriptions-api/pkg/errors"
	"github.com/jwalitptl/prescriptions-api/pkg/messaging"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

type fixture struct {
	repo      *mocks.PrescriptionRepository
	doctors   *mocks.DoctorRepository
	patients  *mocks.PatientRepository
	publisher *mocks.Publisher
	metrics   *metrics.Metrics
	svc       Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:      &mocks.PrescriptionRepository{},
		doctors:   &mocks.DoctorRepository{},
		patients:  &mocks.PatientRepository{},
		publisher: &mocks.Publisher{},
		metrics:   metrics.New("test", prometheus.NewRegistry()),
	}
	f.svc = NewService(f.repo, f.doctors, f.patients, f.publisher, f.metrics)
	return f
}

func aspirin() *model.Prescription {
	return &model.Prescription{
		MedicineName: "Aspirin",
		Dosage:       "356mg",
		Instructions: "Take once daily",
		DoctorID:     2,
		PatientID:    3,
	}
}

func TestCreatePrescription(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	candidate := aspirin()
	saved := *candidate
	saved.ID = 1

	f.doctors.On("FindByID", ctx, int64(2)).Return(&model.Doctor{User: model.User{ID: 2, Role: model.RoleDoctor}}, nil)
	f.patients.On("FindByID", ctx, int64(3)).Return(&model.Patient{User: model.User{ID: 3, Role: model.RolePatient}}, nil)
	f.repo.On("Save", ctx, candidate).Return(&saved, nil)
	f.publisher.On("Publish", ctx, messaging.EventPrescriptionCreated, mock.AnythingOfType("*model.PrescriptionDTO")).Return(nil)

	result, err := f.svc.CreatePrescription(ctx, candidate)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "Aspirin", result.MedicineName)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PrescriptionsCreated))
	f.repo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCreatePrescriptionUnknownDoctor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.doctors.On("FindByID", ctx, int64(2)).Return(nil, errors.NotFound("doctor", nil))

	_, err := f.svc.CreatePrescription(ctx, aspirin())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindReferentialIntegrity))
	assert.Contains(t, err.Error(), "doctor 2 does not exist")
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreatePrescriptionUnknownPatient(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.doctors.On("FindByID", ctx, int64(2)).Return(&model.Doctor{User: model.User{ID: 2}}, nil)
	f.patients.On("FindByID", ctx, int64(3)).Return(nil, errors.NotFound("patient", nil))

	_, err := f.svc.CreatePrescription(ctx, aspirin())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindReferentialIntegrity))
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreatePrescriptionLookupFailurePropagates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.doctors.On("FindByID", ctx, int64(2)).Return(nil, errors.Internal(stderrors.New("connection refused")))

	_, err := f.svc.CreatePrescription(ctx, aspirin())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInternal))
}

func TestGetPrescriptionsByDoctorID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p := aspirin()
	p.ID = 1
	f.repo.On("FindByDoctorID", ctx, int64(2)).Return([]*model.Prescription{p}, nil)

	result, err := f.svc.GetPrescriptionsByDoctorID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "356mg", result[0].Dosage)
}

func TestGetPrescriptionsByDoctorIDEmpty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByDoctorID", ctx, int64(99)).Return([]*model.Prescription{}, nil)

	result, err := f.svc.GetPrescriptionsByDoctorID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetPrescriptionsByPatientID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p := aspirin()
	p.ID = 1
	f.repo.On("FindByPatientID", ctx, int64(3)).Return([]*model.Prescription{p}, nil)

	result, err := f.svc.GetPrescriptionsByPatientID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].PatientID)
}

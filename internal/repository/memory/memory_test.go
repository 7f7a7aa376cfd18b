package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/pkg/errors"
)

func TestIdentitiesAreNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	d, err := store.Doctors().Save(ctx, &model.Doctor{User: model.User{Username: "a", Password: "p", Role: model.RoleDoctor}})
	require.NoError(t, err)
	p, err := store.Patients().Save(ctx, &model.Patient{User: model.User{Username: "a", Password: "p", Role: model.RolePatient}})
	require.NoError(t, err)

	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, int64(2), p.ID)

	// A doctor id does not resolve as a patient and vice versa
	_, err = store.Patients().FindByID(ctx, d.ID)
	assert.True(t, errors.IsNotFound(err))
	_, err = store.Doctors().FindByID(ctx, p.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestRequiredFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Doctors().Save(ctx, &model.Doctor{User: model.User{Password: "p", Role: model.RoleDoctor}})
	assert.True(t, errors.IsKind(err, errors.KindRequiredField))

	_, err = store.Prescriptions().Save(ctx, &model.Prescription{Dosage: "1", Instructions: "x", DoctorID: 1, PatientID: 2})
	assert.True(t, errors.IsKind(err, errors.KindRequiredField))
}

func TestPrescriptionForeignKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Prescriptions().Save(ctx, &model.Prescription{
		MedicineName: "Aspirin", Dosage: "356mg", Instructions: "Take once daily", DoctorID: 1, PatientID: 2,
	})
	assert.True(t, errors.IsKind(err, errors.KindReferentialIntegrity))
}

func TestFindByPartyKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	d, err := store.Doctors().Save(ctx, &model.Doctor{User: model.User{Username: "d", Password: "p", Role: model.RoleDoctor}})
	require.NoError(t, err)
	p, err := store.Patients().Save(ctx, &model.Patient{User: model.User{Username: "p", Password: "p", Role: model.RolePatient}})
	require.NoError(t, err)

	for _, name := range []string{"Aspirin", "Ibuprofen", "Paracetamol"} {
		_, err := store.Prescriptions().Save(ctx, &model.Prescription{
			MedicineName: name, Dosage: "1", Instructions: "daily", DoctorID: d.ID, PatientID: p.ID,
		})
		require.NoError(t, err)
	}

	byDoctor, err := store.Prescriptions().FindByDoctorID(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, byDoctor, 3)
	assert.Equal(t, "Aspirin", byDoctor[0].MedicineName)
	assert.Equal(t, "Paracetamol", byDoctor[2].MedicineName)

	none, err := store.Prescriptions().FindByPatientID(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewDoctorDTOOmitsPassword(t *testing.T) {
	d := &Doctor{
		User:      User{ID: 4, Username: "dr.suba", Password: "password", Role: RoleDoctor},
		Specialty: strPtr("Cardiology"),
	}

	body, err := json.Marshal(NewDoctorDTO(d))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"username":"dr.suba","specialty":"Cardiology"}`, string(body))
}

func TestNewPatientDTOUsesMedicalHistory(t *testing.T) {
	p := &Patient{
		User:           User{ID: 5, Username: "PacijentJedan", Password: "password", Role: RolePatient},
		MedicalHistory: strPtr("Kako si ziv"),
	}

	body, err := json.Marshal(NewPatientDTO(p))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"username":"PacijentJedan","medicalHistory":"Kako si ziv"}`, string(body))
}

func TestNewPrescriptionDTO(t *testing.T) {
	p := &Prescription{
		ID:           9,
		MedicineName: "Aspirin",
		Dosage:       "356mg",
		Instructions: "Take once daily",
		DoctorID:     4,
		PatientID:    5,
	}

	dto, err := NewPrescriptionDTO(p)
	require.NoError(t, err)

	body, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"medicineName":"Aspirin","dosage":"356mg","instructions":"Take once daily","doctorId":4,"patientId":5}`, string(body))
}

func TestNewPrescriptionDTOUnresolvedReference(t *testing.T) {
	_, err := NewPrescriptionDTO(&Prescription{ID: 1, PatientID: 5})
	assert.ErrorIs(t, err, ErrUnresolvedReference)

	_, err = NewPrescriptionDTO(&Prescription{ID: 1, DoctorID: 4})
	assert.ErrorIs(t, err, ErrUnresolvedReference)

	_, err = NewPrescriptionDTO(nil)
	assert.ErrorIs(t, err, ErrUnresolvedReference)
}

func TestNewPrescriptionDTOsEmpty(t *testing.T) {
	dtos, err := NewPrescriptionDTOs(nil)
	require.NoError(t, err)
	require.NotNil(t, dtos)

	body, err := json.Marshal(dtos)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestCreatePrescriptionRequestMissingReferences(t *testing.T) {
	req := CreatePrescriptionRequest{MedicineName: "Aspirin", Doctor: &Reference{ID: 3}}
	p := req.ToPrescription()

	assert.Equal(t, int64(3), p.DoctorID)
	assert.Zero(t, p.PatientID)
	assert.Zero(t, p.ID)
}

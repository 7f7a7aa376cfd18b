package model

import "time"

// Prescription is a medicine order issued by one doctor to one patient
type Prescription struct {
	ID           int64     `json:"id" db:"id"`
	MedicineName string    `json:"medicineName" db:"medicine_name"`
	Dosage       string    `json:"dosage" db:"dosage"`
	Instructions string    `json:"instructions" db:"instructions"`
	DoctorID     int64     `json:"doctorId" db:"doctor_id"`
	PatientID    int64     `json:"patientId" db:"patient_id"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// CreatePrescriptionRequest is the body of POST /api/prescriptions/create.
// Doctor and patient are passed as minimal records carrying only the id.
type CreatePrescriptionRequest struct {
	MedicineName string     `json:"medicineName"`
	Dosage       string     `json:"dosage"`
	Instructions string     `json:"instructions"`
	Doctor       *Reference `json:"doctor"`
	Patient      *Reference `json:"patient"`
}

// ToPrescription builds the candidate record; a missing reference becomes id 0
func (r *CreatePrescriptionRequest) ToPrescription() *Prescription {
	p := &Prescription{
		MedicineName: r.MedicineName,
		Dosage:       r.Dosage,
		Instructions: r.Instructions,
	}
	if r.Doctor != nil {
		p.DoctorID = r.Doctor.ID
	}
	if r.Patient != nil {
		p.PatientID = r.Patient.ID
	}
	return p
}

// RegisterDoctorRequest is the body of POST /api/users/register/doctor.
// Role is accepted but always overwritten.
type RegisterDoctorRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	Specialty *string `json:"specialty"`
}

func (r *RegisterDoctorRequest) ToDoctor() *Doctor {
	return &Doctor{
		User: User{
			Username: r.Username,
			Password: r.Password,
			Role:     Role(r.Role),
		},
		Specialty: r.Specialty,
	}
}

// RegisterPatientRequest is the body of POST /api/users/register/patient
type RegisterPatientRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	MedicalHistory *string `json:"medicalHistory"`
}

func (r *RegisterPatientRequest) ToPatient() *Patient {
	return &Patient{
		User: User{
			Username: r.Username,
			Password: r.Password,
			Role:     Role(r.Role),
		},
		MedicalHistory: r.MedicalHistory,
	}
}

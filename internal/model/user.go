package model

import "time"

// Role tags a user record as one of its two variants
type Role string

const (
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

// User holds the identity fields shared by doctors and patients
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"password" db:"password"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// Doctor is a user who issues prescriptions
type Doctor struct {
	User
	Specialty *string `json:"specialty" db:"specialty"`
}

// Patient is a user who receives prescriptions
type Patient struct {
	User
	MedicalHistory *string `json:"medicalHistory" db:"medical_history"`
}

package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
)

const patientColumns = `id, username, password, role, medical_history, created_at`

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Save(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	query := `
		INSERT INTO users (username, password, role, medical_history, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	saved := *patient
	saved.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		saved.Username,
		saved.Password,
		saved.Role,
		saved.MedicalHistory,
		saved.CreatedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, translateError(err, "create", "patient")
	}
	return &saved, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM users WHERE id = $1 AND role = $2`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id, model.RolePatient); err != nil {
		return nil, translateLookupError(err, "patient")
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM users WHERE role = $1 ORDER BY id`
	patients := make([]*model.Patient, 0)
	if err := r.db.SelectContext(ctx, &patients, query, model.RolePatient); err != nil {
		return nil, translateError(err, "list", "patients")
	}
	return patients, nil
}

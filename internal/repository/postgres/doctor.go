package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
)

const doctorColumns = `id, username, password, role, specialty, created_at`

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Save(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	query := `
		INSERT INTO users (username, password, role, specialty, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	saved := *doctor
	saved.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		saved.Username,
		saved.Password,
		saved.Role,
		saved.Specialty,
		saved.CreatedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, translateError(err, "create", "doctor")
	}
	return &saved, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM users WHERE id = $1 AND role = $2`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id, model.RoleDoctor); err != nil {
		return nil, translateLookupError(err, "doctor")
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM users WHERE role = $1 ORDER BY id`
	doctors := make([]*model.Doctor, 0)
	if err := r.db.SelectContext(ctx, &doctors, query, model.RoleDoctor); err != nil {
		return nil, translateError(err, "list", "doctors")
	}
	return doctors, nil
}

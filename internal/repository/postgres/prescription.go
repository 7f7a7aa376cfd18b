package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/prescriptions-api/internal/model"
	"github.com/jwalitptl/prescriptions-api/internal/repository"
)

const prescriptionColumns = `id, medicine_name, dosage, instructions, doctor_id, patient_id, created_at`

type prescriptionRepository struct {
	db *sqlx.DB
}

func NewPrescriptionRepository(db *sqlx.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Save(ctx context.Context, prescription *model.Prescription) (*model.Prescription, error) {
	query := `
		INSERT INTO prescriptions (medicine_name, dosage, instructions, doctor_id, patient_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	saved := *prescription
	saved.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, query,
		saved.MedicineName,
		saved.Dosage,
		saved.Instructions,
		saved.DoctorID,
		saved.PatientID,
		saved.CreatedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, translateError(err, "create", "prescription")
	}
	return &saved, nil
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id int64) (*model.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE id = $1`
	var prescription model.Prescription
	if err := r.db.GetContext(ctx, &prescription, query, id); err != nil {
		return nil, translateLookupError(err, "prescription")
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(ctx context.Context) ([]*model.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions ORDER BY id`
	return r.selectPrescriptions(ctx, query)
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, doctorID int64) ([]*model.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE doctor_id = $1 ORDER BY id`
	return r.selectPrescriptions(ctx, query, doctorID)
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID int64) ([]*model.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE patient_id = $1 ORDER BY id`
	return r.selectPrescriptions(ctx, query, patientID)
}

func (r *prescriptionRepository) selectPrescriptions(ctx context.Context, query string, args ...interface{}) ([]*model.Prescription, error) {
	prescriptions := make([]*model.Prescription, 0)
	if err := r.db.SelectContext(ctx, &prescriptions, query, args...); err != nil {
		return nil, translateError(err, "list", "prescriptions")
	}
	return prescriptions, nil
}

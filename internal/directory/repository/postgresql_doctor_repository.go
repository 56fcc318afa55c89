// Package repository implements data persistence for the doctor directory.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/database"
	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	apperrors "github.com/hospitalos/opdqueue/internal/errors"
)

// PostgreSQLDoctorRepository implements Doctor persistence for PostgreSQL databases.
type PostgreSQLDoctorRepository struct {
	db *sql.DB
}

// Create inserts a new doctor into the PostgreSQL database.
func (p *PostgreSQLDoctorRepository) Create(ctx context.Context, doctor *directoryDomain.Doctor) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO doctors (id, full_name, specialization, is_active, max_patients_per_day,
				  average_consultation_minutes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		doctor.ID,
		doctor.FullName,
		doctor.Specialization,
		doctor.IsActive,
		doctor.MaxPatientsPerDay,
		doctor.AverageConsultationMinutes,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create doctor")
	}
	return nil
}

// Get retrieves a doctor by ID.
func (p *PostgreSQLDoctorRepository) Get(
	ctx context.Context,
	doctorID uuid.UUID,
) (*directoryDomain.Doctor, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, full_name, specialization, is_active, max_patients_per_day,
				  average_consultation_minutes, created_at, updated_at
			  FROM doctors
			  WHERE id = $1`

	var doctor directoryDomain.Doctor
	err := querier.QueryRowContext(ctx, query, doctorID).Scan(
		&doctor.ID,
		&doctor.FullName,
		&doctor.Specialization,
		&doctor.IsActive,
		&doctor.MaxPatientsPerDay,
		&doctor.AverageConsultationMinutes,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, directoryDomain.ErrDoctorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get doctor")
	}

	return &doctor, nil
}

// List retrieves doctors ordered by full name with pagination.
func (p *PostgreSQLDoctorRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*directoryDomain.Doctor, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, full_name, specialization, is_active, max_patients_per_day,
				  average_consultation_minutes, created_at, updated_at
			  FROM doctors
			  ORDER BY full_name ASC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list doctors")
	}
	defer rows.Close() //nolint:errcheck

	var doctors []*directoryDomain.Doctor
	for rows.Next() {
		var doctor directoryDomain.Doctor
		err := rows.Scan(
			&doctor.ID,
			&doctor.FullName,
			&doctor.Specialization,
			&doctor.IsActive,
			&doctor.MaxPatientsPerDay,
			&doctor.AverageConsultationMinutes,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan doctor")
		}
		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate doctors")
	}

	return doctors, nil
}

// SetActive updates the doctor's availability flag.
func (p *PostgreSQLDoctorRepository) SetActive(
	ctx context.Context,
	doctorID uuid.UUID,
	isActive bool,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE doctors
			  SET is_active = $1, updated_at = $2
			  WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, isActive, time.Now().UTC(), doctorID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update doctor availability")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check doctor update result")
	}
	if affected == 0 {
		return directoryDomain.ErrDoctorNotFound
	}

	return nil
}

// NewPostgreSQLDoctorRepository creates a new PostgreSQL Doctor repository instance.
func NewPostgreSQLDoctorRepository(db *sql.DB) *PostgreSQLDoctorRepository {
	return &PostgreSQLDoctorRepository{db: db}
}

// Package repository implements data persistence for scheduled appointments.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	appointmentDomain "github.com/hospitalos/opdqueue/internal/appointment/domain"
	"github.com/hospitalos/opdqueue/internal/database"
	apperrors "github.com/hospitalos/opdqueue/internal/errors"
)

// PostgreSQLAppointmentRepository implements Appointment persistence for PostgreSQL databases.
type PostgreSQLAppointmentRepository struct {
	db *sql.DB
}

// Get retrieves an appointment by ID.
func (p *PostgreSQLAppointmentRepository) Get(
	ctx context.Context,
	appointmentID uuid.UUID,
) (*appointmentDomain.Appointment, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, patient_id, doctor_id, scheduled_for, status, symptoms, notes,
				  created_at, updated_at
			  FROM appointments
			  WHERE id = $1`

	var appointment appointmentDomain.Appointment
	err := querier.QueryRowContext(ctx, query, appointmentID).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.ScheduledFor,
		&appointment.Status,
		&appointment.Symptoms,
		&appointment.Notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appointmentDomain.ErrAppointmentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get appointment")
	}

	return &appointment, nil
}

// MarkCompleted sets the appointment status to completed and records the
// consultation notes.
func (p *PostgreSQLAppointmentRepository) MarkCompleted(
	ctx context.Context,
	appointmentID uuid.UUID,
	notes string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE appointments
			  SET status = $1, notes = $2, updated_at = $3
			  WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		appointmentDomain.StatusCompleted,
		notes,
		time.Now().UTC(),
		appointmentID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to complete appointment")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check appointment update result")
	}
	if affected == 0 {
		return appointmentDomain.ErrAppointmentNotFound
	}

	return nil
}

// NewPostgreSQLAppointmentRepository creates a new PostgreSQL Appointment repository instance.
func NewPostgreSQLAppointmentRepository(db *sql.DB) *PostgreSQLAppointmentRepository {
	return &PostgreSQLAppointmentRepository{db: db}
}

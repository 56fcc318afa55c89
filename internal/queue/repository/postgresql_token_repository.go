// Package repository implements data persistence for queue tokens.
// Token numbering uses a per-partition sequence row updated atomically, and the
// call operations rely on row locks so concurrent staff actions on the same
// doctor's queue serialize at the database.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/database"
	apperrors "github.com/hospitalos/opdqueue/internal/errors"
	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
)

// PostgreSQLTokenRepository implements Token persistence for PostgreSQL databases.
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

const tokenColumns = `id, patient_id, doctor_id, appointment_id, service_date, token_number,
				  status, symptoms, estimated_wait_minutes, estimate_confidence,
				  actual_wait_minutes, called_at, completed_at, cancelled_at, created_at, updated_at`

func scanToken(row interface{ Scan(...any) error }) (*queueDomain.Token, error) {
	var token queueDomain.Token
	err := row.Scan(
		&token.ID,
		&token.PatientID,
		&token.DoctorID,
		&token.AppointmentID,
		&token.ServiceDate,
		&token.TokenNumber,
		&token.Status,
		&token.Symptoms,
		&token.EstimatedWaitMinutes,
		&token.EstimateConfidence,
		&token.ActualWaitMinutes,
		&token.CalledAt,
		&token.CompletedAt,
		&token.CancelledAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Create inserts a new token into the PostgreSQL database.
func (p *PostgreSQLTokenRepository) Create(ctx context.Context, token *queueDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tokens (` + tokenColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.PatientID,
		token.DoctorID,
		token.AppointmentID,
		token.ServiceDate,
		token.TokenNumber,
		token.Status,
		token.Symptoms,
		token.EstimatedWaitMinutes,
		token.EstimateConfidence,
		token.ActualWaitMinutes,
		token.CalledAt,
		token.CompletedAt,
		token.CancelledAt,
		token.CreatedAt,
		token.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create token")
	}
	return nil
}

// Get retrieves a token by ID.
func (p *PostgreSQLTokenRepository) Get(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE id = $1`

	token, err := scanToken(querier.QueryRowContext(ctx, query, tokenID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, queueDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token")
	}

	return token, nil
}

// GetForUpdate retrieves a token by ID and locks its row for the duration of
// the surrounding transaction.
func (p *PostgreSQLTokenRepository) GetForUpdate(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE id = $1
			  FOR UPDATE`

	token, err := scanToken(querier.QueryRowContext(ctx, query, tokenID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, queueDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get token for update")
	}

	return token, nil
}

// Update persists the token's mutable fields.
func (p *PostgreSQLTokenRepository) Update(ctx context.Context, token *queueDomain.Token) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE tokens
			  SET status = $1, estimated_wait_minutes = $2, estimate_confidence = $3,
				  actual_wait_minutes = $4, called_at = $5, completed_at = $6,
				  cancelled_at = $7, updated_at = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(
		ctx,
		query,
		token.Status,
		token.EstimatedWaitMinutes,
		token.EstimateConfidence,
		token.ActualWaitMinutes,
		token.CalledAt,
		token.CompletedAt,
		token.CancelledAt,
		token.UpdatedAt,
		token.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check token update result")
	}
	if affected == 0 {
		return queueDomain.ErrTokenNotFound
	}

	return nil
}

// NextTokenNumber atomically allocates the next sequential number for a
// partition. The sequence row is created on first use.
func (p *PostgreSQLTokenRepository) NextTokenNumber(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO token_sequences (doctor_id, service_date, next_number)
			  VALUES ($1, $2, 2)
			  ON CONFLICT (doctor_id, service_date)
			  DO UPDATE SET next_number = token_sequences.next_number + 1
			  RETURNING next_number - 1`

	var number int
	err := querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate).Scan(&number)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to allocate token number")
	}

	return number, nil
}

// CountByStatus aggregates token counts per lifecycle state for a partition.
func (p *PostgreSQLTokenRepository) CountByStatus(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (queueDomain.StatusCounts, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT
				  COUNT(*) FILTER (WHERE status = 'waiting'),
				  COUNT(*) FILTER (WHERE status = 'called'),
				  COUNT(*) FILTER (WHERE status = 'completed'),
				  COUNT(*) FILTER (WHERE status = 'cancelled')
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2`

	var counts queueDomain.StatusCounts
	err := querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate).Scan(
		&counts.Waiting,
		&counts.Called,
		&counts.Completed,
		&counts.Cancelled,
	)
	if err != nil {
		return queueDomain.StatusCounts{}, apperrors.Wrap(err, "failed to count tokens")
	}

	return counts, nil
}

// CountAhead returns the number of active tokens (waiting or called) with a
// smaller number than the given one. This is the token's queue position.
func (p *PostgreSQLTokenRepository) CountAhead(
	ctx context.Context,
	partition queueDomain.QueuePartition,
	tokenNumber int,
) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*)
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2
				  AND status IN ('waiting', 'called')
				  AND token_number < $3`

	var count int
	err := querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate, tokenNumber).
		Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count tokens ahead")
	}

	return count, nil
}

// FindFirstWaitingForUpdate locks and returns the lowest-numbered waiting token
// in the partition. Locked rows held by concurrent callers are skipped so two
// staff members calling next never receive the same token.
func (p *PostgreSQLTokenRepository) FindFirstWaitingForUpdate(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2 AND status = 'waiting'
			  ORDER BY token_number ASC
			  LIMIT 1
			  FOR UPDATE SKIP LOCKED`

	token, err := scanToken(querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, queueDomain.ErrNoWaitingTokens
		}
		return nil, apperrors.Wrap(err, "failed to find first waiting token")
	}

	return token, nil
}

// FindCalledForUpdate locks and returns the partition's token in called status,
// or ErrTokenNotFound when no consultation is in progress.
func (p *PostgreSQLTokenRepository) FindCalledForUpdate(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2 AND status = 'called'
			  ORDER BY called_at ASC
			  LIMIT 1
			  FOR UPDATE`

	token, err := scanToken(querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, queueDomain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find called token")
	}

	return token, nil
}

// ListByPartition retrieves all tokens for a partition ordered by token number.
func (p *PostgreSQLTokenRepository) ListByPartition(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) ([]*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2
			  ORDER BY token_number ASC`

	return p.queryTokens(ctx, querier, query, partition.DoctorID, partition.ServiceDate)
}

// ListWaitingByPartition retrieves the waiting tokens for a partition ordered
// by token number. Used by estimate recomputation.
func (p *PostgreSQLTokenRepository) ListWaitingByPartition(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) ([]*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2 AND status = 'waiting'
			  ORDER BY token_number ASC`

	return p.queryTokens(ctx, querier, query, partition.DoctorID, partition.ServiceDate)
}

// ListByPatient retrieves a patient's tokens for a service date ordered by
// creation time.
func (p *PostgreSQLTokenRepository) ListByPatient(
	ctx context.Context,
	patientID uuid.UUID,
	serviceDate time.Time,
) ([]*queueDomain.Token, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + tokenColumns + `
			  FROM tokens
			  WHERE patient_id = $1 AND service_date = $2
			  ORDER BY created_at ASC`

	return p.queryTokens(ctx, querier, query, patientID, serviceDate)
}

func (p *PostgreSQLTokenRepository) queryTokens(
	ctx context.Context,
	querier database.Querier,
	query string,
	args ...any,
) ([]*queueDomain.Token, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tokens")
	}
	defer rows.Close() //nolint:errcheck

	var tokens []*queueDomain.Token
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan token")
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tokens")
	}

	return tokens, nil
}

// AverageActualWait returns the average measured wait in whole minutes across
// completed tokens in the partition (0 when none completed).
func (p *PostgreSQLTokenRepository) AverageActualWait(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (int, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COALESCE(FLOOR(AVG(actual_wait_minutes)), 0)
			  FROM tokens
			  WHERE doctor_id = $1 AND service_date = $2
				  AND status = 'completed' AND actual_wait_minutes IS NOT NULL`

	var average int
	err := querier.QueryRowContext(ctx, query, partition.DoctorID, partition.ServiceDate).Scan(&average)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to average actual wait")
	}

	return average, nil
}

// NewPostgreSQLTokenRepository creates a new PostgreSQL Token repository instance.
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{db: db}
}

// Package usecase defines the interfaces and implementations for queue
// management use cases. Use cases orchestrate token numbering, lifecycle
// transitions, wait estimation, and outbox event emission inside database
// transactions so each partition's queue stays consistent under concurrent
// staff actions.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	appointmentDomain "github.com/hospitalos/opdqueue/internal/appointment/domain"
	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	outboxDomain "github.com/hospitalos/opdqueue/internal/outbox/domain"
	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
)

// TokenRepository defines the interface for Token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *queueDomain.Token) error
	Get(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error)
	GetForUpdate(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error)
	Update(ctx context.Context, token *queueDomain.Token) error
	NextTokenNumber(ctx context.Context, partition queueDomain.QueuePartition) (int, error)
	CountByStatus(ctx context.Context, partition queueDomain.QueuePartition) (queueDomain.StatusCounts, error)
	CountAhead(ctx context.Context, partition queueDomain.QueuePartition, tokenNumber int) (int, error)
	FindFirstWaitingForUpdate(ctx context.Context, partition queueDomain.QueuePartition) (*queueDomain.Token, error)
	FindCalledForUpdate(ctx context.Context, partition queueDomain.QueuePartition) (*queueDomain.Token, error)
	ListByPartition(ctx context.Context, partition queueDomain.QueuePartition) ([]*queueDomain.Token, error)
	ListWaitingByPartition(ctx context.Context, partition queueDomain.QueuePartition) ([]*queueDomain.Token, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, serviceDate time.Time) ([]*queueDomain.Token, error)
	AverageActualWait(ctx context.Context, partition queueDomain.QueuePartition) (int, error)
}

// DoctorRepository defines the doctor lookups the queue needs.
type DoctorRepository interface {
	Get(ctx context.Context, doctorID uuid.UUID) (*directoryDomain.Doctor, error)
}

// AppointmentRepository defines the appointment operations the queue needs.
type AppointmentRepository interface {
	Get(ctx context.Context, appointmentID uuid.UUID) (*appointmentDomain.Appointment, error)
	MarkCompleted(ctx context.Context, appointmentID uuid.UUID, notes string) error
}

// OutboxEventRepository defines the outbox write the queue needs.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// IssueTokenInput carries the fields needed to issue a token.
type IssueTokenInput struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	AppointmentID *uuid.UUID
	ServiceDate   time.Time
	Symptoms      string
}

// QueueUseCase defines the interface for token lifecycle business logic.
type QueueUseCase interface {
	// IssueToken creates the next sequential token in the doctor's queue for
	// the service date and computes its initial wait estimate.
	IssueToken(ctx context.Context, input IssueTokenInput) (*queueDomain.Token, error)
	// GetToken retrieves a token and its current position (active tokens ahead;
	// zero for called and terminal tokens).
	GetToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, int, error)
	// ListPatientTokens retrieves a patient's tokens for a service date.
	ListPatientTokens(ctx context.Context, patientID uuid.UUID, serviceDate time.Time) ([]*queueDomain.Token, error)
	// CallNext calls the lowest-numbered waiting token in the partition.
	CallNext(ctx context.Context, doctorID uuid.UUID, serviceDate time.Time) (*queueDomain.Token, error)
	// CallToken calls a specific waiting token out of order.
	CallToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error)
	// CompleteToken finishes the consultation for a called token, records the
	// supplied wait (or derives it from the call timestamps when nil), and
	// completes any linked appointment.
	CompleteToken(ctx context.Context, tokenID uuid.UUID, actualWaitMinutes *int, notes string) (*queueDomain.Token, error)
	// CancelToken removes a waiting token from the queue.
	CancelToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error)
	// RecomputeEstimates refreshes the wait estimate of every waiting token in
	// the partition and returns how many changed.
	RecomputeEstimates(ctx context.Context, doctorID uuid.UUID, serviceDate time.Time) (int, error)
}

// QueueViewUseCase defines the interface for queue read projections.
type QueueViewUseCase interface {
	// Snapshot builds the display-board view of one partition.
	Snapshot(ctx context.Context, doctorID uuid.UUID, serviceDate time.Time) (*queueDomain.QueueSnapshot, error)
	// DailySummary aggregates one partition's day for reporting.
	DailySummary(ctx context.Context, doctorID uuid.UUID, serviceDate time.Time) (*queueDomain.DailySummary, error)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/metrics"
	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
)

// queueUseCaseWithMetrics decorates QueueUseCase with metrics instrumentation.
type queueUseCaseWithMetrics struct {
	next    QueueUseCase
	metrics metrics.BusinessMetrics
}

// NewQueueUseCaseWithMetrics wraps a QueueUseCase with metrics recording.
func NewQueueUseCaseWithMetrics(useCase QueueUseCase, m metrics.BusinessMetrics) QueueUseCase {
	return &queueUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (q *queueUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	q.metrics.RecordOperation(ctx, "queue", operation, status)
	q.metrics.RecordDuration(ctx, "queue", operation, time.Since(start), status)
}

// IssueToken records metrics for token issuance operations.
func (q *queueUseCaseWithMetrics) IssueToken(
	ctx context.Context,
	input IssueTokenInput,
) (*queueDomain.Token, error) {
	start := time.Now()
	token, err := q.next.IssueToken(ctx, input)
	q.record(ctx, "token_issue", start, err)
	return token, err
}

// GetToken records metrics for token retrieval operations.
func (q *queueUseCaseWithMetrics) GetToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, int, error) {
	start := time.Now()
	token, position, err := q.next.GetToken(ctx, tokenID)
	q.record(ctx, "token_get", start, err)
	return token, position, err
}

// ListPatientTokens records metrics for patient token listing operations.
func (q *queueUseCaseWithMetrics) ListPatientTokens(
	ctx context.Context,
	patientID uuid.UUID,
	serviceDate time.Time,
) ([]*queueDomain.Token, error) {
	start := time.Now()
	tokens, err := q.next.ListPatientTokens(ctx, patientID, serviceDate)
	q.record(ctx, "token_list_patient", start, err)
	return tokens, err
}

// CallNext records metrics for call-next operations.
func (q *queueUseCaseWithMetrics) CallNext(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.Token, error) {
	start := time.Now()
	token, err := q.next.CallNext(ctx, doctorID, serviceDate)
	q.record(ctx, "token_call_next", start, err)
	return token, err
}

// CallToken records metrics for call-specific operations.
func (q *queueUseCaseWithMetrics) CallToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	start := time.Now()
	token, err := q.next.CallToken(ctx, tokenID)
	q.record(ctx, "token_call", start, err)
	return token, err
}

// CompleteToken records metrics for completion operations.
func (q *queueUseCaseWithMetrics) CompleteToken(
	ctx context.Context,
	tokenID uuid.UUID,
	actualWaitMinutes *int,
	notes string,
) (*queueDomain.Token, error) {
	start := time.Now()
	token, err := q.next.CompleteToken(ctx, tokenID, actualWaitMinutes, notes)
	q.record(ctx, "token_complete", start, err)
	return token, err
}

// CancelToken records metrics for cancellation operations.
func (q *queueUseCaseWithMetrics) CancelToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	start := time.Now()
	token, err := q.next.CancelToken(ctx, tokenID)
	q.record(ctx, "token_cancel", start, err)
	return token, err
}

// RecomputeEstimates records metrics for estimate recomputation operations.
func (q *queueUseCaseWithMetrics) RecomputeEstimates(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (int, error) {
	start := time.Now()
	updated, err := q.next.RecomputeEstimates(ctx, doctorID, serviceDate)
	q.record(ctx, "estimates_recompute", start, err)
	return updated, err
}

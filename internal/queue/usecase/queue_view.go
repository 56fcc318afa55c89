package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
)

// queueViewUseCase implements read projections over one partition's tokens.
type queueViewUseCase struct {
	tokenRepo TokenRepository
}

// Snapshot builds the display-board view of one partition: the token being
// served, the next waiting number, per-status counts, and the measured
// average wait.
func (v *queueViewUseCase) Snapshot(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.QueueSnapshot, error) {
	partition := queueDomain.QueuePartition{
		DoctorID:    doctorID,
		ServiceDate: queueDomain.NormalizeServiceDate(serviceDate),
	}

	tokens, err := v.tokenRepo.ListByPartition(ctx, partition)
	if err != nil {
		return nil, err
	}

	snapshot := &queueDomain.QueueSnapshot{
		DoctorID:    partition.DoctorID,
		ServiceDate: partition.ServiceDate,
	}

	waitSum, waitCount := 0, 0
	for _, token := range tokens {
		switch token.Status {
		case queueDomain.StatusWaiting:
			snapshot.Counts.Waiting++
			if snapshot.NextUp == nil {
				snapshot.NextUp = token
			}
		case queueDomain.StatusCalled:
			snapshot.Counts.Called++
			if snapshot.CurrentServing == nil {
				snapshot.CurrentServing = token
			}
		case queueDomain.StatusCompleted:
			snapshot.Counts.Completed++
			if token.ActualWaitMinutes != nil {
				waitSum += *token.ActualWaitMinutes
				waitCount++
			}
		case queueDomain.StatusCancelled:
			snapshot.Counts.Cancelled++
		}
	}

	if waitCount > 0 {
		snapshot.AverageWaitMinutes = waitSum / waitCount
	}

	return snapshot, nil
}

// DailySummary aggregates one partition's day for reporting.
func (v *queueViewUseCase) DailySummary(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.DailySummary, error) {
	partition := queueDomain.QueuePartition{
		DoctorID:    doctorID,
		ServiceDate: queueDomain.NormalizeServiceDate(serviceDate),
	}

	counts, err := v.tokenRepo.CountByStatus(ctx, partition)
	if err != nil {
		return nil, err
	}

	averageWait, err := v.tokenRepo.AverageActualWait(ctx, partition)
	if err != nil {
		return nil, err
	}

	summary := &queueDomain.DailySummary{
		DoctorID:           partition.DoctorID,
		ServiceDate:        partition.ServiceDate,
		Counts:             counts,
		AverageWaitMinutes: averageWait,
	}

	if total := counts.Total(); total > 0 {
		summary.CompletionRatePercent = float64(counts.Completed) / float64(total) * 100
	}

	return summary, nil
}

// NewQueueViewUseCase creates a new queue view use case instance.
func NewQueueViewUseCase(tokenRepo TokenRepository) QueueViewUseCase {
	return &queueViewUseCase{tokenRepo: tokenRepo}
}

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	queueUseCase "github.com/hospitalos/opdqueue/internal/queue/usecase"
	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// RunRecomputeWaits refreshes the wait estimates for every waiting token in a
// doctor's queue. Useful when estimator configuration changes mid-day.
//
// Requirements: Database must be migrated and accessible.
func RunRecomputeWaits(
	ctx context.Context,
	useCase queueUseCase.QueueUseCase,
	logger *slog.Logger,
	writer io.Writer,
	doctorIDStr string,
	serviceDateStr string,
) error {
	doctorID, err := uuid.Parse(doctorIDStr)
	if err != nil {
		return fmt.Errorf("invalid doctor id: %w", err)
	}

	serviceDate := time.Now()
	if serviceDateStr != "" {
		serviceDate, err = time.Parse(customValidation.DateLayout, serviceDateStr)
		if err != nil {
			return fmt.Errorf("invalid service date: must be YYYY-MM-DD")
		}
	}

	logger.Info("recomputing wait estimates",
		slog.String("doctor_id", doctorID.String()),
		slog.String("service_date", serviceDate.Format(customValidation.DateLayout)),
	)

	updated, err := useCase.RecomputeEstimates(ctx, doctorID, serviceDate)
	if err != nil {
		return fmt.Errorf("failed to recompute estimates: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Updated %d token(s)\n", updated)

	logger.Info("wait estimates recomputed", slog.Int("updated", updated))

	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	appointmentDomain "github.com/hospitalos/opdqueue/internal/appointment/domain"
	"github.com/hospitalos/opdqueue/internal/database"
	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	apperrors "github.com/hospitalos/opdqueue/internal/errors"
	outboxDomain "github.com/hospitalos/opdqueue/internal/outbox/domain"
	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
	"github.com/hospitalos/opdqueue/internal/queue/service"
	"github.com/hospitalos/opdqueue/internal/validation"
)

// queueUseCase implements the QueueUseCase interface for token lifecycle management.
type queueUseCase struct {
	txManager       database.TxManager
	tokenRepo       TokenRepository
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	outboxRepo      OutboxEventRepository
	estimator       service.Estimator
	now             func() time.Time
}

// IssueToken creates the next sequential token in the doctor's queue for the
// service date. Numbering, capacity check, estimate, and the issued event all
// commit in one transaction.
func (q *queueUseCase) IssueToken(
	ctx context.Context,
	input IssueTokenInput,
) (*queueDomain.Token, error) {
	serviceDate := queueDomain.NormalizeServiceDate(input.ServiceDate)
	today := queueDomain.NormalizeServiceDate(q.now().UTC())
	if serviceDate.Before(today) {
		return nil, queueDomain.ErrServiceDateInPast
	}

	doctor, err := q.doctorRepo.Get(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.IsActive {
		return nil, directoryDomain.ErrDoctorInactive
	}

	symptoms := input.Symptoms
	if input.AppointmentID != nil {
		appointment, err := q.appointmentRepo.Get(ctx, *input.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment.PatientID != input.PatientID || appointment.DoctorID != input.DoctorID {
			return nil, appointmentDomain.ErrAppointmentMismatch
		}
		if symptoms == "" {
			symptoms = appointment.Symptoms
		}
	}

	partition := queueDomain.QueuePartition{
		DoctorID:    input.DoctorID,
		ServiceDate: serviceDate,
	}

	var token *queueDomain.Token
	err = q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		counts, err := q.tokenRepo.CountByStatus(txCtx, partition)
		if err != nil {
			return err
		}
		if doctor.MaxPatientsPerDay > 0 && counts.Issued() >= doctor.MaxPatientsPerDay {
			return queueDomain.ErrDoctorCapacityReached
		}

		number, err := q.tokenRepo.NextTokenNumber(txCtx, partition)
		if err != nil {
			return err
		}

		// Every active token is ahead of the one being issued.
		positionAhead := counts.Waiting + counts.Called
		minutes, confidence := q.estimator.Estimate(txCtx, positionAhead, doctor)

		now := q.now().UTC()
		token = &queueDomain.Token{
			ID:                   uuid.Must(uuid.NewV7()),
			PatientID:            input.PatientID,
			DoctorID:             input.DoctorID,
			AppointmentID:        input.AppointmentID,
			ServiceDate:          partition.ServiceDate,
			TokenNumber:          number,
			Status:               queueDomain.StatusWaiting,
			Symptoms:             symptoms,
			EstimatedWaitMinutes: minutes,
			EstimateConfidence:   confidence,
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		if err := q.tokenRepo.Create(txCtx, token); err != nil {
			return err
		}

		return q.emitTokenEvent(txCtx, outboxDomain.EventTypeTokenIssued, token)
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// GetToken retrieves a token and its current queue position.
func (q *queueUseCase) GetToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, int, error) {
	token, err := q.tokenRepo.Get(ctx, tokenID)
	if err != nil {
		return nil, 0, err
	}

	if token.Status != queueDomain.StatusWaiting {
		return token, 0, nil
	}

	partition := queueDomain.QueuePartition{DoctorID: token.DoctorID, ServiceDate: token.ServiceDate}
	position, err := q.tokenRepo.CountAhead(ctx, partition, token.TokenNumber)
	if err != nil {
		return nil, 0, err
	}

	return token, position, nil
}

// ListPatientTokens retrieves a patient's tokens for a service date.
func (q *queueUseCase) ListPatientTokens(
	ctx context.Context,
	patientID uuid.UUID,
	serviceDate time.Time,
) ([]*queueDomain.Token, error) {
	return q.tokenRepo.ListByPatient(ctx, patientID, queueDomain.NormalizeServiceDate(serviceDate))
}

// CallNext calls the lowest-numbered waiting token in the partition. Fails
// with ErrQueueBusy while another token is in called status.
func (q *queueUseCase) CallNext(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.Token, error) {
	partition := queueDomain.QueuePartition{
		DoctorID:    doctorID,
		ServiceDate: queueDomain.NormalizeServiceDate(serviceDate),
	}

	var token *queueDomain.Token
	err := q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := q.ensureNoActiveConsultation(txCtx, partition); err != nil {
			return err
		}

		var err error
		token, err = q.tokenRepo.FindFirstWaitingForUpdate(txCtx, partition)
		if err != nil {
			return err
		}

		return q.markCalled(txCtx, token, partition)
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// CallToken calls a specific waiting token out of order.
func (q *queueUseCase) CallToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	var token *queueDomain.Token
	err := q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		token, err = q.tokenRepo.GetForUpdate(txCtx, tokenID)
		if err != nil {
			return err
		}

		if !queueDomain.CanTransition(queueDomain.ActionCall, token.Status) {
			return apperrors.Wrapf(
				apperrors.ErrInvalidTransition,
				"cannot call token in %s status",
				token.Status,
			)
		}

		partition := queueDomain.QueuePartition{DoctorID: token.DoctorID, ServiceDate: token.ServiceDate}
		if err := q.ensureNoActiveConsultation(txCtx, partition); err != nil {
			return err
		}

		return q.markCalled(txCtx, token, partition)
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// CompleteToken finishes the consultation for a called token. The staff-supplied
// wait is recorded when given, otherwise the issue-to-call wait is derived from
// the timestamps. A linked appointment is marked completed and the remaining
// waiting estimates are refreshed.
func (q *queueUseCase) CompleteToken(
	ctx context.Context,
	tokenID uuid.UUID,
	actualWaitMinutes *int,
	notes string,
) (*queueDomain.Token, error) {
	if actualWaitMinutes != nil && *actualWaitMinutes < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "actual wait minutes cannot be negative")
	}

	var token *queueDomain.Token
	err := q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		token, err = q.tokenRepo.GetForUpdate(txCtx, tokenID)
		if err != nil {
			return err
		}

		if !queueDomain.CanTransition(queueDomain.ActionComplete, token.Status) {
			return apperrors.Wrapf(
				apperrors.ErrInvalidTransition,
				"cannot complete token in %s status",
				token.Status,
			)
		}

		now := q.now().UTC()
		switch {
		case actualWaitMinutes != nil:
			supplied := *actualWaitMinutes
			token.ActualWaitMinutes = &supplied
		case token.CalledAt != nil:
			derived := int(token.CalledAt.Sub(token.CreatedAt).Minutes())
			if derived < 0 {
				derived = 0
			}
			token.ActualWaitMinutes = &derived
		}
		token.Status = queueDomain.StatusCompleted
		token.CompletedAt = &now
		token.UpdatedAt = now

		if err := q.tokenRepo.Update(txCtx, token); err != nil {
			return err
		}

		if token.AppointmentID != nil {
			if err := q.appointmentRepo.MarkCompleted(txCtx, *token.AppointmentID, notes); err != nil {
				return err
			}
		}

		if err := q.emitTokenEvent(txCtx, outboxDomain.EventTypeTokenCompleted, token); err != nil {
			return err
		}

		partition := queueDomain.QueuePartition{DoctorID: token.DoctorID, ServiceDate: token.ServiceDate}
		_, err = q.recomputeLocked(txCtx, partition)
		return err
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// CancelToken removes a waiting token from the queue and refreshes the
// estimates of the tokens behind it.
func (q *queueUseCase) CancelToken(
	ctx context.Context,
	tokenID uuid.UUID,
) (*queueDomain.Token, error) {
	var token *queueDomain.Token
	err := q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		token, err = q.tokenRepo.GetForUpdate(txCtx, tokenID)
		if err != nil {
			return err
		}

		if !queueDomain.CanTransition(queueDomain.ActionCancel, token.Status) {
			return apperrors.Wrapf(
				apperrors.ErrInvalidTransition,
				"cannot cancel token in %s status",
				token.Status,
			)
		}

		now := q.now().UTC()
		token.Status = queueDomain.StatusCancelled
		token.CancelledAt = &now
		token.UpdatedAt = now

		if err := q.tokenRepo.Update(txCtx, token); err != nil {
			return err
		}

		if err := q.emitTokenEvent(txCtx, outboxDomain.EventTypeTokenCancelled, token); err != nil {
			return err
		}

		partition := queueDomain.QueuePartition{DoctorID: token.DoctorID, ServiceDate: token.ServiceDate}
		_, err = q.recomputeLocked(txCtx, partition)
		return err
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// RecomputeEstimates refreshes the wait estimate of every waiting token in the
// partition. Running it again without queue changes updates nothing.
func (q *queueUseCase) RecomputeEstimates(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (int, error) {
	partition := queueDomain.QueuePartition{
		DoctorID:    doctorID,
		ServiceDate: queueDomain.NormalizeServiceDate(serviceDate),
	}

	var updated int
	err := q.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = q.recomputeLocked(txCtx, partition)
		return err
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// ensureNoActiveConsultation fails with ErrQueueBusy while the partition has a
// token in called status. The called row stays locked until commit so a
// concurrent complete cannot race past the check.
func (q *queueUseCase) ensureNoActiveConsultation(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) error {
	_, err := q.tokenRepo.FindCalledForUpdate(ctx, partition)
	if err == nil {
		return queueDomain.ErrConsultationInProgress
	}
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}

// markCalled transitions a waiting token to called, emits the event, and
// refreshes the remaining waiting estimates.
func (q *queueUseCase) markCalled(
	ctx context.Context,
	token *queueDomain.Token,
	partition queueDomain.QueuePartition,
) error {
	now := q.now().UTC()
	token.Status = queueDomain.StatusCalled
	token.CalledAt = &now
	token.UpdatedAt = now

	if err := q.tokenRepo.Update(ctx, token); err != nil {
		return err
	}

	if err := q.emitTokenEvent(ctx, outboxDomain.EventTypeTokenCalled, token); err != nil {
		return err
	}

	_, err := q.recomputeLocked(ctx, partition)
	return err
}

// recomputeLocked refreshes waiting estimates inside the caller's transaction
// and returns how many tokens changed.
func (q *queueUseCase) recomputeLocked(
	ctx context.Context,
	partition queueDomain.QueuePartition,
) (int, error) {
	doctor, err := q.doctorRepo.Get(ctx, partition.DoctorID)
	if err != nil {
		return 0, err
	}

	waiting, err := q.tokenRepo.ListWaitingByPartition(ctx, partition)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, token := range waiting {
		positionAhead, err := q.tokenRepo.CountAhead(ctx, partition, token.TokenNumber)
		if err != nil {
			return 0, err
		}

		minutes, confidence := q.estimator.Estimate(ctx, positionAhead, doctor)
		if minutes == token.EstimatedWaitMinutes && confidence == token.EstimateConfidence {
			continue
		}

		token.EstimatedWaitMinutes = minutes
		token.EstimateConfidence = confidence
		token.UpdatedAt = q.now().UTC()

		if err := q.tokenRepo.Update(ctx, token); err != nil {
			return 0, err
		}
		updated++
	}

	return updated, nil
}

// emitTokenEvent writes a token lifecycle event to the outbox.
func (q *queueUseCase) emitTokenEvent(
	ctx context.Context,
	eventType string,
	token *queueDomain.Token,
) error {
	event, err := outboxDomain.NewTokenEvent(eventType, outboxDomain.TokenEventPayload{
		TokenID:     token.ID.String(),
		DoctorID:    token.DoctorID.String(),
		PatientID:   token.PatientID.String(),
		ServiceDate: token.ServiceDate.Format(validation.DateLayout),
		TokenNumber: token.TokenNumber,
		Status:      string(token.Status),
	})
	if err != nil {
		return err
	}

	return q.outboxRepo.Create(ctx, event)
}

// NewQueueUseCase creates a new queue use case instance with the provided
// dependencies. A nil clock defaults to time.Now.
func NewQueueUseCase(
	txManager database.TxManager,
	tokenRepo TokenRepository,
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	outboxRepo OutboxEventRepository,
	estimator service.Estimator,
	now func() time.Time,
) QueueUseCase {
	if now == nil {
		now = time.Now
	}
	return &queueUseCase{
		txManager:       txManager,
		tokenRepo:       tokenRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		outboxRepo:      outboxRepo,
		estimator:       estimator,
		now:             now,
	}
}

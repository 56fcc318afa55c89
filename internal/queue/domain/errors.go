package domain

import (
	"github.com/hospitalos/opdqueue/internal/errors"
)

// Token-specific error definitions.
var (
	// ErrTokenNotFound indicates the token does not exist.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrServiceDateInPast indicates an issuance request for a day that already ended.
	ErrServiceDateInPast = errors.Wrap(errors.ErrInvalidInput, "service date cannot be in the past")

	// ErrDoctorCapacityReached indicates the doctor's daily patient limit is full.
	ErrDoctorCapacityReached = errors.Wrap(errors.ErrCapacityExceeded, "doctor daily patient limit reached")

	// ErrNoWaitingTokens indicates a call-next against a partition with no waiting tokens.
	ErrNoWaitingTokens = errors.Wrap(errors.ErrEmptyQueue, "no waiting tokens")

	// ErrConsultationInProgress indicates another token is already in called status
	// for the same doctor and service date.
	ErrConsultationInProgress = errors.Wrap(errors.ErrQueueBusy, "a consultation is already in progress")
)

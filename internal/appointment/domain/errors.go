package domain

import (
	"github.com/hospitalos/opdqueue/internal/errors"
)

// Appointment-specific error definitions.
var (
	// ErrAppointmentNotFound indicates the appointment does not exist.
	ErrAppointmentNotFound = errors.Wrap(errors.ErrNotFound, "appointment not found")

	// ErrAppointmentMismatch indicates the appointment belongs to a different
	// patient or doctor than the token being issued.
	ErrAppointmentMismatch = errors.Wrap(errors.ErrInvalidInput, "appointment does not match patient and doctor")
)

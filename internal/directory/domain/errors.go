package domain

import (
	"github.com/hospitalos/opdqueue/internal/errors"
)

// Doctor-specific error definitions.
var (
	// ErrDoctorNotFound indicates the doctor does not exist.
	ErrDoctorNotFound = errors.Wrap(errors.ErrNotFound, "doctor not found")

	// ErrDoctorInactive indicates the doctor is not accepting new tokens.
	ErrDoctorInactive = errors.Wrap(errors.ErrInvalidInput, "doctor is not accepting patients")
)

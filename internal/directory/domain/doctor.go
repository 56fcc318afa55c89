// Package domain defines the core domain models for the doctor directory.
// The directory holds the operational snapshot the queue needs per doctor:
// whether the doctor is accepting patients, the daily cap, and the average
// consultation time used by wait estimation.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a doctor's operational profile.
type Doctor struct {
	// ID is the unique identifier of the doctor.
	ID uuid.UUID
	// FullName is the doctor's display name.
	FullName string
	// Specialization is the doctor's medical specialty (may be empty).
	Specialization string
	// IsActive indicates whether the doctor currently accepts new tokens.
	IsActive bool
	// MaxPatientsPerDay caps the tokens issued per service date (0 means no cap).
	MaxPatientsPerDay int
	// AverageConsultationMinutes is the doctor's recorded per-patient time
	// (0 means unknown; the estimator falls back to a configured default).
	AverageConsultationMinutes int
	// CreatedAt is the UTC timestamp when the doctor was registered.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last profile change.
	UpdatedAt time.Time
}

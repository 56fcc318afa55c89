// Package domain defines the core domain models for scheduled appointments.
// Appointments are created upstream of the queue; the queue links tokens to
// them and marks them completed when the consultation finishes.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an appointment.
type Status string

// Appointment lifecycle states.
const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// Appointment represents a scheduled consultation between a patient and a doctor.
type Appointment struct {
	// ID is the unique identifier of the appointment.
	ID uuid.UUID
	// PatientID identifies the patient.
	PatientID uuid.UUID
	// DoctorID identifies the doctor.
	DoctorID uuid.UUID
	// ScheduledFor is the planned consultation time.
	ScheduledFor time.Time
	// Status is the current lifecycle state.
	Status Status
	// Symptoms is the free-text reason for the visit recorded at booking.
	Symptoms string
	// Notes holds the doctor's consultation notes, set on completion.
	Notes string
	// CreatedAt is the UTC timestamp when the appointment was booked.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last change.
	UpdatedAt time.Time
}

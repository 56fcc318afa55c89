// Package domain defines the core domain models for outpatient queue management.
// Tokens are sequential per doctor and service date, move through a small status
// machine, and carry the wait estimate computed at issuance time.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a queue token.
type Status string

// Token lifecycle states.
const (
	// StatusWaiting means the token is issued and the patient has not been called.
	StatusWaiting Status = "waiting"
	// StatusCalled means the patient is currently being served.
	StatusCalled Status = "called"
	// StatusCompleted means the consultation finished.
	StatusCompleted Status = "completed"
	// StatusCancelled means the token left the queue before being called.
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusCalled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Token represents a patient's place in a doctor's queue for one service date.
type Token struct {
	// ID is the unique identifier of the token.
	ID uuid.UUID
	// PatientID identifies the patient the token was issued to.
	PatientID uuid.UUID
	// DoctorID identifies the doctor whose queue the token belongs to.
	DoctorID uuid.UUID
	// AppointmentID links the token to a scheduled appointment (nil for walk-ins).
	AppointmentID *uuid.UUID
	// ServiceDate is the calendar day the token is valid for (midnight UTC).
	ServiceDate time.Time
	// TokenNumber is the sequential position within the (doctor, service date) queue.
	TokenNumber int
	// Status is the current lifecycle state.
	Status Status
	// Symptoms is the free-text reason for the visit captured at issuance.
	Symptoms string
	// EstimatedWaitMinutes is the most recent wait estimate for this token.
	EstimatedWaitMinutes int
	// EstimateConfidence is the estimator's confidence in [0, 1] for the estimate.
	EstimateConfidence float64
	// ActualWaitMinutes is the measured issue-to-call wait, set on completion.
	ActualWaitMinutes *int
	// CalledAt is when the patient was called (nil until then).
	CalledAt *time.Time
	// CompletedAt is when the consultation finished (nil until then).
	CompletedAt *time.Time
	// CancelledAt is when the token was cancelled (nil unless cancelled).
	CancelledAt *time.Time
	// CreatedAt is the UTC timestamp when the token was issued.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last status or estimate change.
	UpdatedAt time.Time
}

// QueuePartition identifies one doctor's queue for one service date.
type QueuePartition struct {
	DoctorID    uuid.UUID
	ServiceDate time.Time
}

// StatusCounts aggregates token counts per lifecycle state for one partition.
type StatusCounts struct {
	Waiting   int
	Called    int
	Completed int
	Cancelled int
}

// Total returns the number of tokens issued in the partition.
func (c StatusCounts) Total() int {
	return c.Waiting + c.Called + c.Completed + c.Cancelled
}

// Issued returns the number of tokens that count against the doctor's daily
// capacity. Cancelled tokens release their slot.
func (c StatusCounts) Issued() int {
	return c.Waiting + c.Called + c.Completed
}

// NormalizeServiceDate truncates a timestamp to its calendar day in UTC.
func NormalizeServiceDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

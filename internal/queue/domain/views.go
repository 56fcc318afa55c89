package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueueSnapshot is the read projection shown on queue display boards.
type QueueSnapshot struct {
	// DoctorID identifies the queue's doctor.
	DoctorID uuid.UUID
	// ServiceDate is the queue's calendar day.
	ServiceDate time.Time
	// CurrentServing is the token being served (nil when none is called).
	CurrentServing *Token
	// NextUp is the lowest-numbered waiting token (nil when none are waiting).
	NextUp *Token
	// Counts aggregates tokens per lifecycle state.
	Counts StatusCounts
	// AverageWaitMinutes is the average measured wait across completed tokens.
	AverageWaitMinutes int
}

// DailySummary aggregates one partition's day for reporting.
type DailySummary struct {
	// DoctorID identifies the queue's doctor.
	DoctorID uuid.UUID
	// ServiceDate is the summarized calendar day.
	ServiceDate time.Time
	// Counts aggregates tokens per lifecycle state.
	Counts StatusCounts
	// CompletionRatePercent is completed over total issued, as a percentage.
	CompletionRatePercent float64
	// AverageWaitMinutes is the average measured wait across completed tokens.
	AverageWaitMinutes int
}

// Package domain defines the core outbox domain entities and types.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// Event types emitted by the queue on token transitions.
const (
	EventTypeTokenIssued    = "token.issued"
	EventTypeTokenCalled    = "token.called"
	EventTypeTokenCompleted = "token.completed"
	EventTypeTokenCancelled = "token.cancelled"
)

// OutboxEvent represents an event in the transactional outbox pattern
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenEventPayload is the JSON body attached to token lifecycle events.
type TokenEventPayload struct {
	TokenID     string `json:"token_id"`
	DoctorID    string `json:"doctor_id"`
	PatientID   string `json:"patient_id"`
	ServiceDate string `json:"service_date"`
	TokenNumber int    `json:"token_number"`
	Status      string `json:"status"`
}

// NewTokenEvent builds a pending outbox event carrying a token payload.
func NewTokenEvent(eventType string, payload TokenEventPayload) (*OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(body),
		Status:    OutboxEventStatusPending,
	}, nil
}

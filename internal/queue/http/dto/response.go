// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// TokenResponse represents a queue token in API responses.
type TokenResponse struct {
	ID                   string     `json:"id"`
	PatientID            string     `json:"patient_id"`
	DoctorID             string     `json:"doctor_id"`
	AppointmentID        string     `json:"appointment_id,omitempty"`
	ServiceDate          string     `json:"service_date"`
	TokenNumber          int        `json:"token_number"`
	Status               string     `json:"status"`
	Symptoms             string     `json:"symptoms,omitempty"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
	EstimateConfidence   float64    `json:"estimate_confidence"`
	PositionAhead        *int       `json:"position_ahead,omitempty"`
	ActualWaitMinutes    *int       `json:"actual_wait_minutes,omitempty"`
	CalledAt             *time.Time `json:"called_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// MapTokenToResponse converts a domain token to an API response.
func MapTokenToResponse(token *queueDomain.Token) TokenResponse {
	response := TokenResponse{
		ID:                   token.ID.String(),
		PatientID:            token.PatientID.String(),
		DoctorID:             token.DoctorID.String(),
		ServiceDate:          token.ServiceDate.Format(customValidation.DateLayout),
		TokenNumber:          token.TokenNumber,
		Status:               string(token.Status),
		Symptoms:             token.Symptoms,
		EstimatedWaitMinutes: token.EstimatedWaitMinutes,
		EstimateConfidence:   token.EstimateConfidence,
		ActualWaitMinutes:    token.ActualWaitMinutes,
		CalledAt:             token.CalledAt,
		CompletedAt:          token.CompletedAt,
		CancelledAt:          token.CancelledAt,
		CreatedAt:            token.CreatedAt,
		UpdatedAt:            token.UpdatedAt,
	}

	if token.AppointmentID != nil {
		response.AppointmentID = token.AppointmentID.String()
	}

	return response
}

// MapTokenToResponseWithPosition converts a domain token plus its queue
// position to an API response. Position is only meaningful for waiting tokens.
func MapTokenToResponseWithPosition(token *queueDomain.Token, positionAhead int) TokenResponse {
	response := MapTokenToResponse(token)
	if token.Status == queueDomain.StatusWaiting {
		response.PositionAhead = &positionAhead
	}
	return response
}

// ListTokensResponse represents a list of tokens.
type ListTokensResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// MapTokensToListResponse converts domain tokens to an API response.
func MapTokensToListResponse(tokens []*queueDomain.Token) ListTokensResponse {
	responses := make([]TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		responses = append(responses, MapTokenToResponse(token))
	}
	return ListTokensResponse{Tokens: responses}
}

// QueueSnapshotResponse represents the display-board view of a queue. The
// tokens being served and up next are included whole so the board can show
// the patient and symptoms alongside the number.
type QueueSnapshotResponse struct {
	DoctorID           string         `json:"doctor_id"`
	ServiceDate        string         `json:"service_date"`
	CurrentServing     *TokenResponse `json:"current_serving"`
	NextUp             *TokenResponse `json:"next_up"`
	WaitingCount       int            `json:"waiting_count"`
	CalledCount        int            `json:"called_count"`
	CompletedCount     int            `json:"completed_count"`
	CancelledCount     int            `json:"cancelled_count"`
	AverageWaitMinutes int            `json:"average_wait_minutes"`
}

// MapSnapshotToResponse converts a domain snapshot to an API response.
func MapSnapshotToResponse(snapshot *queueDomain.QueueSnapshot) QueueSnapshotResponse {
	response := QueueSnapshotResponse{
		DoctorID:           snapshot.DoctorID.String(),
		ServiceDate:        snapshot.ServiceDate.Format(customValidation.DateLayout),
		WaitingCount:       snapshot.Counts.Waiting,
		CalledCount:        snapshot.Counts.Called,
		CompletedCount:     snapshot.Counts.Completed,
		CancelledCount:     snapshot.Counts.Cancelled,
		AverageWaitMinutes: snapshot.AverageWaitMinutes,
	}
	if snapshot.CurrentServing != nil {
		current := MapTokenToResponse(snapshot.CurrentServing)
		response.CurrentServing = &current
	}
	if snapshot.NextUp != nil {
		next := MapTokenToResponse(snapshot.NextUp)
		response.NextUp = &next
	}
	return response
}

// DailySummaryResponse represents one partition's day for reporting.
type DailySummaryResponse struct {
	DoctorID              string  `json:"doctor_id"`
	ServiceDate           string  `json:"service_date"`
	TotalTokens           int     `json:"total_tokens"`
	CompletedCount        int     `json:"completed_count"`
	CancelledCount        int     `json:"cancelled_count"`
	CompletionRatePercent float64 `json:"completion_rate_percent"`
	AverageWaitMinutes    int     `json:"average_wait_minutes"`
}

// MapSummaryToResponse converts a domain summary to an API response.
func MapSummaryToResponse(summary *queueDomain.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		DoctorID:              summary.DoctorID.String(),
		ServiceDate:           summary.ServiceDate.Format(customValidation.DateLayout),
		TotalTokens:           summary.Counts.Total(),
		CompletedCount:        summary.Counts.Completed,
		CancelledCount:        summary.Counts.Cancelled,
		CompletionRatePercent: summary.CompletionRatePercent,
		AverageWaitMinutes:    summary.AverageWaitMinutes,
	}
}

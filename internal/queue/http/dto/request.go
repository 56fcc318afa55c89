// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	queueUseCase "github.com/hospitalos/opdqueue/internal/queue/usecase"
	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// IssueTokenRequest contains the parameters for issuing a queue token.
type IssueTokenRequest struct {
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	ServiceDate   string `json:"service_date"`
	Symptoms      string `json:"symptoms,omitempty"`
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PatientID, validation.Required, customValidation.UUID),
		validation.Field(&r.DoctorID, validation.Required, customValidation.UUID),
		validation.Field(&r.AppointmentID, customValidation.UUID),
		validation.Field(&r.ServiceDate, validation.Required, customValidation.ISODate),
		validation.Field(&r.Symptoms, validation.Length(0, 2000)),
	)
}

// ToInput converts a validated request into use case input.
func (r *IssueTokenRequest) ToInput() (queueUseCase.IssueTokenInput, error) {
	patientID, err := uuid.Parse(r.PatientID)
	if err != nil {
		return queueUseCase.IssueTokenInput{}, err
	}

	doctorID, err := uuid.Parse(r.DoctorID)
	if err != nil {
		return queueUseCase.IssueTokenInput{}, err
	}

	var appointmentID *uuid.UUID
	if r.AppointmentID != "" {
		parsed, err := uuid.Parse(r.AppointmentID)
		if err != nil {
			return queueUseCase.IssueTokenInput{}, err
		}
		appointmentID = &parsed
	}

	serviceDate, err := time.Parse(customValidation.DateLayout, r.ServiceDate)
	if err != nil {
		return queueUseCase.IssueTokenInput{}, err
	}

	return queueUseCase.IssueTokenInput{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentID: appointmentID,
		ServiceDate:   serviceDate,
		Symptoms:      r.Symptoms,
	}, nil
}

// CompleteTokenRequest contains the parameters for completing a token. The
// measured wait is supplied by the staff member closing the consultation;
// when omitted it is derived from the token's call timestamps.
type CompleteTokenRequest struct {
	ActualWaitMinutes *int   `json:"actual_wait_minutes,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// Validate checks if the complete token request is valid.
func (r *CompleteTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ActualWaitMinutes, validation.Min(0)),
		validation.Field(&r.Notes, validation.Length(0, 5000)),
	)
}

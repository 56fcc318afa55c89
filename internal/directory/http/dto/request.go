// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// RegisterDoctorRequest contains the parameters for registering a doctor.
type RegisterDoctorRequest struct {
	FullName                   string `json:"full_name"`
	Specialization             string `json:"specialization"`
	MaxPatientsPerDay          int    `json:"max_patients_per_day"`
	AverageConsultationMinutes int    `json:"average_consultation_minutes"`
}

// Validate checks if the register doctor request is valid.
func (r *RegisterDoctorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Specialization,
			validation.Length(0, 255),
		),
		validation.Field(&r.MaxPatientsPerDay,
			validation.Min(0),
			validation.Max(500),
		),
		validation.Field(&r.AverageConsultationMinutes,
			validation.Min(0),
			validation.Max(240),
		),
	)
}

// SetDoctorStatusRequest contains the parameters for updating a doctor's availability.
type SetDoctorStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

// Validate checks if the set doctor status request is valid.
func (r *SetDoctorStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IsActive, validation.NotNil),
	)
}

// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

// DoctorResponse represents a doctor in API responses.
type DoctorResponse struct {
	ID                         string    `json:"id"`
	FullName                   string    `json:"full_name"`
	Specialization             string    `json:"specialization,omitempty"`
	IsActive                   bool      `json:"is_active"`
	MaxPatientsPerDay          int       `json:"max_patients_per_day"`
	AverageConsultationMinutes int       `json:"average_consultation_minutes"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// MapDoctorToResponse converts a domain doctor to an API response.
func MapDoctorToResponse(doctor *directoryDomain.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:                         doctor.ID.String(),
		FullName:                   doctor.FullName,
		Specialization:             doctor.Specialization,
		IsActive:                   doctor.IsActive,
		MaxPatientsPerDay:          doctor.MaxPatientsPerDay,
		AverageConsultationMinutes: doctor.AverageConsultationMinutes,
		CreatedAt:                  doctor.CreatedAt,
		UpdatedAt:                  doctor.UpdatedAt,
	}
}

// ListDoctorsResponse represents a paginated list of doctors.
type ListDoctorsResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// MapDoctorsToListResponse converts domain doctors to a paginated API response.
func MapDoctorsToListResponse(doctors []*directoryDomain.Doctor, offset, limit int) ListDoctorsResponse {
	responses := make([]DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		responses = append(responses, MapDoctorToResponse(doctor))
	}

	return ListDoctorsResponse{
		Doctors: responses,
		Offset:  offset,
		Limit:   limit,
	}
}

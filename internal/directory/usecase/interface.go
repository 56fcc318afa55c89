// Package usecase defines the interfaces and implementations for doctor
// directory use cases.
package usecase

import (
	"context"

	"github.com/google/uuid"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

// DoctorRepository defines the interface for Doctor persistence operations.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *directoryDomain.Doctor) error
	Get(ctx context.Context, doctorID uuid.UUID) (*directoryDomain.Doctor, error)
	List(ctx context.Context, offset, limit int) ([]*directoryDomain.Doctor, error)
	SetActive(ctx context.Context, doctorID uuid.UUID, isActive bool) error
}

// RegisterDoctorInput carries the fields needed to register a doctor.
type RegisterDoctorInput struct {
	FullName                   string
	Specialization             string
	MaxPatientsPerDay          int
	AverageConsultationMinutes int
}

// DoctorUseCase defines the interface for doctor directory business logic.
type DoctorUseCase interface {
	Register(ctx context.Context, input RegisterDoctorInput) (*directoryDomain.Doctor, error)
	Get(ctx context.Context, doctorID uuid.UUID) (*directoryDomain.Doctor, error)
	List(ctx context.Context, offset, limit int) ([]*directoryDomain.Doctor, error)
	SetActive(ctx context.Context, doctorID uuid.UUID, isActive bool) error
}

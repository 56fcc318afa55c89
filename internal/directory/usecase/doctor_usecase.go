package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

// doctorUseCase implements the DoctorUseCase interface.
type doctorUseCase struct {
	doctorRepo DoctorRepository
	now        func() time.Time
}

// Register creates a new active doctor profile.
func (d *doctorUseCase) Register(
	ctx context.Context,
	input RegisterDoctorInput,
) (*directoryDomain.Doctor, error) {
	now := d.now().UTC()

	doctor := &directoryDomain.Doctor{
		ID:                         uuid.Must(uuid.NewV7()),
		FullName:                   input.FullName,
		Specialization:             input.Specialization,
		IsActive:                   true,
		MaxPatientsPerDay:          input.MaxPatientsPerDay,
		AverageConsultationMinutes: input.AverageConsultationMinutes,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}

	if err := d.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

// Get retrieves a doctor by ID.
func (d *doctorUseCase) Get(ctx context.Context, doctorID uuid.UUID) (*directoryDomain.Doctor, error) {
	return d.doctorRepo.Get(ctx, doctorID)
}

// List retrieves doctors ordered by name with pagination.
func (d *doctorUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*directoryDomain.Doctor, error) {
	return d.doctorRepo.List(ctx, offset, limit)
}

// SetActive flips whether the doctor accepts new tokens.
func (d *doctorUseCase) SetActive(ctx context.Context, doctorID uuid.UUID, isActive bool) error {
	return d.doctorRepo.SetActive(ctx, doctorID, isActive)
}

// NewDoctorUseCase creates a new doctor use case instance.
func NewDoctorUseCase(doctorRepo DoctorRepository, now func() time.Time) DoctorUseCase {
	if now == nil {
		now = time.Now
	}
	return &doctorUseCase{
		doctorRepo: doctorRepo,
		now:        now,
	}
}

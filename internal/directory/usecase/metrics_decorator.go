package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	"github.com/hospitalos/opdqueue/internal/metrics"
)

// doctorUseCaseWithMetrics decorates DoctorUseCase with metrics instrumentation.
type doctorUseCaseWithMetrics struct {
	next    DoctorUseCase
	metrics metrics.BusinessMetrics
}

// NewDoctorUseCaseWithMetrics wraps a DoctorUseCase with metrics recording.
func NewDoctorUseCaseWithMetrics(useCase DoctorUseCase, m metrics.BusinessMetrics) DoctorUseCase {
	return &doctorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *doctorUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "directory", operation, status)
	d.metrics.RecordDuration(ctx, "directory", operation, time.Since(start), status)
}

// Register records metrics for doctor registration operations.
func (d *doctorUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterDoctorInput,
) (*directoryDomain.Doctor, error) {
	start := time.Now()
	doctor, err := d.next.Register(ctx, input)
	d.record(ctx, "doctor_register", start, err)
	return doctor, err
}

// Get records metrics for doctor retrieval operations.
func (d *doctorUseCaseWithMetrics) Get(
	ctx context.Context,
	doctorID uuid.UUID,
) (*directoryDomain.Doctor, error) {
	start := time.Now()
	doctor, err := d.next.Get(ctx, doctorID)
	d.record(ctx, "doctor_get", start, err)
	return doctor, err
}

// List records metrics for doctor listing operations.
func (d *doctorUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*directoryDomain.Doctor, error) {
	start := time.Now()
	doctors, err := d.next.List(ctx, offset, limit)
	d.record(ctx, "doctor_list", start, err)
	return doctors, err
}

// SetActive records metrics for doctor availability updates.
func (d *doctorUseCaseWithMetrics) SetActive(
	ctx context.Context,
	doctorID uuid.UUID,
	isActive bool,
) error {
	start := time.Now()
	err := d.next.SetActive(ctx, doctorID, isActive)
	d.record(ctx, "doctor_set_active", start, err)
	return err
}

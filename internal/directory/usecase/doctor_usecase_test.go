package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

// MockDoctorRepository is a mock implementation of DoctorRepository
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *directoryDomain.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) Get(
	ctx context.Context,
	doctorID uuid.UUID,
) (*directoryDomain.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directoryDomain.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*directoryDomain.Doctor, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*directoryDomain.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) SetActive(
	ctx context.Context,
	doctorID uuid.UUID,
	isActive bool,
) error {
	args := m.Called(ctx, doctorID, isActive)
	return args.Error(0)
}

func TestDoctorUseCase_Register(t *testing.T) {
	repo := &MockDoctorRepository{}
	fixedNow := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	uc := NewDoctorUseCase(repo, func() time.Time { return fixedNow })

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *directoryDomain.Doctor) bool {
		return d.FullName == "Dr. Asha Rao" &&
			d.IsActive &&
			d.MaxPatientsPerDay == 30 &&
			d.AverageConsultationMinutes == 12 &&
			d.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	doctor, err := uc.Register(context.Background(), RegisterDoctorInput{
		FullName:                   "Dr. Asha Rao",
		Specialization:             "cardiology",
		MaxPatientsPerDay:          30,
		AverageConsultationMinutes: 12,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doctor.ID)
	assert.True(t, doctor.IsActive)
	repo.AssertExpectations(t)
}

func TestDoctorUseCase_Register_RepositoryError(t *testing.T) {
	repo := &MockDoctorRepository{}
	uc := NewDoctorUseCase(repo, nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	doctor, err := uc.Register(context.Background(), RegisterDoctorInput{FullName: "Dr. Asha Rao"})

	assert.Nil(t, doctor)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestDoctorUseCase_Get(t *testing.T) {
	repo := &MockDoctorRepository{}
	uc := NewDoctorUseCase(repo, nil)

	id := uuid.Must(uuid.NewV7())
	expected := &directoryDomain.Doctor{ID: id, FullName: "Dr. Asha Rao"}

	repo.On("Get", mock.Anything, id).Return(expected, nil)

	doctor, err := uc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, expected, doctor)
	repo.AssertExpectations(t)
}

func TestDoctorUseCase_Get_NotFound(t *testing.T) {
	repo := &MockDoctorRepository{}
	uc := NewDoctorUseCase(repo, nil)

	id := uuid.Must(uuid.NewV7())
	repo.On("Get", mock.Anything, id).Return(nil, directoryDomain.ErrDoctorNotFound)

	doctor, err := uc.Get(context.Background(), id)

	assert.Nil(t, doctor)
	assert.ErrorIs(t, err, directoryDomain.ErrDoctorNotFound)
	repo.AssertExpectations(t)
}

func TestDoctorUseCase_List(t *testing.T) {
	repo := &MockDoctorRepository{}
	uc := NewDoctorUseCase(repo, nil)

	expected := []*directoryDomain.Doctor{
		{ID: uuid.Must(uuid.NewV7()), FullName: "Dr. Asha Rao"},
	}

	repo.On("List", mock.Anything, 0, 50).Return(expected, nil)

	doctors, err := uc.List(context.Background(), 0, 50)

	require.NoError(t, err)
	assert.Equal(t, expected, doctors)
	repo.AssertExpectations(t)
}

func TestDoctorUseCase_SetActive(t *testing.T) {
	repo := &MockDoctorRepository{}
	uc := NewDoctorUseCase(repo, nil)

	id := uuid.Must(uuid.NewV7())
	repo.On("SetActive", mock.Anything, id, false).Return(nil)

	err := uc.SetActive(context.Background(), id, false)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

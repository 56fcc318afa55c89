// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	directoryUseCase "github.com/hospitalos/opdqueue/internal/directory/usecase"
)

// MockDoctorUseCase is a mock implementation of DoctorUseCase for testing.
type MockDoctorUseCase struct {
	mock.Mock
}

// Register mocks the Register method of DoctorUseCase.
func (m *MockDoctorUseCase) Register(
	ctx context.Context,
	input directoryUseCase.RegisterDoctorInput,
) (*directoryDomain.Doctor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directoryDomain.Doctor), args.Error(1)
}

// Get mocks the Get method of DoctorUseCase.
func (m *MockDoctorUseCase) Get(ctx context.Context, doctorID uuid.UUID) (*directoryDomain.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directoryDomain.Doctor), args.Error(1)
}

// List mocks the List method of DoctorUseCase.
func (m *MockDoctorUseCase) List(ctx context.Context, offset, limit int) ([]*directoryDomain.Doctor, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*directoryDomain.Doctor), args.Error(1)
}

// SetActive mocks the SetActive method of DoctorUseCase.
func (m *MockDoctorUseCase) SetActive(ctx context.Context, doctorID uuid.UUID, isActive bool) error {
	args := m.Called(ctx, doctorID, isActive)
	return args.Error(0)
}

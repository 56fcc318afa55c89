// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	queueDomain "github.com/hospitalos/opdqueue/internal/queue/domain"
	queueUseCase "github.com/hospitalos/opdqueue/internal/queue/usecase"
)

// MockQueueUseCase is a mock implementation of QueueUseCase for testing.
type MockQueueUseCase struct {
	mock.Mock
}

// IssueToken mocks the IssueToken method of QueueUseCase.
func (m *MockQueueUseCase) IssueToken(
	ctx context.Context,
	input queueUseCase.IssueTokenInput,
) (*queueDomain.Token, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.Token), args.Error(1)
}

// GetToken mocks the GetToken method of QueueUseCase.
func (m *MockQueueUseCase) GetToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, int, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*queueDomain.Token), args.Int(1), args.Error(2)
}

// ListPatientTokens mocks the ListPatientTokens method of QueueUseCase.
func (m *MockQueueUseCase) ListPatientTokens(
	ctx context.Context,
	patientID uuid.UUID,
	serviceDate time.Time,
) ([]*queueDomain.Token, error) {
	args := m.Called(ctx, patientID, serviceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queueDomain.Token), args.Error(1)
}

// CallNext mocks the CallNext method of QueueUseCase.
func (m *MockQueueUseCase) CallNext(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.Token, error) {
	args := m.Called(ctx, doctorID, serviceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.Token), args.Error(1)
}

// CallToken mocks the CallToken method of QueueUseCase.
func (m *MockQueueUseCase) CallToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.Token), args.Error(1)
}

// CompleteToken mocks the CompleteToken method of QueueUseCase.
func (m *MockQueueUseCase) CompleteToken(
	ctx context.Context,
	tokenID uuid.UUID,
	actualWaitMinutes *int,
	notes string,
) (*queueDomain.Token, error) {
	args := m.Called(ctx, tokenID, actualWaitMinutes, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.Token), args.Error(1)
}

// CancelToken mocks the CancelToken method of QueueUseCase.
func (m *MockQueueUseCase) CancelToken(ctx context.Context, tokenID uuid.UUID) (*queueDomain.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.Token), args.Error(1)
}

// RecomputeEstimates mocks the RecomputeEstimates method of QueueUseCase.
func (m *MockQueueUseCase) RecomputeEstimates(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (int, error) {
	args := m.Called(ctx, doctorID, serviceDate)
	return args.Int(0), args.Error(1)
}

// MockQueueViewUseCase is a mock implementation of QueueViewUseCase for testing.
type MockQueueViewUseCase struct {
	mock.Mock
}

// Snapshot mocks the Snapshot method of QueueViewUseCase.
func (m *MockQueueViewUseCase) Snapshot(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.QueueSnapshot, error) {
	args := m.Called(ctx, doctorID, serviceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.QueueSnapshot), args.Error(1)
}

// DailySummary mocks the DailySummary method of QueueViewUseCase.
func (m *MockQueueViewUseCase) DailySummary(
	ctx context.Context,
	doctorID uuid.UUID,
	serviceDate time.Time,
) (*queueDomain.DailySummary, error) {
	args := m.Called(ctx, doctorID, serviceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueDomain.DailySummary), args.Error(1)
}

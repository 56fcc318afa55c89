package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

func TestRuleBasedEstimator_Estimate(t *testing.T) {
	estimator := NewRuleBasedEstimator(15, 5)
	ctx := context.Background()

	tests := []struct {
		name            string
		positionAhead   int
		doctor          *directoryDomain.Doctor
		expectedMinutes int
	}{
		{
			name:            "first in queue gets only the buffer",
			positionAhead:   0,
			doctor:          &directoryDomain.Doctor{AverageConsultationMinutes: 12},
			expectedMinutes: 5,
		},
		{
			name:            "uses the doctor's recorded average",
			positionAhead:   3,
			doctor:          &directoryDomain.Doctor{AverageConsultationMinutes: 12},
			expectedMinutes: 41,
		},
		{
			name:            "falls back to the default when doctor has no average",
			positionAhead:   3,
			doctor:          &directoryDomain.Doctor{},
			expectedMinutes: 50,
		},
		{
			name:            "nil doctor uses the default",
			positionAhead:   2,
			doctor:          nil,
			expectedMinutes: 35,
		},
		{
			name:            "negative position is clamped to zero",
			positionAhead:   -1,
			doctor:          nil,
			expectedMinutes: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, confidence := estimator.Estimate(ctx, tt.positionAhead, tt.doctor)
			assert.Equal(t, tt.expectedMinutes, minutes)
			assert.Equal(t, 0.6, confidence)
		})
	}
}

func TestHeuristicEstimator_Estimate(t *testing.T) {
	fallback := NewRuleBasedEstimator(15, 5)
	ctx := context.Background()
	doctor := &directoryDomain.Doctor{AverageConsultationMinutes: 10}

	tests := []struct {
		name            string
		hour            int
		positionAhead   int
		expectedMinutes int
		expectedConf    float64
	}{
		{
			name:            "morning rush scales up",
			hour:            10,
			positionAhead:   2,
			expectedMinutes: 30, // (2*10+5) * 1.2
			expectedConf:    0.75,
		},
		{
			name:            "midday is unscaled",
			hour:            13,
			positionAhead:   2,
			expectedMinutes: 25,
			expectedConf:    0.75,
		},
		{
			name:            "late afternoon scales down",
			hour:            15,
			positionAhead:   2,
			expectedMinutes: 22, // (2*10+5) * 0.9, truncated
			expectedConf:    0.75,
		},
		{
			name:            "off hours are unscaled",
			hour:            20,
			positionAhead:   2,
			expectedMinutes: 25,
			expectedConf:    0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := func() time.Time {
				return time.Date(2026, 1, 15, tt.hour, 30, 0, 0, time.UTC)
			}
			estimator := NewHeuristicEstimator(fallback, clock)

			minutes, confidence := estimator.Estimate(ctx, tt.positionAhead, doctor)
			assert.Equal(t, tt.expectedMinutes, minutes)
			assert.Equal(t, tt.expectedConf, confidence)
		})
	}
}

func TestHeuristicEstimator_FallsBackOnDegenerateResult(t *testing.T) {
	// A zero buffer and empty queue produce a zero base estimate; scaling
	// yields nothing usable, so the rule-based result is reported as-is.
	fallback := NewRuleBasedEstimator(15, 0)
	estimator := NewHeuristicEstimator(fallback, func() time.Time {
		return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	})

	minutes, confidence := estimator.Estimate(context.Background(), 0, nil)

	assert.Equal(t, 0, minutes)
	assert.Equal(t, 0.6, confidence)
}

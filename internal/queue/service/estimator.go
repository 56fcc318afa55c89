// Package service implements wait-time estimation for queue tokens.
// The rule-based estimator is the authoritative fallback; richer estimators
// wrap it and must degrade to it rather than fail.
package service

import (
	"context"
	"time"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
)

// Estimator produces a wait estimate in minutes for a token with the given
// number of active tokens ahead of it, plus a confidence in [0, 1].
type Estimator interface {
	Estimate(
		ctx context.Context,
		positionAhead int,
		doctor *directoryDomain.Doctor,
	) (minutes int, confidence float64)
}

// RuleBasedEstimator computes estimates as position times the doctor's average
// consultation time plus a fixed buffer.
type RuleBasedEstimator struct {
	defaultConsultationMinutes int
	bufferMinutes              int
}

// ruleBasedConfidence is the fixed confidence reported by the rule-based model.
const ruleBasedConfidence = 0.6

// Estimate returns positionAhead * per-patient minutes + buffer.
func (r *RuleBasedEstimator) Estimate(
	_ context.Context,
	positionAhead int,
	doctor *directoryDomain.Doctor,
) (int, float64) {
	if positionAhead < 0 {
		positionAhead = 0
	}

	perPatient := r.defaultConsultationMinutes
	if doctor != nil && doctor.AverageConsultationMinutes > 0 {
		perPatient = doctor.AverageConsultationMinutes
	}

	return positionAhead*perPatient + r.bufferMinutes, ruleBasedConfidence
}

// NewRuleBasedEstimator creates a rule-based estimator. defaultConsultationMinutes
// is used when a doctor has no recorded average.
func NewRuleBasedEstimator(defaultConsultationMinutes, bufferMinutes int) *RuleBasedEstimator {
	return &RuleBasedEstimator{
		defaultConsultationMinutes: defaultConsultationMinutes,
		bufferMinutes:              bufferMinutes,
	}
}

// HeuristicEstimator scales the rule-based estimate by a clinic load factor
// derived from the time of day. Any degenerate result falls back to the
// rule-based estimate unchanged.
type HeuristicEstimator struct {
	fallback *RuleBasedEstimator
	now      func() time.Time
}

// heuristicConfidence is reported when the load factor was applied.
const heuristicConfidence = 0.75

// loadFactor returns the expected congestion multiplier for the given hour.
// Morning registration rush runs long; late afternoon runs short.
func loadFactor(hour int) float64 {
	switch {
	case hour >= 9 && hour < 12:
		return 1.2
	case hour >= 12 && hour < 14:
		return 1.0
	case hour >= 14 && hour < 17:
		return 0.9
	default:
		return 1.0
	}
}

// Estimate returns the scaled estimate, or the plain rule-based estimate when
// scaling produces nothing usable.
func (h *HeuristicEstimator) Estimate(
	ctx context.Context,
	positionAhead int,
	doctor *directoryDomain.Doctor,
) (int, float64) {
	baseMinutes, baseConfidence := h.fallback.Estimate(ctx, positionAhead, doctor)

	factor := loadFactor(h.now().Hour())
	scaled := int(float64(baseMinutes) * factor)
	if scaled <= 0 {
		return baseMinutes, baseConfidence
	}

	return scaled, heuristicConfidence
}

// NewHeuristicEstimator creates a heuristic estimator over the given rule-based
// fallback. A nil clock defaults to time.Now.
func NewHeuristicEstimator(fallback *RuleBasedEstimator, now func() time.Time) *HeuristicEstimator {
	if now == nil {
		now = time.Now
	}
	return &HeuristicEstimator{
		fallback: fallback,
		now:      now,
	}
}

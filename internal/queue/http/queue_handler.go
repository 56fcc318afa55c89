package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/httputil"
	"github.com/hospitalos/opdqueue/internal/queue/http/dto"
	queueUseCase "github.com/hospitalos/opdqueue/internal/queue/usecase"
	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// QueueHandler handles HTTP requests for per-doctor queue operations.
type QueueHandler struct {
	queueUseCase queueUseCase.QueueUseCase
	viewUseCase  queueUseCase.QueueViewUseCase
	logger       *slog.Logger
	now          func() time.Time
}

// NewQueueHandler creates a new queue handler with required dependencies.
// A nil clock defaults to time.Now.
func NewQueueHandler(
	useCase queueUseCase.QueueUseCase,
	viewUseCase queueUseCase.QueueViewUseCase,
	logger *slog.Logger,
	now func() time.Time,
) *QueueHandler {
	if now == nil {
		now = time.Now
	}
	return &QueueHandler{
		queueUseCase: useCase,
		viewUseCase:  viewUseCase,
		logger:       logger,
		now:          now,
	}
}

// CallNextHandler calls the lowest-numbered waiting token in the doctor's queue.
// POST /v1/doctors/:doctor_id/queue/call-next
func (h *QueueHandler) CallNextHandler(c *gin.Context) {
	doctorID, serviceDate, ok := h.partitionParams(c)
	if !ok {
		return
	}

	token, err := h.queueUseCase.CallNext(c.Request.Context(), doctorID, serviceDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}

// SnapshotHandler returns the display-board view of the doctor's queue.
// GET /v1/doctors/:doctor_id/queue
func (h *QueueHandler) SnapshotHandler(c *gin.Context) {
	doctorID, serviceDate, ok := h.partitionParams(c)
	if !ok {
		return
	}

	snapshot, err := h.viewUseCase.Snapshot(c.Request.Context(), doctorID, serviceDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSnapshotToResponse(snapshot))
}

// SummaryHandler returns the daily queue summary for reporting.
// GET /v1/doctors/:doctor_id/queue/summary
func (h *QueueHandler) SummaryHandler(c *gin.Context) {
	doctorID, serviceDate, ok := h.partitionParams(c)
	if !ok {
		return
	}

	summary, err := h.viewUseCase.DailySummary(c.Request.Context(), doctorID, serviceDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSummaryToResponse(summary))
}

// RecomputeHandler refreshes the wait estimates of every waiting token in the
// doctor's queue. Intended for operational use when the estimator configuration
// changes mid-day.
// POST /v1/doctors/:doctor_id/queue/recompute
func (h *QueueHandler) RecomputeHandler(c *gin.Context) {
	doctorID, serviceDate, ok := h.partitionParams(c)
	if !ok {
		return
	}

	updated, err := h.queueUseCase.RecomputeEstimates(c.Request.Context(), doctorID, serviceDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated_tokens": updated})
}

// partitionParams parses the doctor_id path parameter and the optional
// service_date query parameter (defaulting to today). On failure it writes
// the error response and returns ok=false.
func (h *QueueHandler) partitionParams(c *gin.Context) (uuid.UUID, time.Time, bool) {
	doctorID, err := uuid.Parse(c.Param("doctor_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return uuid.UUID{}, time.Time{}, false
	}

	raw := c.Query("service_date")
	if raw == "" {
		return doctorID, h.now(), true
	}

	serviceDate, err := time.Parse(customValidation.DateLayout, raw)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid service_date parameter: must be YYYY-MM-DD"), h.logger)
		return uuid.UUID{}, time.Time{}, false
	}

	return doctorID, serviceDate, true
}

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

// TokenHandler handles HTTP requests for token lifecycle operations.
type TokenHandler struct {
	queueUseCase queueUseCase.QueueUseCase
	logger       *slog.Logger
	now          func() time.Time
}

// NewTokenHandler creates a new token handler with required dependencies.
// A nil clock defaults to time.Now.
func NewTokenHandler(
	useCase queueUseCase.QueueUseCase,
	logger *slog.Logger,
	now func() time.Time,
) *TokenHandler {
	if now == nil {
		now = time.Now
	}
	return &TokenHandler{
		queueUseCase: useCase,
		logger:       logger,
		now:          now,
	}
}

// IssueHandler issues a new queue token.
// POST /v1/tokens
// Returns 201 Created with the token, its number, and the initial wait estimate.
func (h *TokenHandler) IssueHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.queueUseCase.IssueToken(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenToResponse(token))
}

// GetHandler retrieves a token with its current queue position.
// GET /v1/tokens/:token_id
func (h *TokenHandler) GetHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("token_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, position, err := h.queueUseCase.GetToken(c.Request.Context(), tokenID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponseWithPosition(token, position))
}

// ListByPatientHandler retrieves a patient's tokens for a service date.
// GET /v1/tokens?patient_id=<uuid>&service_date=YYYY-MM-DD
// The service date defaults to today.
func (h *TokenHandler) ListByPatientHandler(c *gin.Context) {
	patientID, err := uuid.Parse(c.Query("patient_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid patient_id parameter: %w", err), h.logger)
		return
	}

	serviceDate, err := h.serviceDateQuery(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	tokens, err := h.queueUseCase.ListPatientTokens(c.Request.Context(), patientID, serviceDate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokensToListResponse(tokens))
}

// CallHandler calls a specific waiting token out of order.
// POST /v1/tokens/:token_id/call
func (h *TokenHandler) CallHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("token_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.queueUseCase.CallToken(c.Request.Context(), tokenID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}

// CompleteHandler finishes the consultation for a called token.
// POST /v1/tokens/:token_id/complete
func (h *TokenHandler) CompleteHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("token_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.CompleteTokenRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleBadRequestGin(c, err, h.logger)
			return
		}
		if err := req.Validate(); err != nil {
			httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
			return
		}
	}

	token, err := h.queueUseCase.CompleteToken(c.Request.Context(), tokenID, req.ActualWaitMinutes, req.Notes)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}

// CancelHandler removes a waiting token from the queue.
// POST /v1/tokens/:token_id/cancel
func (h *TokenHandler) CancelHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("token_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.queueUseCase.CancelToken(c.Request.Context(), tokenID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token))
}

// serviceDateQuery parses the optional service_date query parameter,
// defaulting to today.
func (h *TokenHandler) serviceDateQuery(c *gin.Context) (time.Time, error) {
	raw := c.Query("service_date")
	if raw == "" {
		return h.now(), nil
	}

	serviceDate, err := time.Parse(customValidation.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid service_date parameter: must be YYYY-MM-DD")
	}

	return serviceDate, nil
}

// Package http provides HTTP handlers for doctor directory operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/directory/http/dto"
	directoryUseCase "github.com/hospitalos/opdqueue/internal/directory/usecase"
	"github.com/hospitalos/opdqueue/internal/httputil"
	customValidation "github.com/hospitalos/opdqueue/internal/validation"
)

// DoctorHandler handles HTTP requests for doctor directory operations.
type DoctorHandler struct {
	doctorUseCase directoryUseCase.DoctorUseCase
	logger        *slog.Logger
}

// NewDoctorHandler creates a new doctor handler with required dependencies.
func NewDoctorHandler(doctorUseCase directoryUseCase.DoctorUseCase, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorUseCase: doctorUseCase,
		logger:        logger,
	}
}

// RegisterHandler registers a new doctor.
// POST /v1/doctors
// Returns 201 Created with the doctor profile.
func (h *DoctorHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterDoctorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	doctor, err := h.doctorUseCase.Register(c.Request.Context(), directoryUseCase.RegisterDoctorInput{
		FullName:                   req.FullName,
		Specialization:             req.Specialization,
		MaxPatientsPerDay:          req.MaxPatientsPerDay,
		AverageConsultationMinutes: req.AverageConsultationMinutes,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDoctorToResponse(doctor))
}

// GetHandler retrieves a doctor by ID.
// GET /v1/doctors/:doctor_id
func (h *DoctorHandler) GetHandler(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("doctor_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	doctor, err := h.doctorUseCase.Get(c.Request.Context(), doctorID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDoctorToResponse(doctor))
}

// ListHandler retrieves doctors with pagination.
// GET /v1/doctors?offset=0&limit=50
func (h *DoctorHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	doctors, err := h.doctorUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDoctorsToListResponse(doctors, offset, limit))
}

// SetStatusHandler updates a doctor's availability.
// PATCH /v1/doctors/:doctor_id/status
func (h *DoctorHandler) SetStatusHandler(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("doctor_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.SetDoctorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.doctorUseCase.SetActive(c.Request.Context(), doctorID, *req.IsActive); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

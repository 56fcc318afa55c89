package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	directoryDomain "github.com/hospitalos/opdqueue/internal/directory/domain"
	"github.com/hospitalos/opdqueue/internal/directory/http/dto"
	"github.com/hospitalos/opdqueue/internal/directory/http/mocks"
	directoryUseCase "github.com/hospitalos/opdqueue/internal/directory/usecase"
)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*DoctorHandler, *mocks.MockDoctorUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockDoctorUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewDoctorHandler(mockUseCase, logger)

	return handler, mockUseCase
}

// createTestContext creates a gin test context with an optional JSON body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// testDoctor builds a doctor fixture.
func testDoctor() *directoryDomain.Doctor {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	return &directoryDomain.Doctor{
		ID:                         uuid.Must(uuid.NewV7()),
		FullName:                   "Dr. Asha Rao",
		Specialization:             "General Medicine",
		IsActive:                   true,
		MaxPatientsPerDay:          30,
		AverageConsultationMinutes: 10,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

func TestDoctorHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctor := testDoctor()
		request := dto.RegisterDoctorRequest{
			FullName:                   doctor.FullName,
			Specialization:             doctor.Specialization,
			MaxPatientsPerDay:          30,
			AverageConsultationMinutes: 10,
		}

		mockUseCase.On("Register", mock.Anything, directoryUseCase.RegisterDoctorInput{
			FullName:                   doctor.FullName,
			Specialization:             doctor.Specialization,
			MaxPatientsPerDay:          30,
			AverageConsultationMinutes: 10,
		}).Return(doctor, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/doctors", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.DoctorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, doctor.ID.String(), response.ID)
		assert.Equal(t, doctor.FullName, response.FullName)
		assert.True(t, response.IsActive)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/doctors", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_BlankFullName", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.RegisterDoctorRequest{
			FullName: "   ",
		}

		c, w := createTestContext(http.MethodPost, "/v1/doctors", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_NegativeCapacity", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		request := dto.RegisterDoctorRequest{
			FullName:          "Dr. Asha Rao",
			MaxPatientsPerDay: -1,
		}

		c, w := createTestContext(http.MethodPost, "/v1/doctors", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDoctorHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctor := testDoctor()

		mockUseCase.On("Get", mock.Anything, doctor.ID).Return(doctor, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/doctors/"+doctor.ID.String(), nil)
		c.Params = gin.Params{{Key: "doctor_id", Value: doctor.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DoctorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, doctor.ID.String(), response.ID)
	})

	t.Run("Error_InvalidDoctorID", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/doctors/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "doctor_id", Value: "not-a-uuid"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctorID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, doctorID).
			Return(nil, directoryDomain.ErrDoctorNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/doctors/"+doctorID.String(), nil)
		c.Params = gin.Params{{Key: "doctor_id", Value: doctorID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "not_found", response["error"])
	})
}

func TestDoctorHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctor := testDoctor()

		mockUseCase.On("List", mock.Anything, 0, 50).
			Return([]*directoryDomain.Doctor{doctor}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/doctors", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListDoctorsResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Doctors, 1)
		assert.Equal(t, 0, response.Offset)
		assert.Equal(t, 50, response.Limit)
	})

	t.Run("Success_CustomPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("List", mock.Anything, 10, 5).
			Return([]*directoryDomain.Doctor{}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/doctors?offset=10&limit=5", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/doctors?limit=abc", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDoctorHandler_SetStatusHandler(t *testing.T) {
	t.Run("Success_Deactivate", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctorID := uuid.Must(uuid.NewV7())
		isActive := false
		request := dto.SetDoctorStatusRequest{IsActive: &isActive}

		mockUseCase.On("SetActive", mock.Anything, doctorID, false).Return(nil).Once()

		c, w := createTestContext(http.MethodPatch, "/v1/doctors/"+doctorID.String()+"/status", request)
		c.Params = gin.Params{{Key: "doctor_id", Value: doctorID.String()}}

		handler.SetStatusHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingIsActive", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		doctorID := uuid.Must(uuid.NewV7())

		c, w := createTestContext(http.MethodPatch, "/v1/doctors/"+doctorID.String()+"/status", map[string]interface{}{})
		c.Params = gin.Params{{Key: "doctor_id", Value: doctorID.String()}}

		handler.SetStatusHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		doctorID := uuid.Must(uuid.NewV7())
		isActive := true
		request := dto.SetDoctorStatusRequest{IsActive: &isActive}

		mockUseCase.On("SetActive", mock.Anything, doctorID, true).
			Return(directoryDomain.ErrDoctorNotFound).Once()

		c, w := createTestContext(http.MethodPatch, "/v1/doctors/"+doctorID.String()+"/status", request)
		c.Params = gin.Params{{Key: "doctor_id", Value: doctorID.String()}}

		handler.SetStatusHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package borrow_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studio/config"
	"studio/infras/otel/mocks"
	"studio/internal/domains/borrow/model/dto"
	serviceMocks "studio/internal/domains/borrow/service/mocks"
	"studio/internal/handlers/borrow"
	"studio/shared/failure"
	"studio/transport/http/middleware"
)

func newRouter(t *testing.T, apiKey string) (*serviceMocks.MockBorrow, *chi.Mux) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockBorrow(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	handler := borrow.New(mockService, middleware.NewAuthMiddleware(cfg), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestHandler_SubmitBorrow(t *testing.T) {
	payload := `{
		"studentName": "Omar Al Ketbi",
		"studentId": "202298765",
		"email": "omar@uaeu.ac.ae",
		"phone": "0559876543",
		"college": "CHSS",
		"department": "Media",
		"equipmentType": "Camera",
		"equipmentName": "Sony FX3, tripod, lav mic",
		"borrowDate": "2026-09-20",
		"returnDate": "2026-09-22",
		"purpose": "Documentary shoot",
		"supervisor": "Dr. Ahmed"
	}`

	tests := []struct {
		name      string
		payload   string
		setupMock func(mockService *serviceMocks.MockBorrow)
		wantCode  int
	}{
		{
			name:    "valid submission",
			payload: payload,
			setupMock: func(mockService *serviceMocks.MockBorrow) {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing equipment name",
			payload:   `{"studentName": "Omar Al Ketbi"}`,
			setupMock: func(mockService *serviceMocks.MockBorrow) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t, "")
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/submit-borrow", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetBorrows(t *testing.T) {
	mockService, router := newRouter(t, "")

	mockService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]dto.BorrowResponse{{ID: 1, Status: "Pending"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/borrows", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []dto.BorrowResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_UpdateBorrowStatus(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setupMock func(mockService *serviceMocks.MockBorrow)
		wantCode  int
	}{
		{
			name:   "reject with valid key",
			header: "studio-secret",
			setupMock: func(mockService *serviceMocks.MockBorrow) {
				mockService.EXPECT().
					UpdateStatus(gomock.Any(), int64(3), dto.UpdateStatusRequest{Status: "Rejected"}).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "wrong key",
			header:    "not-the-key",
			setupMock: func(mockService *serviceMocks.MockBorrow) {},
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t, "studio-secret")
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/borrows/3", strings.NewReader(`{"status": "Rejected"}`))
			req.Header.Set("X-API-Key", tt.header)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_DeleteBorrow(t *testing.T) {
	mockService, router := newRouter(t, "")

	mockService.EXPECT().
		Delete(gomock.Any(), int64(3)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/borrows/3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Borrow request deleted successfully")
}

func TestHandler_SendReminder(t *testing.T) {
	mockService, router := newRouter(t, "")

	mockService.EXPECT().
		SendReminder(gomock.Any(), int64(3)).
		Return(failure.NotFound("borrow request not found"))

	req := httptest.NewRequest(http.MethodPost, "/send-borrow-reminder", strings.NewReader(`{"id": 3}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

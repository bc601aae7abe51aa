package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
	"github.com/siamsail/charterdesk/internal/dto"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return bookings, token, args.Error(2)
}

func (m *MockBookingService) GetFinanceSummary(ctx context.Context, bookingID string) (*dto.FinanceSummaryResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinanceSummaryResponse), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ApplyFinanceEdit(ctx context.Context, bookingID string, edit finance.Edit, editorUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, edit, editorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBookingDetails(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, editorUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, req, editorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID string, deleterUserID string) error {
	args := m.Called(ctx, bookingID, deleterUserID)
	return args.Error(0)
}

func setupBookingRouter(svc *MockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registerBookingRoutes(router.Group("/api/v1"), svc)
	return router
}

func sampleBooking() *domain.Booking {
	b := &domain.Booking{
		BookingID:   "bk-1",
		Reference:   "BK-1001",
		CharterType: domain.CharterCrewed,
		YachtName:   "Sea Whisper",
		StartDate:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
	}
	b.Currency = "THB"
	b.CharterFee = decimal.NewFromInt(100000)
	b.TotalPrice = decimal.NewFromInt(100000)
	b.SourceType = domain.SourceDirect
	b.PaymentStatus = domain.PaymentUnpaid
	return b
}

func TestCreateBooking_Created(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req dto.CreateBookingRequest) bool {
		return req.Reference == "BK-1001" && req.Currency == "THB"
	}), "finance-team").Return(sampleBooking(), nil).Once()

	body := `{
		"reference": "BK-1001",
		"charterType": "crewed",
		"bookingSourceType": "direct",
		"currency": "THB",
		"charterFee": "100000",
		"startDate": "2026-11-01T00:00:00Z",
		"endDate": "2026-11-08T00:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "finance-team")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bk-1", resp.BookingID)
	assert.Equal(t, "BK-1001", resp.Reference)
	mockSvc.AssertExpectations(t)
}

func TestCreateBooking_MissingRequiredFields(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(`{"reference": "BK-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_DuplicateReference(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("CreateBooking", mock.Anything, mock.Anything, "backoffice").
		Return(nil, fmt.Errorf("%w: reference BK-1001 already exists", apperrors.ErrDuplicate)).Once()

	body := `{
		"reference": "BK-1001",
		"charterType": "crewed",
		"bookingSourceType": "direct",
		"currency": "THB",
		"startDate": "2026-11-01T00:00:00Z",
		"endDate": "2026-11-08T00:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetBooking_NotFound(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("GetBookingByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookings_DefaultLimitAndToken(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	token := "b3BhcXVl"
	mockSvc.On("ListBookings", mock.Anything, 20, (*string)(nil)).
		Return([]domain.Booking{*sampleBooking()}, &token, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, resp.NextToken)
	assert.Equal(t, token, *resp.NextToken)
	mockSvc.AssertExpectations(t)
}

func TestListBookings_LimitOutOfRange(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?limit=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ListBookings", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyFinanceEdit_ValidationError(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("ApplyFinanceEdit", mock.Anything, "bk-1", mock.MatchedBy(func(edit finance.Edit) bool {
		return edit.FxRate != nil
	}), "backoffice").
		Return(nil, fmt.Errorf("%w: fx rate must be positive", apperrors.ErrValidation)).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/bk-1/finance", bytes.NewBufferString(`{"fxRate": "-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetFinanceSummary_OK(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("GetFinanceSummary", mock.Anything, "bk-1").Return(&dto.FinanceSummaryResponse{
		BookingID:         "bk-1",
		CharterBaseTHB:    decimal.NewFromInt(31500),
		CommissionBaseTHB: decimal.NewFromInt(31500),
		TotalCommission:   decimal.NewFromInt(630),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/bk-1/finance/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.FinanceSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bk-1", resp.BookingID)
	assert.True(t, resp.TotalCommission.Equal(decimal.NewFromInt(630)))
}

func TestDeleteBooking_NoContent(t *testing.T) {
	mockSvc := new(MockBookingService)
	router := setupBookingRouter(mockSvc)

	mockSvc.On("DeleteBooking", mock.Anything, "bk-1", "backoffice").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/bk-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}

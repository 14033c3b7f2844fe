package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "github.com/cahuala/ordersApi/analytics-svc/internal/api/http"
	"github.com/cahuala/ordersApi/analytics-svc/internal/domain"
	"github.com/cahuala/ordersApi/analytics-svc/internal/mocks"
	"github.com/cahuala/ordersApi/logger"
)

func serve(t *testing.T, mockAnalytics *mocks.AnalyticsInterface, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := httpapi.NewRouter(httpapi.NewHandler(mockAnalytics, logger.New("analytics-svc", io.Discard)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestTopTodayHandler(t *testing.T) {
	foodID := uuid.New()
	tests := []struct {
		name      string
		target    string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
		wantFoods int
	}{
		{
			name:   "default limit",
			target: "/api/analytics/top-today",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {
				mockAnalytics.On("TopToday", mock.Anything, 10).
					Return([]domain.FoodSales{{FoodID: foodID, Title: "Pizza", Quantity: 4}}, nil)
			},
			wantCode:  http.StatusOK,
			wantFoods: 1,
		},
		{
			name:   "explicit limit",
			target: "/api/analytics/top-today?limit=3",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {
				mockAnalytics.On("TopToday", mock.Anything, 3).Return(nil, nil)
			},
			wantCode:  http.StatusOK,
			wantFoods: 0,
		},
		{
			name:      "limit too large",
			target:    "/api/analytics/top-today?limit=500",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "limit not a number",
			target:    "/api/analytics/top-today?limit=abc",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "service error",
			target: "/api/analytics/top-today",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {
				mockAnalytics.On("TopToday", mock.Anything, 10).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(mockAnalytics)

			rec := serve(t, mockAnalytics, http.MethodGet, testCase.target)

			assert.Equal(t, testCase.wantCode, rec.Code)
			if testCase.wantCode != http.StatusOK {
				return
			}
			var body domain.TopFoods
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Date)
			assert.NotNil(t, body.Foods)
			assert.Len(t, body.Foods, testCase.wantFoods)
		})
	}
}

func TestTopAllTimeHandler(t *testing.T) {
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	mockAnalytics.On("TopAllTime", mock.Anything, 5).
		Return([]domain.FoodSales{{FoodID: uuid.New(), Title: "Soup", Quantity: 12}}, nil)

	rec := serve(t, mockAnalytics, http.MethodGet, "/api/analytics/top-alltime?limit=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "date")
	foods := body["foods"].([]interface{})
	require.Len(t, foods, 1)
	assert.Equal(t, "Soup", foods[0].(map[string]interface{})["title"])
}

func TestSessionBillHandler(t *testing.T) {
	sessionID := uuid.New()
	tests := []struct {
		name      string
		target    string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
	}{
		{
			name:   "found",
			target: "/api/analytics/sessions/" + sessionID.String() + "/bill",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {
				mockAnalytics.On("SessionBill", mock.Anything, sessionID).Return(&domain.SessionBill{
					TableSessionID: sessionID,
					Billed:         decimal.RequireFromString("18.50"),
					Items:          2,
					Status:         "paid",
					Source:         domain.SourceCache,
				}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/analytics/sessions/" + sessionID.String() + "/bill",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {
				mockAnalytics.On("SessionBill", mock.Anything, sessionID).Return(nil, domain.ErrBillNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed id",
			target:    "/api/analytics/sessions/42/bill",
			setupMock: func(mockAnalytics *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(mockAnalytics)

			rec := serve(t, mockAnalytics, http.MethodGet, testCase.target)

			assert.Equal(t, testCase.wantCode, rec.Code)
		})
	}
}

func TestSessionBillHandlerWritesNumbers(t *testing.T) {
	sessionID := uuid.New()
	mockAnalytics := mocks.NewAnalyticsInterface(t)
	mockAnalytics.On("SessionBill", mock.Anything, sessionID).Return(&domain.SessionBill{
		TableSessionID: sessionID,
		Billed:         decimal.RequireFromString("18.50"),
		Items:          2,
		Status:         "paid",
		Source:         domain.SourceDatabase,
	}, nil)

	rec := serve(t, mockAnalytics, http.MethodGet, "/api/analytics/sessions/"+sessionID.String()+"/bill")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 18.5, body["billed"])
	assert.Equal(t, float64(2), body["items"])
	assert.Equal(t, "paid", body["status"])
}

func TestAnalyticsHealth(t *testing.T) {
	rec := serve(t, mocks.NewAnalyticsInterface(t), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "analytics-svc")
}

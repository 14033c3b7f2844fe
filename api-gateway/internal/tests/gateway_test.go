package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cahuala/ordersApi/api-gateway/internal/gateway"
	"github.com/cahuala/ordersApi/api-gateway/internal/mocks"
	"github.com/cahuala/ordersApi/logger"
)

var testConfig = gateway.Config{
	POSSvcURL:       "http://pos-svc",
	AnalyticsSvcURL: "http://analytics-svc",
}

func newGateway(client gateway.HTTPClient) *gateway.Gateway {
	return gateway.NewGateway(testConfig, client, logger.New("api-gateway", io.Discard))
}

func okResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newGateway(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Targets(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		wantURL string
	}{
		{
			name:    "catalog list keeps the query",
			method:  http.MethodGet,
			target:  "/api/foods?q=pizza&page=2",
			wantURL: "http://pos-svc/foods?q=pizza&page=2",
		},
		{
			name:    "session close",
			method:  http.MethodPost,
			target:  "/api/tables-sessions/close/7b0c1f8e-2b7a-4c55-9d8e-8d2b5b1e0f11",
			wantURL: "http://pos-svc/tables-sessions/close/7b0c1f8e-2b7a-4c55-9d8e-8d2b5b1e0f11",
		},
		{
			name:    "analytics keeps its prefix",
			method:  http.MethodGet,
			target:  "/api/analytics/top-today?limit=5",
			wantURL: "http://analytics-svc/api/analytics/top-today?limit=5",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method &&
					req.URL.String() == testCase.wantURL &&
					req.Header.Get("X-Request-ID") != ""
			})).Return(okResponse(http.StatusOK, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.target, nil)
			rr := httptest.NewRecorder()

			newGateway(mockClient).SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_CopiesUpstreamResponse(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Header.Get("X-Request-ID") == "req-42" && string(body) == `{"name":"T1","totalPax":4}`
	})).Return(okResponse(http.StatusCreated, `{"id":"t1"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/tables", strings.NewReader(`{"name":"T1","totalPax":4}`))
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "t1")
}

func TestGateway_RouteHandler_NotFound(t *testing.T) {
	gw := newGateway(nil)

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "502")
}

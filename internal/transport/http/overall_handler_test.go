package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/analytics"
	apierrors "fundpulse/internal/errors"
	"fundpulse/internal/services"
	"fundpulse/internal/shared/testutil"
)

func newOverallHandler(t *testing.T) (*OverallHandler, *MockAnalyticsService) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	svc := new(MockAnalyticsService)
	return NewOverallHandler(svc, logger, apierrors.NewErrorHandler(logger, false)), svc
}

func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestOverallHandler_GetSummary(t *testing.T) {
	h, svc := newOverallHandler(t)
	svc.On("Summary", mock.Anything).Return(services.OverallSummary{
		TotalInvested:     decimal.NewFromInt(65),
		MaxSingleFunding:  decimal.NewFromInt(30),
		AverageTicketSize: decimal.NewFromInt(21),
		FundedStartups:    3,
	}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/summary")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "65", body["total_invested"])
	assert.Equal(t, float64(3), body["funded_startups"])
	svc.AssertExpectations(t)
}

func TestOverallHandler_TopSectors(t *testing.T) {
	h, svc := newOverallHandler(t)
	rows := []analytics.LabelAmount{
		{Label: "Fintech", Amount: decimal.NewFromInt(40)},
		{Label: "Health", Amount: decimal.NewFromInt(25)},
	}
	svc.On("TopSectors", mock.Anything, 10).Return(rows, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/top-sectors")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	got := body["rows"].([]interface{})
	require.Len(t, got, 2)
	assert.Equal(t, "Fintech", got[0].(map[string]interface{})["label"])
	assert.NotContains(t, body, "chart")
	svc.AssertExpectations(t)
}

func TestOverallHandler_TopSectors_CustomLimitAndChart(t *testing.T) {
	h, svc := newOverallHandler(t)
	rows := []analytics.LabelAmount{{Label: "Fintech", Amount: decimal.NewFromInt(40)}}
	svc.On("TopSectors", mock.Anything, 5).Return(rows, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/top-sectors?limit=5&chart=bar")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	chartBody, ok := body["chart"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "horizontal_bar", chartBody["type"])
	svc.AssertExpectations(t)
}

func TestOverallHandler_InvalidLimit(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"not an integer", "/top-sectors?limit=abc"},
		{"below minimum", "/top-sectors?limit=0"},
		{"above maximum", "/top-sectors?limit=101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newOverallHandler(t)

			rr := doRequest(t, h.Routes(), http.MethodGet, tt.target)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			body := decodeBody(t, rr)
			assert.Equal(t, "/errors/validation", body["type"])
			assert.Equal(t, "VALIDATION_FAILED", body["error_code"])
			svc.AssertNotCalled(t, "TopSectors")
		})
	}
}

func TestOverallHandler_FundingByMonth_LineChart(t *testing.T) {
	h, svc := newOverallHandler(t)
	trend := []analytics.MonthlyPoint{
		{Year: 2016, Month: 1, Label: "1-2016", Amount: decimal.NewFromInt(15), Count: 2},
	}
	svc.On("FundingByMonth", mock.Anything).Return(trend, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/funding-by-month?chart=line")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	chartBody := body["chart"].(map[string]interface{})
	assert.Equal(t, "line", chartBody["type"])
	svc.AssertExpectations(t)
}

func TestOverallHandler_FundingHeatmap(t *testing.T) {
	h, svc := newOverallHandler(t)
	pivot := analytics.Pivot{
		Years:  []int{2016},
		Months: []int{1},
		Cells:  map[int]map[int]decimal.Decimal{2016: {1: decimal.NewFromInt(10)}},
	}
	svc.On("FundingPivot", mock.Anything).Return(pivot, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/funding-heatmap")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "heatmap", body["type"])
	matrix := body["matrix"].(map[string]interface{})
	assert.Equal(t, []interface{}{"2016"}, matrix["row_labels"])
	svc.AssertExpectations(t)
}

func TestOverallHandler_ServiceError(t *testing.T) {
	h, svc := newOverallHandler(t)
	svc.On("Summary", mock.Anything).Return(services.OverallSummary{}, assert.AnError)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/summary")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Internal Server Error", body["title"])
	svc.AssertExpectations(t)
}

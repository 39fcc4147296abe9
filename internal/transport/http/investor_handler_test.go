package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundpulse/internal/analytics"
	apierrors "fundpulse/internal/errors"
	"fundpulse/internal/shared/testutil"
)

func newInvestorHandler(t *testing.T) (*InvestorHandler, *MockAnalyticsService) {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	svc := new(MockAnalyticsService)
	return NewInvestorHandler(svc, logger, apierrors.NewErrorHandler(logger, false)), svc
}

func TestInvestorHandler_ListNames(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorNames", mock.Anything).Return([]string{"Accel", "Sequoia"}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, []interface{}{"Accel", "Sequoia"}, body["names"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_GetRecent(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorRecent", mock.Anything, "Sequoia").Return([]analytics.InvestmentDetail{
		{
			Date:      time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
			Startup:   "Alpha",
			Vertical:  "Fintech",
			Investors: "Sequoia, Accel",
			Amount:    decimal.NewFromInt(10),
		},
	}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Sequoia/recent")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	rows := body["rows"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].(map[string]interface{})["startup"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_GetRecent_EmptyMatchIsNotAnError(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorRecent", mock.Anything, "Nobody").Return([]analytics.InvestmentDetail(nil), nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Nobody/recent")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, []interface{}{}, body["rows"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_Breakdowns(t *testing.T) {
	rows := []analytics.LabelAmount{{Label: "Fintech", Amount: decimal.NewFromInt(90)}}

	tests := []struct {
		name   string
		target string
		method string
	}{
		{"biggest", "/Sequoia/biggest", "InvestorBiggest"},
		{"sectors", "/Sequoia/sectors", "InvestorSectors"},
		{"subsectors", "/Sequoia/subsectors", "InvestorSubsectors"},
		{"cities", "/Sequoia/cities", "InvestorCities"},
		{"round types", "/Sequoia/round-types", "InvestorRoundTypes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newInvestorHandler(t)
			svc.On(tt.method, mock.Anything, "Sequoia").Return(rows, nil)

			rr := doRequest(t, h.Routes(), http.MethodGet, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)

			body := decodeBody(t, rr)
			got := body["rows"].([]interface{})
			require.Len(t, got, 1)
			assert.Equal(t, "Fintech", got[0].(map[string]interface{})["label"])
			svc.AssertExpectations(t)
		})
	}
}

func TestInvestorHandler_SectorsPieChart(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorSectors", mock.Anything, "Sequoia").Return(
		[]analytics.LabelAmount{{Label: "Fintech", Amount: decimal.NewFromInt(90)}}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Sequoia/sectors?chart=pie")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	chartBody := body["chart"].(map[string]interface{})
	assert.Equal(t, "pie", chartBody["type"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_GetYearly(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorYearly", mock.Anything, "Sequoia").Return([]analytics.YearAmount{
		{Year: 2016, Amount: decimal.NewFromInt(40)},
		{Year: 2017, Amount: decimal.NewFromInt(80)},
	}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Sequoia/yearly?chart=line")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	rows := body["rows"].([]interface{})
	require.Len(t, rows, 2)
	chartBody := body["chart"].(map[string]interface{})
	assert.Equal(t, "line", chartBody["type"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_GetSimilar(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorSimilar", mock.Anything, "Sequoia").Return([]string{"Accel", "Tiger"}, nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Sequoia/similar")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, []interface{}{"Accel", "Tiger"}, body["names"])
	svc.AssertExpectations(t)
}

func TestInvestorHandler_GetSimilar_Empty(t *testing.T) {
	h, svc := newInvestorHandler(t)
	svc.On("InvestorSimilar", mock.Anything, "Nobody").Return([]string(nil), nil)

	rr := doRequest(t, h.Routes(), http.MethodGet, "/Nobody/similar")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, []interface{}{}, body["names"])
	svc.AssertExpectations(t)
}

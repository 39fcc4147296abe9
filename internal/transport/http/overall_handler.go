package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fundpulse/internal/analytics"
	"fundpulse/internal/chart"
	apierrors "fundpulse/internal/errors"
)

// OverallHandler serves the whole-dataset aggregation endpoints.
type OverallHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewOverallHandler creates the overall analysis handler.
func NewOverallHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *OverallHandler {
	return &OverallHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "overall")),
		errorHandler: errorHandler,
	}
}

// Routes returns the overall analysis routes.
func (h *OverallHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/funding-by-month", h.GetFundingByMonth)
	r.Get("/funded-count-by-month", h.GetFundedCountByMonth)
	r.Get("/top-sectors", h.GetTopSectors)
	r.Get("/top-round-types", h.GetTopRoundTypes)
	r.Get("/top-cities", h.GetTopCities)
	r.Get("/top-investors", h.GetTopInvestors)
	r.Get("/top-startups-yearly", h.GetTopStartupsYearly)
	r.Get("/funding-heatmap", h.GetFundingHeatmap)

	return r
}

// rankedResponse is a ranking result table with an optional chart
// envelope selected through ?chart.
type rankedResponse struct {
	Rows  []analytics.LabelAmount `json:"rows"`
	Chart *chart.Spec             `json:"chart,omitempty"`
}

// trendResponse is a month-over-month result table with an optional
// chart envelope.
type trendResponse struct {
	Rows  []analytics.MonthlyPoint `json:"rows"`
	Chart *chart.Spec              `json:"chart,omitempty"`
}

// GetSummary handles GET /api/overall/summary.
func (h *OverallHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// GetFundingByMonth handles GET /api/overall/funding-by-month.
func (h *OverallHandler) GetFundingByMonth(w http.ResponseWriter, r *http.Request) {
	trend, err := h.service.FundingByMonth(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	resp := trendResponse{Rows: trend}
	if chartParam(r) == "line" {
		resp.Chart = chart.Line("Total funding month over month", "Month", "Amount (crore)", trend, false)
	}
	render.JSON(w, r, resp)
}

// GetFundedCountByMonth handles GET /api/overall/funded-count-by-month.
func (h *OverallHandler) GetFundedCountByMonth(w http.ResponseWriter, r *http.Request) {
	trend, err := h.service.FundedCountByMonth(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	resp := trendResponse{Rows: trend}
	if chartParam(r) == "line" {
		resp.Chart = chart.Line("Funded startups month over month", "Month", "Startups", trend, true)
	}
	render.JSON(w, r, resp)
}

// GetTopSectors handles GET /api/overall/top-sectors.
func (h *OverallHandler) GetTopSectors(w http.ResponseWriter, r *http.Request) {
	h.ranked(w, r, "Most funded sectors", h.service.TopSectors)
}

// GetTopRoundTypes handles GET /api/overall/top-round-types.
func (h *OverallHandler) GetTopRoundTypes(w http.ResponseWriter, r *http.Request) {
	h.ranked(w, r, "Most funded round types", h.service.TopRoundTypes)
}

// GetTopCities handles GET /api/overall/top-cities.
func (h *OverallHandler) GetTopCities(w http.ResponseWriter, r *http.Request) {
	h.ranked(w, r, "Most funded cities", h.service.TopCities)
}

// GetTopInvestors handles GET /api/overall/top-investors.
func (h *OverallHandler) GetTopInvestors(w http.ResponseWriter, r *http.Request) {
	h.ranked(w, r, "Top investors", h.service.TopInvestors)
}

func (h *OverallHandler) ranked(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	query func(ctx context.Context, limit int) ([]analytics.LabelAmount, error),
) {
	limit, apiErr := parseLimit(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	rows, err := query(r.Context(), limit)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	resp := rankedResponse{Rows: rows}
	switch chartParam(r) {
	case "bar":
		resp.Chart = chart.HorizontalBar(title, "Amount (crore)", title, rows)
	case "pie":
		resp.Chart = chart.Pie(title, rows)
	}
	render.JSON(w, r, resp)
}

// GetTopStartupsYearly handles GET /api/overall/top-startups-yearly.
func (h *OverallHandler) GetTopStartupsYearly(w http.ResponseWriter, r *http.Request) {
	tops, err := h.service.TopStartupsYearly(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"rows": tops})
}

// GetFundingHeatmap handles GET /api/overall/funding-heatmap.
func (h *OverallHandler) GetFundingHeatmap(w http.ResponseWriter, r *http.Request) {
	pivot, err := h.service.FundingPivot(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, chart.HeatmapFromPivot("Funding by year and month", pivot))
}

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

// InvestorHandler serves the per-investor endpoints. The {name} URL
// parameter is matched as a substring of the raw investors field, so a
// query may hit more rows than the exact investor meant.
type InvestorHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewInvestorHandler creates the per-investor handler.
func NewInvestorHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *InvestorHandler {
	return &InvestorHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "investor")),
		errorHandler: errorHandler,
	}
}

// Routes returns the investor routes.
func (h *InvestorHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListNames)
	r.Route("/{name}", func(r chi.Router) {
		r.Get("/recent", h.GetRecent)
		r.Get("/biggest", h.GetBiggest)
		r.Get("/sectors", h.GetSectors)
		r.Get("/subsectors", h.GetSubsectors)
		r.Get("/cities", h.GetCities)
		r.Get("/round-types", h.GetRoundTypes)
		r.Get("/yearly", h.GetYearly)
		r.Get("/similar", h.GetSimilar)
	})

	return r
}

// ListNames handles GET /api/investors.
func (h *InvestorHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.InvestorNames(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"names": names})
}

// GetRecent handles GET /api/investors/{name}/recent. Rows come back
// in table order; an empty match is an empty list, not an error.
func (h *InvestorHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	name, apiErr := nameParam(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	details, err := h.service.InvestorRecent(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if details == nil {
		details = []analytics.InvestmentDetail{}
	}
	render.JSON(w, r, map[string]interface{}{"rows": details})
}

// GetBiggest handles GET /api/investors/{name}/biggest.
func (h *InvestorHandler) GetBiggest(w http.ResponseWriter, r *http.Request) {
	h.breakdown(w, r, "Biggest investments", h.service.InvestorBiggest)
}

// GetSectors handles GET /api/investors/{name}/sectors.
func (h *InvestorHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	h.breakdown(w, r, "Sectors invested in", h.service.InvestorSectors)
}

// GetSubsectors handles GET /api/investors/{name}/subsectors.
func (h *InvestorHandler) GetSubsectors(w http.ResponseWriter, r *http.Request) {
	h.breakdown(w, r, "Subsectors invested in", h.service.InvestorSubsectors)
}

// GetCities handles GET /api/investors/{name}/cities.
func (h *InvestorHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	h.breakdown(w, r, "Cities invested in", h.service.InvestorCities)
}

// GetRoundTypes handles GET /api/investors/{name}/round-types.
func (h *InvestorHandler) GetRoundTypes(w http.ResponseWriter, r *http.Request) {
	h.breakdown(w, r, "Round types", h.service.InvestorRoundTypes)
}

func (h *InvestorHandler) breakdown(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	query func(ctx context.Context, name string) ([]analytics.LabelAmount, error),
) {
	name, apiErr := nameParam(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	rows, err := query(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if rows == nil {
		rows = []analytics.LabelAmount{}
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

// GetYearly handles GET /api/investors/{name}/yearly.
func (h *InvestorHandler) GetYearly(w http.ResponseWriter, r *http.Request) {
	name, apiErr := nameParam(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	trend, err := h.service.InvestorYearly(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if trend == nil {
		trend = []analytics.YearAmount{}
	}

	resp := map[string]interface{}{"rows": trend}
	if chartParam(r) == "line" {
		resp["chart"] = chart.YearlyLine("Year-over-year investment", "Year", "Amount (crore)", trend)
	}
	render.JSON(w, r, resp)
}

// GetSimilar handles GET /api/investors/{name}/similar. The selection
// is random by design; callers should treat membership, not order, as
// meaningful.
func (h *InvestorHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	name, apiErr := nameParam(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	similar, err := h.service.InvestorSimilar(r.Context(), name)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if similar == nil {
		similar = []string{}
	}
	render.JSON(w, r, map[string]interface{}{"names": similar})
}

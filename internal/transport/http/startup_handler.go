package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fundpulse/internal/analytics"
	apierrors "fundpulse/internal/errors"
)

// StartupHandler serves the per-startup endpoints.
type StartupHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewStartupHandler creates the per-startup handler.
func NewStartupHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *StartupHandler {
	return &StartupHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "startup")),
		errorHandler: errorHandler,
	}
}

// Routes returns the startup routes.
func (h *StartupHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListNames)
	r.Get("/{name}", h.GetProfile)

	return r
}

// ListNames handles GET /api/startups.
func (h *StartupHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.StartupNames(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{"names": names})
}

// GetProfile handles GET /api/startups/{name}.
func (h *StartupHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	name, apiErr := nameParam(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	profile, err := h.service.Startup(r.Context(), name)
	if err != nil {
		if errors.Is(err, analytics.ErrNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.NotFoundError("startup "+name))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, profile)
}

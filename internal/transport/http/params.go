package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apierrors "fundpulse/internal/errors"
)

// defaultLimit is the ranking size used when the caller omits ?limit.
const defaultLimit = 10

var validate = validator.New()

// limitParams validates the ?limit query parameter.
type limitParams struct {
	Limit int `validate:"min=1,max=100"`
}

// parseLimit reads and validates the limit query parameter.
func parseLimit(r *http.Request) (int, *apierrors.APIError) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierrors.ErrValidation("limit", "must be an integer")
	}
	if err := validate.Struct(limitParams{Limit: limit}); err != nil {
		return 0, apierrors.ErrValidation("limit", "must be between 1 and 100")
	}
	return limit, nil
}

// chartParam reads the optional ?chart parameter. Empty means no chart
// envelope.
func chartParam(r *http.Request) string {
	return r.URL.Query().Get("chart")
}

// nameParam decodes the {name} URL parameter.
func nameParam(r *http.Request) (string, *apierrors.APIError) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return "", apierrors.ErrValidation("name", "a non-empty name is required")
	}
	return name, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/league"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

// errorResponse is the body of every failed API call.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps league errors to status codes. Validation problems and
// unknown players are the caller's fault; everything else is ours.
func writeError(w http.ResponseWriter, err error) {
	var verr *league.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, league.ErrPlayerNotFound):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, league.ErrMatchNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, league.ErrCatalogUnavailable):
		log.Error("Champion catalog unavailable", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: league.ErrCatalogUnavailable.Error()})
	case errors.Is(err, league.ErrDatastoreUnavailable):
		log.Error("Datastore unavailable", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: league.ErrDatastoreUnavailable.Error()})
	default:
		log.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/lifecycle"
	"github.com/autogy/listing-service/internal/listing/selection"
	"github.com/autogy/listing-service/internal/listing/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps domain errors onto HTTP statuses. Absence is a
// plain 404; only unclassified failures become a 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrDealerNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "operation not permitted"})
	case errors.Is(err, domain.ErrInvalidListing),
		errors.Is(err, selection.ErrCompareFull):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

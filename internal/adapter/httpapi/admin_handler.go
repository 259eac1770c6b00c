package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/usecase"
)

// AdminHandler serves the moderation endpoints. The router guards the
// whole group with RequireAdmin.
type AdminHandler struct {
	admin  *usecase.AdminUseCase
	logger *zap.Logger
}

func NewAdminHandler(admin *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

func (h *AdminHandler) ApproveDealer(w http.ResponseWriter, r *http.Request) {
	h.dealerAction(w, r, h.admin.ApproveDealer)
}

func (h *AdminHandler) RejectDealer(w http.ResponseWriter, r *http.Request) {
	h.dealerAction(w, r, h.admin.RejectDealer)
}

func (h *AdminHandler) SuspendDealer(w http.ResponseWriter, r *http.Request) {
	h.dealerAction(w, r, h.admin.SuspendDealer)
}

func (h *AdminHandler) dealerAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) error) {
	if err := action(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.SuspendUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ReinstateUser(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.ReinstateUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) PurgeUser(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.PurgeUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) Dealers(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.admin.Dealers(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, dealers)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.Users(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.admin.Listings(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/usecase"
)

type FavoriteHandler struct {
	favorites *usecase.FavoriteUseCase
	logger    *zap.Logger
}

func NewFavoriteHandler(favorites *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, logger: logger}
}

type setFavoriteRequest struct {
	Favorited bool `json:"favorited"`
}

// SetFavorite states the desired end state instead of toggling, so a
// retried request cannot undo itself.
func (h *FavoriteHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	var req setFavoriteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actor := actorFromContext(r.Context())
	if err := h.favorites.SetFavorite(r.Context(), actor.UserID, chi.URLParam(r, "id"), req.Favorited); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *FavoriteHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	listings, err := h.favorites.Favorites(r.Context(), actor.UserID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *FavoriteHandler) FavoriteIDs(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())

	ids, err := h.favorites.FavoriteIDs(r.Context(), actor.UserID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	respondJSON(w, http.StatusOK, ids)
}

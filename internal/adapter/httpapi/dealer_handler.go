package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/usecase"
)

// DealerHandler serves dealership registration and profile upkeep for
// authenticated users.
type DealerHandler struct {
	dealers *usecase.DealerUseCase
	logger  *zap.Logger
}

func NewDealerHandler(dealers *usecase.DealerUseCase, logger *zap.Logger) *DealerHandler {
	return &DealerHandler{dealers: dealers, logger: logger}
}

type dealerRequest struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Region       string `json:"region"`
	ContactPhone string `json:"contact_phone"`
	WhatsApp     string `json:"whatsapp"`
	LogoURL      string `json:"logo_url"`
	BannerURL    string `json:"banner_url"`
	Address      string `json:"address"`
	Description  string `json:"description"`
}

func (req *dealerRequest) toEntity(id string) *domain.Dealer {
	return &domain.Dealer{
		ID:           id,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Region:       req.Region,
		ContactPhone: req.ContactPhone,
		WhatsApp:     req.WhatsApp,
		LogoURL:      req.LogoURL,
		BannerURL:    req.BannerURL,
		Address:      req.Address,
		Description:  req.Description,
	}
}

func (h *DealerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dealerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	dealer, err := h.dealers.Register(r.Context(), actorFromContext(r.Context()), req.toEntity(""))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, dealer)
}

func (h *DealerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dealerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	dealer, err := h.dealers.UpdateProfile(r.Context(), actorFromContext(r.Context()),
		req.toEntity(chi.URLParam(r, "id")))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, dealer)
}

type profileRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// EnsureProfile is called after login to lazily create the
// marketplace-side profile for a new identity.
func (h *DealerHandler) EnsureProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.dealers.EnsureProfile(r.Context(), actorFromContext(r.Context()),
		req.Email, req.DisplayName)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

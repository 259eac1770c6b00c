package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/lifecycle"
	"github.com/autogy/listing-service/internal/listing/usecase"
)

// maxPhotoUploadBytes bounds a single photo upload.
const maxPhotoUploadBytes = 10 << 20

// ListingHandler serves the dealer dashboard: stock management and
// photo uploads.
type ListingHandler struct {
	listings *usecase.ListingUseCase
	photos   *usecase.PhotoUseCase
	logger   *zap.Logger
}

func NewListingHandler(listings *usecase.ListingUseCase, photos *usecase.PhotoUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, photos: photos, logger: logger}
}

type listingRequest struct {
	Title        string   `json:"title"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int64    `json:"price"`
	Mileage      int64    `json:"mileage"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Steering     string   `json:"steering"`
	Region       string   `json:"region"`
	Condition    string   `json:"condition"`
	BodyType     string   `json:"body_type"`
	Color        string   `json:"color"`
	VIN          string   `json:"vin"`
	EngineSize   string   `json:"engine_size"`
	HirePurchase bool     `json:"hire_purchase"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Description  string   `json:"description"`
	Publish      bool     `json:"publish"`
}

func (req *listingRequest) toEntity(id string) *domain.Listing {
	return &domain.Listing{
		ID:           id,
		Title:        req.Title,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Transmission: domain.Transmission(req.Transmission),
		FuelType:     domain.FuelType(req.FuelType),
		Steering:     domain.Steering(req.Steering),
		Region:       req.Region,
		Condition:    domain.Condition(req.Condition),
		BodyType:     req.BodyType,
		Color:        req.Color,
		VIN:          req.VIN,
		EngineSize:   req.EngineSize,
		HirePurchase: req.HirePurchase,
		Images:       req.Images,
		Features:     req.Features,
		Description:  req.Description,
	}
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.listings.Create(r.Context(), actorFromContext(r.Context()), req.toEntity(""), req.Publish)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req listingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.listings.Update(r.Context(), actorFromContext(r.Context()),
		req.toEntity(chi.URLParam(r, "id")), req.Publish)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

type statusRequest struct {
	Action string `json:"action"`
}

func (h *ListingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.listings.ChangeStatus(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "id"), lifecycle.Action(req.Action))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.listings.Delete(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ListingHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.MyListings(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "missing photo file"})
		return
	}
	defer file.Close()

	url, err := h.photos.Upload(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "id"), header.Filename, file, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}

type removePhotoRequest struct {
	URL string `json:"url"`
}

func (h *ListingHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	var req removePhotoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.photos.RemovePhoto(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "id"), req.URL); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/compare"
	"github.com/autogy/listing-service/internal/listing/domain"
	"github.com/autogy/listing-service/internal/listing/search"
)

const featuredLimit = 8

// catalogService is the read-side surface the public handlers expose.
type catalogService interface {
	Search(ctx context.Context, filter search.Filter, order search.SortOrder) ([]*domain.Listing, error)
	Featured(ctx context.Context, limit int) ([]*domain.Listing, error)
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	CompareByIDs(ctx context.Context, ids []string) (*compare.Table, error)
	RecordView(ctx context.Context, clientID, listingID string) error
	RecentlyViewed(ctx context.Context, clientID string) ([]*domain.Listing, error)
	ApprovedDealers(ctx context.Context) ([]*domain.Dealer, error)
	DealerPage(ctx context.Context, dealerID string, filter search.Filter, order search.SortOrder) (*domain.Dealer, []*domain.Listing, error)
	Home(ctx context.Context, limit int) ([]*domain.Listing, []*domain.Dealer, error)
}

// CatalogHandler serves the public browse, compare and dealer
// directory endpoints.
type CatalogHandler struct {
	catalog catalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog catalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, order := parseSearchQuery(r)

	listings, err := h.catalog.Search(r.Context(), filter, order)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalog.Featured(r.Context(), featuredLimit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.catalog.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *CatalogHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.RecordView(r.Context(), clientID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalog.RecentlyViewed(r.Context(), clientID(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (h *CatalogHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if raw := r.URL.Query().Get("ids"); raw != "" {
		ids = strings.Split(raw, ",")
	}

	table, err := h.catalog.CompareByIDs(r.Context(), ids)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, table)
}

func (h *CatalogHandler) Dealers(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.catalog.ApprovedDealers(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, dealers)
}

// DealerPage is the dealer showcase: profile plus visible stock, with
// the same filter and sort parameters as the main search.
func (h *CatalogHandler) DealerPage(w http.ResponseWriter, r *http.Request) {
	filter, order := parseSearchQuery(r)

	dealer, listings, err := h.catalog.DealerPage(r.Context(), chi.URLParam(r, "id"), filter, order)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"dealer":   dealer,
		"listings": listings,
	})
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, dealers, err := h.catalog.Home(r.Context(), featuredLimit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"featured": featured,
		"dealers":  dealers,
	})
}

func parseSearchQuery(r *http.Request) (search.Filter, search.SortOrder) {
	q := r.URL.Query()

	filter := search.Filter{
		Query:        q.Get("q"),
		Region:       q.Get("region"),
		BodyType:     q.Get("body_type"),
		Condition:    domain.Condition(q.Get("condition")),
		Steering:     domain.Steering(q.Get("steering")),
		FuelType:     domain.FuelType(q.Get("fuel_type")),
		Transmission: domain.Transmission(q.Get("transmission")),
	}
	if v, err := strconv.ParseInt(q.Get("min_price"), 10, 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil {
		filter.MaxPrice = v
	}

	var order search.SortOrder
	switch q.Get("sort") {
	case "price_asc":
		order = search.SortPriceAsc
	case "price_desc":
		order = search.SortPriceDesc
	}
	return filter, order
}

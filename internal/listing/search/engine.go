// Package search implements in-memory filtering and sorting over
// listings. Filtering happens after the visibility cut so the same
// engine serves both the public catalog and dealer dashboards.
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// SortOrder controls price ordering of search results.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// Filter is a conjunction of optional criteria. Zero values mean
// "no constraint"; a zero MaxPrice in particular does not cap prices.
type Filter struct {
	Query        string
	Region       string
	BodyType     string
	Condition    domain.Condition
	Steering     domain.Steering
	FuelType     domain.FuelType
	Transmission domain.Transmission
	MinPrice     int64
	MaxPrice     int64
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Merge overlays other onto f, with other's set fields winning.
func (f Filter) Merge(other Filter) Filter {
	out := f
	if other.Query != "" {
		out.Query = other.Query
	}
	if other.Region != "" {
		out.Region = other.Region
	}
	if other.BodyType != "" {
		out.BodyType = other.BodyType
	}
	if other.Condition != "" {
		out.Condition = other.Condition
	}
	if other.Steering != "" {
		out.Steering = other.Steering
	}
	if other.FuelType != "" {
		out.FuelType = other.FuelType
	}
	if other.Transmission != "" {
		out.Transmission = other.Transmission
	}
	if other.MinPrice != 0 {
		out.MinPrice = other.MinPrice
	}
	if other.MaxPrice != 0 {
		out.MaxPrice = other.MaxPrice
	}
	return out
}

// Matches reports whether a single listing satisfies every set
// criterion.
func (f Filter) Matches(l *domain.Listing) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		// The query must be a substring of a single field, never of a
		// concatenation across fields.
		if !strings.Contains(strings.ToLower(l.Make), q) &&
			!strings.Contains(strings.ToLower(l.Model), q) &&
			!strings.Contains(strconv.Itoa(l.Year), q) {
			return false
		}
	}
	if f.Region != "" && l.Region != f.Region {
		return false
	}
	if f.BodyType != "" && l.BodyType != f.BodyType {
		return false
	}
	if f.Condition != "" && l.Condition != f.Condition {
		return false
	}
	if f.Steering != "" && l.Steering != f.Steering {
		return false
	}
	if f.FuelType != "" && l.FuelType != f.FuelType {
		return false
	}
	if f.Transmission != "" && l.Transmission != f.Transmission {
		return false
	}
	if f.MinPrice != 0 && l.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice != 0 && l.Price > f.MaxPrice {
		return false
	}
	return true
}

// Apply filters listings down to those matching f. Inverted price
// bounds simply match nothing. The input slice is not mutated.
func (f Filter) Apply(listings []*domain.Listing) []*domain.Listing {
	if f.IsZero() {
		out := make([]*domain.Listing, len(listings))
		copy(out, listings)
		return out
	}
	out := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// SortByPrice returns a new slice ordered by price; the input is not
// mutated. Equal-price listings keep their relative order, so the
// repository's recency ordering survives as the tiebreak.
func SortByPrice(listings []*domain.Listing, order SortOrder) []*domain.Listing {
	out := make([]*domain.Listing, len(listings))
	copy(out, listings)
	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	}
	return out
}

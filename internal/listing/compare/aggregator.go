package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// SpecRow is one attribute compared across all listings. Values line
// up with the listing order passed to the aggregator; a "-" cell means
// the listing does not carry that attribute.
type SpecRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// FeatureRow marks which listings carry a single feature.
type FeatureRow struct {
	Feature string `json:"feature"`
	Has     []bool `json:"has"`
}

// FeatureGroup is a non-empty category of feature rows.
type FeatureGroup struct {
	Category Category     `json:"category"`
	Rows     []FeatureRow `json:"rows"`
}

// Table is the complete comparison for a set of listings.
type Table struct {
	Listings []*domain.Listing `json:"listings"`
	Specs    []SpecRow         `json:"specs"`
	Features []FeatureGroup    `json:"features"`
}

// Build assembles the comparison table. Listing order is preserved,
// so callers pass listings already sorted by selection order.
func Build(listings []*domain.Listing) *Table {
	return &Table{
		Listings: listings,
		Specs:    SpecRows(listings),
		Features: FeatureMatrix(listings),
	}
}

// SpecRows produces the fixed attribute rows of the comparison table.
func SpecRows(listings []*domain.Listing) []SpecRow {
	row := func(label string, value func(*domain.Listing) string) SpecRow {
		r := SpecRow{Label: label, Values: make([]string, len(listings))}
		for i, l := range listings {
			v := value(l)
			if v == "" {
				v = "-"
			}
			r.Values[i] = v
		}
		return r
	}

	return []SpecRow{
		row("Condition", func(l *domain.Listing) string { return string(l.Condition) }),
		row("Mileage", func(l *domain.Listing) string { return fmt.Sprintf("%d km", l.Mileage) }),
		row("Transmission", func(l *domain.Listing) string { return string(l.Transmission) }),
		row("Engine", func(l *domain.Listing) string { return l.EngineSize }),
		row("Fuel Type", func(l *domain.Listing) string { return string(l.FuelType) }),
		row("Steering", func(l *domain.Listing) string { return string(l.Steering) }),
		row("Body Type", func(l *domain.Listing) string { return l.BodyType }),
		row("Color", func(l *domain.Listing) string { return l.Color }),
		row("Region", func(l *domain.Listing) string { return shortRegion(l.Region) }),
	}
}

// shortRegion trims the parenthesised region number, leaving the name.
func shortRegion(region string) string {
	if i := strings.Index(region, "("); i > 0 {
		return strings.TrimSpace(region[:i])
	}
	return region
}

// FeatureMatrix unions the features of all listings, groups them by
// category and marks presence per listing. Categories with no features
// are omitted entirely, as are features outside the membership lists.
func FeatureMatrix(listings []*domain.Listing) []FeatureGroup {
	byCategory := make(map[Category][]string)
	seen := make(map[string]bool)
	for _, l := range listings {
		for _, f := range l.Features {
			if seen[f] {
				continue
			}
			seen[f] = true
			c, ok := CategoryOf(f)
			if !ok {
				continue
			}
			byCategory[c] = append(byCategory[c], f)
		}
	}

	groups := make([]FeatureGroup, 0, len(Categories))
	for _, c := range Categories {
		features := byCategory[c]
		if len(features) == 0 {
			continue
		}
		sort.Strings(features)
		g := FeatureGroup{Category: c, Rows: make([]FeatureRow, 0, len(features))}
		for _, f := range features {
			r := FeatureRow{Feature: f, Has: make([]bool, len(listings))}
			for i, l := range listings {
				for _, lf := range l.Features {
					if lf == f {
						r.Has[i] = true
						break
					}
				}
			}
			g.Rows = append(g.Rows, r)
		}
		groups = append(groups, g)
	}
	return groups
}

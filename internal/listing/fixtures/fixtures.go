// Package fixtures provides deterministic fallback data served when
// the backing store is unreachable, so public pages degrade to a small
// known catalog instead of an error screen.
package fixtures

import (
	"time"

	"github.com/autogy/listing-service/internal/listing/domain"
)

var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Listings returns a fresh copy of the fallback catalog. Every call
// returns new structs so callers may mutate freely.
func Listings() []*domain.Listing {
	return []*domain.Listing{
		{
			ID:           "fixture-premio-2018",
			DealerID:     "fixture-autogy-motors",
			Title:        "Toyota Premio 2018",
			Make:         "Toyota",
			Model:        "Premio",
			Year:         2018,
			Price:        3200000,
			Mileage:      62000,
			Transmission: domain.TransmissionAutomatic,
			FuelType:     domain.FuelPetrol,
			Steering:     domain.SteeringRight,
			Region:       "Demerara-Mahaica (Region 4)",
			Condition:    domain.ConditionReconditioned,
			BodyType:     "Sedan",
			Color:        "Silver",
			EngineSize:   "1.8L",
			Images:       []string{"https://picsum.photos/seed/premio/800/600"},
			Features:     []string{"Air Conditioning", "Backup Camera", "Power Windows", "Alloy Wheels"},
			Description:  "Well kept Premio, fresh import, ready for the road.",
			Status:       domain.StatusActive,
			CreatedAt:    baseTime.Add(48 * time.Hour),
			UpdatedAt:    baseTime.Add(48 * time.Hour),
		},
		{
			ID:           "fixture-vezel-2020",
			DealerID:     "fixture-autogy-motors",
			Title:        "Honda Vezel 2020",
			Make:         "Honda",
			Model:        "Vezel",
			Year:         2020,
			Price:        5500000,
			Mileage:      34000,
			Transmission: domain.TransmissionCVT,
			FuelType:     domain.FuelHybrid,
			Steering:     domain.SteeringRight,
			Region:       "Demerara-Mahaica (Region 4)",
			Condition:    domain.ConditionUsed,
			BodyType:     "SUV",
			Color:        "Pearl White",
			EngineSize:   "1.5L",
			HirePurchase: true,
			Images:       []string{"https://picsum.photos/seed/vezel/800/600"},
			Features:     []string{"Climate Control", "Apple CarPlay", "Keyless Entry", "LED Headlights"},
			Description:  "Hybrid crossover, excellent fuel economy, hire purchase available.",
			Status:       domain.StatusActive,
			CreatedAt:    baseTime.Add(24 * time.Hour),
			UpdatedAt:    baseTime.Add(24 * time.Hour),
		},
		{
			ID:           "fixture-hilux-2022",
			DealerID:     "fixture-berbice-wheels",
			Title:        "Toyota Hilux 2022",
			Make:         "Toyota",
			Model:        "Hilux",
			Year:         2022,
			Price:        12500000,
			Mileage:      18000,
			Transmission: domain.TransmissionManual,
			FuelType:     domain.FuelDiesel,
			Steering:     domain.SteeringRight,
			Region:       "East Berbice-Corentyne (Region 6)",
			Condition:    domain.ConditionNew,
			BodyType:     "Pickup",
			Color:        "White",
			EngineSize:   "2.8L",
			Images:       []string{"https://picsum.photos/seed/hilux/800/600"},
			Features:     []string{"Traction Control", "Tow Package", "Running Boards", "Touchscreen Display"},
			Description:  "Workhorse pickup, diesel, still under warranty.",
			Status:       domain.StatusActive,
			CreatedAt:    baseTime,
			UpdatedAt:    baseTime,
		},
	}
}

// Dealers returns a fresh copy of the fallback dealer directory.
func Dealers() []*domain.Dealer {
	return []*domain.Dealer{
		{
			ID:           "fixture-autogy-motors",
			BusinessName: "AutoGy Motors",
			Email:        "sales@autogymotors.gy",
			Region:       "Demerara-Mahaica (Region 4)",
			ContactPhone: "+592-600-1234",
			WhatsApp:     "+592-600-1234",
			Address:      "123 Sheriff Street, Georgetown",
			Status:       domain.DealerApproved,
			Description:  "Georgetown's trusted import dealer since 2010.",
			CreatedAt:    baseTime,
		},
		{
			ID:           "fixture-berbice-wheels",
			BusinessName: "Berbice Wheels",
			Email:        "info@berbicewheels.gy",
			Region:       "East Berbice-Corentyne (Region 6)",
			ContactPhone: "+592-333-5678",
			WhatsApp:     "+592-333-5678",
			Address:      "45 Main Street, New Amsterdam",
			Status:       domain.DealerApproved,
			Description:  "New and reconditioned vehicles for the Berbice region.",
			CreatedAt:    baseTime,
		},
		{
			ID:           "fixture-essequibo-imports",
			BusinessName: "Essequibo Imports",
			Email:        "contact@essequiboimports.gy",
			Region:       "Pomeroon-Supenaam (Region 2)",
			ContactPhone: "+592-777-9012",
			WhatsApp:     "+592-777-9012",
			Address:      "Lot 8 Anna Regina, Essequibo Coast",
			Status:       domain.DealerApproved,
			Description:  "Direct imports from Japan, serving the Essequibo coast.",
			CreatedAt:    baseTime,
		},
	}
}

// ListingByID looks a fallback listing up by ID.
func ListingByID(id string) (*domain.Listing, bool) {
	for _, l := range Listings() {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

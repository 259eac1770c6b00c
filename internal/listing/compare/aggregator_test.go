package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autogy/listing-service/internal/listing/domain"
)

func TestCategoryOf(t *testing.T) {
	for feature, want := range map[string]Category{
		"Backup Camera": CategorySafety,
		"Sunroof":       CategoryComfort,
		"Apple CarPlay": CategoryInterior,
		"Tow Package":   CategoryExterior,
	} {
		got, ok := CategoryOf(feature)
		require.True(t, ok, feature)
		assert.Equal(t, want, got)
	}

	_, ok := CategoryOf("Underglow Kit")
	assert.False(t, ok)
}

func TestFeatureMatrix_DropsUnknownFeatures(t *testing.T) {
	a := &domain.Listing{ID: "a", Features: []string{"Airbags", "Underglow Kit"}}
	b := &domain.Listing{ID: "b", Features: []string{"Airbags"}}

	groups := FeatureMatrix([]*domain.Listing{a, b})
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 1)
	assert.Equal(t, "Airbags", groups[0].Rows[0].Feature)
}

func TestSpecRows_MissingValuesRenderDash(t *testing.T) {
	listings := []*domain.Listing{
		{
			Condition: domain.ConditionUsed, Mileage: 45000,
			Transmission: domain.TransmissionCVT, EngineSize: "1.5L",
			FuelType: domain.FuelHybrid, Steering: domain.SteeringRight,
			BodyType: "SUV", Color: "Pearl White",
			Region: "Demerara-Mahaica (Region 4)",
		},
		{
			Condition: domain.ConditionNew, Mileage: 0,
			Transmission: domain.TransmissionManual,
			FuelType:     domain.FuelDiesel, Steering: domain.SteeringRight,
			BodyType: "Pickup",
			Region:   "East Berbice-Corentyne (Region 6)",
		},
	}

	rows := SpecRows(listings)
	byLabel := make(map[string][]string)
	for _, r := range rows {
		byLabel[r.Label] = r.Values
	}

	assert.Equal(t, []string{"45000 km", "0 km"}, byLabel["Mileage"])
	assert.Equal(t, []string{"1.5L", "-"}, byLabel["Engine"])
	assert.Equal(t, []string{"Pearl White", "-"}, byLabel["Color"])
	assert.Equal(t, []string{"Demerara-Mahaica", "East Berbice-Corentyne"}, byLabel["Region"])
}

func TestFeatureMatrix_UnionAndPresence(t *testing.T) {
	a := &domain.Listing{ID: "a", Features: []string{"Airbags", "Sunroof"}}
	b := &domain.Listing{ID: "b", Features: []string{"Airbags", "Alloy Wheels"}}

	groups := FeatureMatrix([]*domain.Listing{a, b})
	require.Len(t, groups, 3, "interior group should be absent")

	assert.Equal(t, CategorySafety, groups[0].Category)
	require.Len(t, groups[0].Rows, 1)
	assert.Equal(t, "Airbags", groups[0].Rows[0].Feature)
	assert.Equal(t, []bool{true, true}, groups[0].Rows[0].Has)

	assert.Equal(t, CategoryComfort, groups[1].Category)
	assert.Equal(t, []bool{true, false}, groups[1].Rows[0].Has)

	assert.Equal(t, CategoryExterior, groups[2].Category)
	assert.Equal(t, []bool{false, true}, groups[2].Rows[0].Has)
}

func TestFeatureMatrix_EmptyWhenNoFeatures(t *testing.T) {
	groups := FeatureMatrix([]*domain.Listing{{ID: "a"}, {ID: "b"}})
	assert.Empty(t, groups)
}

func TestBuild_PreservesListingOrder(t *testing.T) {
	a := &domain.Listing{ID: "a"}
	b := &domain.Listing{ID: "b"}

	table := Build([]*domain.Listing{b, a})
	require.Len(t, table.Listings, 2)
	assert.Equal(t, "b", table.Listings[0].ID)
	assert.Equal(t, "a", table.Listings[1].ID)
	assert.Len(t, table.Specs, 9)
}

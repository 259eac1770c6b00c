// Package compare builds side-by-side comparison tables for up to
// four listings.
package compare

// Category groups vehicle features for the comparison matrix.
type Category string

const (
	CategorySafety   Category = "Safety"
	CategoryComfort  Category = "Comfort"
	CategoryInterior Category = "Interior"
	CategoryExterior Category = "Exterior"
)

// Categories lists the display order of feature groups.
var Categories = []Category{CategorySafety, CategoryComfort, CategoryInterior, CategoryExterior}

// featureCategories maps every known feature name to its group.
// Features outside these lists do not appear in the matrix.
var featureCategories = map[string]Category{
	"Anti-Lock Braking System": CategorySafety,
	"Airbags":                  CategorySafety,
	"Traction Control":         CategorySafety,
	"Stability Control":        CategorySafety,
	"Parking Sensors":          CategorySafety,
	"Backup Camera":            CategorySafety,
	"Blind Spot Monitor":       CategorySafety,
	"Lane Departure Warning":   CategorySafety,
	"Adaptive Cruise Control":  CategorySafety,

	"Air Conditioning":  CategoryComfort,
	"Climate Control":   CategoryComfort,
	"Heated Seats":      CategoryComfort,
	"Ventilated Seats":  CategoryComfort,
	"Power Seats":       CategoryComfort,
	"Leather Seats":     CategoryComfort,
	"Sunroof":           CategoryComfort,
	"Keyless Entry":     CategoryComfort,
	"Push Button Start": CategoryComfort,
	"Cruise Control":    CategoryComfort,

	"Premium Sound System": CategoryInterior,
	"Navigation System":    CategoryInterior,
	"Touchscreen Display":  CategoryInterior,
	"Apple CarPlay":        CategoryInterior,
	"Android Auto":         CategoryInterior,
	"Wireless Charging":    CategoryInterior,
	"USB Ports":            CategoryInterior,
	"Ambient Lighting":     CategoryInterior,
	"Power Windows":        CategoryInterior,
	"Tinted Windows":       CategoryInterior,

	"Alloy Wheels":        CategoryExterior,
	"LED Headlights":      CategoryExterior,
	"Fog Lights":          CategoryExterior,
	"Roof Rack":           CategoryExterior,
	"Spoiler":             CategoryExterior,
	"Running Boards":      CategoryExterior,
	"Power Mirrors":       CategoryExterior,
	"Heated Mirrors":      CategoryExterior,
	"Rain Sensing Wipers": CategoryExterior,
	"Tow Package":         CategoryExterior,
}

// CategoryOf returns the group a feature belongs to, or false for a
// feature outside the fixed membership lists.
func CategoryOf(feature string) (Category, bool) {
	c, ok := featureCategories[feature]
	return c, ok
}

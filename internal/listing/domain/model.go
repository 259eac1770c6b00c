package domain

import "time"

type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusSold     ListingStatus = "sold"
	StatusReserved ListingStatus = "reserved"
	StatusArchived ListingStatus = "archived"
	StatusDraft    ListingStatus = "draft"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
	TransmissionCVT       Transmission = "CVT"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelElectric FuelType = "Electric"
)

type Steering string

const (
	SteeringLeft  Steering = "LHD"
	SteeringRight Steering = "RHD"
)

type Condition string

const (
	ConditionNew           Condition = "New"
	ConditionUsed          Condition = "Used"
	ConditionReconditioned Condition = "Reconditioned"
)

// Listing is a vehicle for sale, owned by exactly one dealer.
// SoldAt is the zero time unless the listing was marked sold; it is
// cleared again when a sold listing is restored to active.
type Listing struct {
	ID           string
	DealerID     string
	Title        string
	Make         string
	Model        string
	Year         int
	Price        int64 // GYD, whole dollars
	Mileage      int64
	Transmission Transmission
	FuelType     FuelType
	Steering     Steering
	Region       string
	Condition    Condition
	BodyType     string
	Color        string
	VIN          string
	EngineSize   string
	HirePurchase bool
	Images       []string // first entry is the cover image
	Features     []string
	Description  string
	Status       ListingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SoldAt       time.Time
}

type DealerStatus string

const (
	DealerPending   DealerStatus = "pending"
	DealerApproved  DealerStatus = "approved"
	DealerRejected  DealerStatus = "rejected"
	DealerSuspended DealerStatus = "suspended"
)

type Dealer struct {
	ID           string
	BusinessName string
	Email        string
	Region       string
	ContactPhone string
	WhatsApp     string
	LogoURL      string
	BannerURL    string
	Address      string
	Status       DealerStatus
	Description  string
	CreatedAt    time.Time
}

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleDealer UserRole = "dealer"
	RoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// UserProfile carries the marketplace-side profile for an identity
// managed by the external auth provider. Favorites is the persisted
// set of listing IDs the user has saved.
type UserProfile struct {
	ID          string
	Email       string
	DisplayName string
	Role        UserRole
	Status      UserStatus
	Favorites   []string
	CreatedAt   time.Time
}

// GuyanaRegions is the closed set of administrative regions a listing
// or dealership can be located in.
var GuyanaRegions = []string{
	"Barima-Waini (Region 1)",
	"Pomeroon-Supenaam (Region 2)",
	"Essequibo Islands-West Demerara (Region 3)",
	"Demerara-Mahaica (Region 4)",
	"Mahaica-Berbice (Region 5)",
	"East Berbice-Corentyne (Region 6)",
	"Cuyuni-Mazaruni (Region 7)",
	"Potaro-Siparuni (Region 8)",
	"Upper Takutu-Upper Essequibo (Region 9)",
	"Upper Demerara-Berbice (Region 10)",
}

// BodyTypes is the suggested set for the free-form body type field.
var BodyTypes = []string{
	"Sedan", "SUV", "Pickup", "Hatchback", "Wagon", "Van", "Truck", "Coupe", "Bus",
}

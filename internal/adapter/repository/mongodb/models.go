package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// listingDocument is the persisted shape of a listing. SoldAt is a
// pointer so an unsold listing stores no field at all.
type listingDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	DealerID     string             `bson:"dealer_id"`
	Title        string             `bson:"title"`
	Make         string             `bson:"make"`
	Model        string             `bson:"model"`
	Year         int                `bson:"year"`
	Price        int64              `bson:"price"`
	Mileage      int64              `bson:"mileage"`
	Transmission string             `bson:"transmission"`
	FuelType     string             `bson:"fuel_type"`
	Steering     string             `bson:"steering"`
	Region       string             `bson:"region"`
	Condition    string             `bson:"condition"`
	BodyType     string             `bson:"body_type"`
	Color        string             `bson:"color,omitempty"`
	VIN          string             `bson:"vin,omitempty"`
	EngineSize   string             `bson:"engine_size,omitempty"`
	HirePurchase bool               `bson:"hire_purchase"`
	Images       []string           `bson:"images"`
	Features     []string           `bson:"features"`
	Description  string             `bson:"description"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
	SoldAt       *time.Time         `bson:"sold_at,omitempty"`
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	doc := &listingDocument{
		DealerID:     l.DealerID,
		Title:        l.Title,
		Make:         l.Make,
		Model:        l.Model,
		Year:         l.Year,
		Price:        l.Price,
		Mileage:      l.Mileage,
		Transmission: string(l.Transmission),
		FuelType:     string(l.FuelType),
		Steering:     string(l.Steering),
		Region:       l.Region,
		Condition:    string(l.Condition),
		BodyType:     l.BodyType,
		Color:        l.Color,
		VIN:          l.VIN,
		EngineSize:   l.EngineSize,
		HirePurchase: l.HirePurchase,
		Images:       l.Images,
		Features:     l.Features,
		Description:  l.Description,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.ID != "" {
		oid, err := primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, domain.ErrListingNotFound
		}
		doc.ID = oid
	}
	if !l.SoldAt.IsZero() {
		soldAt := l.SoldAt
		doc.SoldAt = &soldAt
	}
	return doc, nil
}

func (d *listingDocument) toEntity() *domain.Listing {
	l := &domain.Listing{
		ID:           d.ID.Hex(),
		DealerID:     d.DealerID,
		Title:        d.Title,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		Price:        d.Price,
		Mileage:      d.Mileage,
		Transmission: domain.Transmission(d.Transmission),
		FuelType:     domain.FuelType(d.FuelType),
		Steering:     domain.Steering(d.Steering),
		Region:       d.Region,
		Condition:    domain.Condition(d.Condition),
		BodyType:     d.BodyType,
		Color:        d.Color,
		VIN:          d.VIN,
		EngineSize:   d.EngineSize,
		HirePurchase: d.HirePurchase,
		Images:       d.Images,
		Features:     d.Features,
		Description:  d.Description,
		Status:       domain.ListingStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.SoldAt != nil {
		l.SoldAt = *d.SoldAt
	}
	return l
}

// dealerDocument keys dealers by the owning user's external ID, so a
// dealer's ID and their auth identity are the same string.
type dealerDocument struct {
	ID           string    `bson:"_id"`
	BusinessName string    `bson:"business_name"`
	Email        string    `bson:"email"`
	Region       string    `bson:"region"`
	ContactPhone string    `bson:"contact_phone"`
	WhatsApp     string    `bson:"whatsapp,omitempty"`
	LogoURL      string    `bson:"logo_url,omitempty"`
	BannerURL    string    `bson:"banner_url,omitempty"`
	Address      string    `bson:"address"`
	Status       string    `bson:"status"`
	Description  string    `bson:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toDealerDocument(d *domain.Dealer) *dealerDocument {
	return &dealerDocument{
		ID:           d.ID,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Region:       d.Region,
		ContactPhone: d.ContactPhone,
		WhatsApp:     d.WhatsApp,
		LogoURL:      d.LogoURL,
		BannerURL:    d.BannerURL,
		Address:      d.Address,
		Status:       string(d.Status),
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

func (d *dealerDocument) toEntity() *domain.Dealer {
	return &domain.Dealer{
		ID:           d.ID,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Region:       d.Region,
		ContactPhone: d.ContactPhone,
		WhatsApp:     d.WhatsApp,
		LogoURL:      d.LogoURL,
		BannerURL:    d.BannerURL,
		Address:      d.Address,
		Status:       domain.DealerStatus(d.Status),
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
	}
}

type profileDocument struct {
	ID          string    `bson:"_id"`
	Email       string    `bson:"email"`
	DisplayName string    `bson:"display_name"`
	Role        string    `bson:"role"`
	Status      string    `bson:"status"`
	Favorites   []string  `bson:"favorites"`
	CreatedAt   time.Time `bson:"created_at"`
}

func toProfileDocument(p *domain.UserProfile) *profileDocument {
	favorites := p.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return &profileDocument{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        string(p.Role),
		Status:      string(p.Status),
		Favorites:   favorites,
		CreatedAt:   p.CreatedAt,
	}
}

func (d *profileDocument) toEntity() *domain.UserProfile {
	return &domain.UserProfile{
		ID:          d.ID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Role:        domain.UserRole(d.Role),
		Status:      domain.UserStatus(d.Status),
		Favorites:   d.Favorites,
		CreatedAt:   d.CreatedAt,
	}
}

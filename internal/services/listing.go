package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

// ListingService manages the catalog on behalf of the signed-in user and
// exposes the price-ordered views of it.
type ListingService interface {
	Publish(ctx context.Context, req PublishRequest) (PublishResult, error)
	SetAvailability(ctx context.Context, id string, available bool) (*models.Property, error)

	Cheapest(ctx context.Context, n int) []*models.Property
	MostExpensive(ctx context.Context, n int) []*models.Property
	// PriceRange lists properties inside [min, max]. A blank min means 0, a
	// blank max means the highest price in the catalog.
	PriceRange(ctx context.Context, minText, maxText string) ([]*models.Property, error)
	SortedByPrice(ctx context.Context, ascending bool) []*models.Property
	PriceBounds(ctx context.Context) (min, max float64)
}

// PublishRequest carries the raw listing form. Numbers are text.
type PublishRequest struct {
	Title        string
	Description  string
	City         string
	Address      string
	PropertyType string
	Price        string
	Capacity     string
	Bedrooms     string
	Bathrooms    string
	Amenities    []string
}

type PublishResult struct {
	Property *models.Property
	Message  string
}

type listingService struct {
	properties properties.Repository
	session    *session.Holder
}

func NewListingService(properties properties.Repository, sess *session.Holder) ListingService {
	return &listingService{properties: properties, session: sess}
}

// actor returns the signed-in user or common.ErrUnauthorized.
func (s *listingService) actor(ctx context.Context) (*models.User, error) {
	u, ok := s.session.Current(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: log in first", common.ErrUnauthorized)
	}
	return u, nil
}

func (s *listingService) Publish(ctx context.Context, req PublishRequest) (PublishResult, error) {
	owner, err := s.actor(ctx)
	if err != nil {
		return PublishResult{}, err
	}
	if !owner.Role.CanPublish() {
		return PublishResult{}, fmt.Errorf("%w: only hosts can publish properties", common.ErrForbidden)
	}

	p, err := buildProperty(req)
	if err != nil {
		return PublishResult{}, err
	}
	p.OwnerID = owner.ID

	stored, err := s.properties.Register(ctx, p)
	if err != nil {
		return PublishResult{}, err
	}
	return PublishResult{Property: stored, Message: "Property published successfully"}, nil
}

func buildProperty(req PublishRequest) (*models.Property, error) {
	p := models.NewProperty()
	p.Title = strings.TrimSpace(req.Title)
	p.Description = strings.TrimSpace(req.Description)
	p.City = strings.TrimSpace(req.City)
	p.Address = strings.TrimSpace(req.Address)
	p.PropertyType = strings.TrimSpace(req.PropertyType)

	required := []struct{ field, value, message string }{
		{"title", p.Title, "title is required"},
		{"city", p.City, "city is required"},
		{"address", p.Address, "address is required"},
		{"propertyType", p.PropertyType, "property type is required"},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, common.NewValidationError(r.field, r.message)
		}
	}

	price, supplied, err := parseAmount(req.Price, "price", "price per night")
	if err != nil {
		return nil, err
	}
	if !supplied {
		return nil, common.NewValidationError("price", "price per night is required")
	}
	p.PricePerNight = price

	if p.Capacity, err = parseCount(req.Capacity, "capacity", "capacity", 1); err != nil {
		return nil, err
	}
	if p.Bedrooms, err = parseCount(req.Bedrooms, "bedrooms", "bedrooms", 0); err != nil {
		return nil, err
	}
	if p.Bathrooms, err = parseCount(req.Bathrooms, "bathrooms", "bathrooms", 0); err != nil {
		return nil, err
	}

	for _, a := range req.Amenities {
		p.AddAmenity(a)
	}
	return p, nil
}

// SetAvailability is allowed for the owner of the property and for admins.
func (s *listingService) SetAvailability(ctx context.Context, id string, available bool) (*models.Property, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := s.properties.FindByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: property %q", common.ErrNotFound, id)
	}
	if p.OwnerID != actor.ID && !actor.Role.CanManageAll() {
		return nil, fmt.Errorf("%w: only the owner can change this property", common.ErrForbidden)
	}
	return s.properties.SetAvailable(ctx, id, available)
}

func (s *listingService) Cheapest(ctx context.Context, n int) []*models.Property {
	return s.properties.Cheapest(ctx, n)
}

func (s *listingService) MostExpensive(ctx context.Context, n int) []*models.Property {
	return s.properties.MostExpensive(ctx, n)
}

func (s *listingService) PriceRange(ctx context.Context, minText, maxText string) ([]*models.Property, error) {
	min, max, err := parseBounds(minText, maxText)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(maxText) == "" {
		max = s.properties.MaxPrice(ctx)
	}
	return s.properties.PriceRange(ctx, min, max), nil
}

func (s *listingService) SortedByPrice(ctx context.Context, ascending bool) []*models.Property {
	return s.properties.SortedByPrice(ctx, ascending)
}

func (s *listingService) PriceBounds(ctx context.Context) (float64, float64) {
	return s.properties.MinPrice(ctx), s.properties.MaxPrice(ctx)
}

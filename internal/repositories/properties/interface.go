package properties

import (
	"context"

	"github.com/dmitrijs2005/staykonnect/internal/models"
)

// Repository describes the operations on the property catalog.
type Repository interface {
	// Register stores p and indexes it by price. A negative or non-finite
	// price fails with a *common.ValidationError; a duplicate id with
	// common.ErrDuplicateKey.
	Register(ctx context.Context, p *models.Property) (*models.Property, error)

	FindByID(ctx context.Context, id string) (*models.Property, bool)
	ListAll(ctx context.Context) []*models.Property
	ListAvailable(ctx context.Context) []*models.Property
	ListByOwner(ctx context.Context, ownerID string) []*models.Property

	// PriceRange returns properties with min <= price <= max.
	PriceRange(ctx context.Context, min, max float64) []*models.Property
	Cheapest(ctx context.Context, n int) []*models.Property
	MostExpensive(ctx context.Context, n int) []*models.Property
	SortedByPrice(ctx context.Context, ascending bool) []*models.Property
	MinPrice(ctx context.Context) float64
	MaxPrice(ctx context.Context) float64

	// SetAvailable flips the availability flag; unknown ids fail with
	// common.ErrNotFound.
	SetAvailable(ctx context.Context, id string, available bool) (*models.Property, error)

	Len() int
}

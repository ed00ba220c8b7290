package properties

import (
	"context"

	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/memstore"
)

// MemoryRepository is the in-memory Repository.
type MemoryRepository struct {
	records *memstore.Collection[*models.Property]
	prices  *priceIndex
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	idx := newPriceIndex()
	return &MemoryRepository{
		records: memstore.New[*models.Property](idx),
		prices:  idx,
	}
}

func (r *MemoryRepository) Register(ctx context.Context, p *models.Property) (*models.Property, error) {
	return r.records.Register(p)
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Property, bool) {
	return r.records.Get(id)
}

func (r *MemoryRepository) ListAll(ctx context.Context) []*models.Property {
	return r.records.All()
}

func (r *MemoryRepository) ListAvailable(ctx context.Context) []*models.Property {
	return r.records.Filter(func(p *models.Property) bool { return p.Available })
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) []*models.Property {
	return r.records.Filter(func(p *models.Property) bool { return p.OwnerID == ownerID })
}

func (r *MemoryRepository) PriceRange(ctx context.Context, min, max float64) []*models.Property {
	var out []*models.Property
	r.records.View(func() { out = r.prices.between(min, max) })
	return out
}

func (r *MemoryRepository) Cheapest(ctx context.Context, n int) []*models.Property {
	if n <= 0 {
		return []*models.Property{}
	}
	var out []*models.Property
	r.records.View(func() { out = r.prices.ascending(n) })
	return out
}

func (r *MemoryRepository) MostExpensive(ctx context.Context, n int) []*models.Property {
	if n <= 0 {
		return []*models.Property{}
	}
	var out []*models.Property
	r.records.View(func() { out = r.prices.descending(n) })
	return out
}

func (r *MemoryRepository) SortedByPrice(ctx context.Context, ascending bool) []*models.Property {
	var out []*models.Property
	r.records.View(func() {
		if ascending {
			out = r.prices.ascending(-1)
		} else {
			out = r.prices.descending(-1)
		}
	})
	return out
}

func (r *MemoryRepository) MinPrice(ctx context.Context) float64 {
	var v float64
	r.records.View(func() { v = r.prices.min() })
	return v
}

func (r *MemoryRepository) MaxPrice(ctx context.Context) float64 {
	var v float64
	r.records.View(func() { v = r.prices.max() })
	return v
}

func (r *MemoryRepository) SetAvailable(ctx context.Context, id string, available bool) (*models.Property, error) {
	return r.records.Update(id, func(p *models.Property) error {
		p.Available = available
		return nil
	})
}

func (r *MemoryRepository) Len() int {
	return r.records.Len()
}

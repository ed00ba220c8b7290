package properties

import (
	"math"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/google/btree"
)

const btreeDegree = 16

// priceBucket groups the properties sharing one exact price.
type priceBucket struct {
	price float64
	items []*models.Property
}

func bucketLess(a, b *priceBucket) bool {
	return a.price < b.price
}

type priceIndex struct {
	tree *btree.BTreeG[*priceBucket]
}

func newPriceIndex() *priceIndex {
	return &priceIndex{tree: btree.NewG(btreeDegree, bucketLess)}
}

// validPrice reports whether price can be stored in the index.
func validPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

func (i *priceIndex) Check(p *models.Property) error {
	if !validPrice(p.PricePerNight) {
		return common.NewValidationError("pricePerNight", "price per night must be a non-negative number")
	}
	return nil
}

func (i *priceIndex) Insert(p *models.Property) {
	b, ok := i.tree.Get(&priceBucket{price: p.PricePerNight})
	if !ok {
		b = &priceBucket{price: p.PricePerNight}
		i.tree.ReplaceOrInsert(b)
	}
	b.items = append(b.items, p)
}

// collector clones bucket items into out until limit is reached. A negative
// limit means no limit.
type collector struct {
	out   []*models.Property
	limit int
}

func newCollector(limit int) *collector {
	c := &collector{limit: limit}
	if limit >= 0 {
		c.out = make([]*models.Property, 0, limit)
	}
	return c
}

func (c *collector) full() bool {
	return c.limit >= 0 && len(c.out) >= c.limit
}

// take appends the bucket and reports whether iteration should go on.
func (c *collector) take(b *priceBucket) bool {
	for _, p := range b.items {
		if c.full() {
			return false
		}
		c.out = append(c.out, p.Clone())
	}
	return !c.full()
}

func (c *collector) result() []*models.Property {
	if c.out == nil {
		return []*models.Property{}
	}
	return c.out
}

func (i *priceIndex) ascending(limit int) []*models.Property {
	c := newCollector(limit)
	if limit != 0 {
		i.tree.Ascend(c.take)
	}
	return c.result()
}

func (i *priceIndex) descending(limit int) []*models.Property {
	c := newCollector(limit)
	if limit != 0 {
		i.tree.Descend(c.take)
	}
	return c.result()
}

func (i *priceIndex) between(min, max float64) []*models.Property {
	c := newCollector(-1)
	if min > max || math.IsNaN(min) || math.IsNaN(max) {
		return c.result()
	}
	i.tree.AscendGreaterOrEqual(&priceBucket{price: min}, func(b *priceBucket) bool {
		if b.price > max {
			return false
		}
		return c.take(b)
	})
	return c.result()
}

func (i *priceIndex) min() float64 {
	if b, ok := i.tree.Min(); ok {
		return b.price
	}
	return 0
}

func (i *priceIndex) max() float64 {
	if b, ok := i.tree.Max(); ok {
		return b.price
	}
	return 0
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/textx"
)

// SearchService answers catalog queries.
type SearchService interface {
	// Search validates the price bounds, then narrows the available
	// properties by city, price and amenities. An empty result is not an
	// error.
	Search(ctx context.Context, req SearchRequest) (SearchResult, error)
	ListAvailable(ctx context.Context) SearchResult
	ListCities(ctx context.Context) []string
	ListAmenities(ctx context.Context) []string
	ListByOwner(ctx context.Context, ownerID string) SearchResult
	// FindProperty resolves a full id or a unique id prefix of at least
	// MinIDPrefix characters.
	FindProperty(ctx context.Context, ref string) (*models.Property, error)
}

const MinIDPrefix = 4

// SearchRequest holds the raw filter values. Prices are text; the service
// owns their parsing.
type SearchRequest struct {
	City      string
	PriceMin  string
	PriceMax  string
	Amenities []string
}

type SearchResult struct {
	Properties []*models.Property
	Message    string
}

const noMatchesMessage = "No properties matched the selected criteria. Try adjusting the filters."

// anyCity holds the normalized city values that disable the city filter.
var anyCity = map[string]struct{}{
	"":           {},
	"all":        {},
	"select":     {},
	"todas":      {},
	"seleccione": {},
}

type searchService struct {
	properties properties.Repository
}

func NewSearchService(properties properties.Repository) SearchService {
	return &searchService{properties: properties}
}

func (s *searchService) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	min, max, err := parseBounds(req.PriceMin, req.PriceMax)
	if err != nil {
		return SearchResult{}, err
	}

	result := s.properties.ListAvailable(ctx)

	cityKey := textx.Key(req.City)
	if _, ok := anyCity[cityKey]; !ok {
		result = filter(result, func(p *models.Property) bool {
			return textx.EqualFold(p.City, req.City)
		})
	}
	// A zero bound disables its filter, so a free property is only reachable
	// without price filters.
	if min > 0 {
		result = filter(result, func(p *models.Property) bool {
			return p.PricePerNight >= min
		})
	}
	if max > 0 && max >= min {
		result = filter(result, func(p *models.Property) bool {
			return p.PricePerNight <= max
		})
	}
	if len(req.Amenities) > 0 {
		result = filter(result, func(p *models.Property) bool {
			return p.HasAll(req.Amenities)
		})
	}

	if len(result) == 0 {
		return SearchResult{Properties: result, Message: noMatchesMessage}, nil
	}
	return SearchResult{
		Properties: result,
		Message:    fmt.Sprintf("Found %d property(ies)", len(result)),
	}, nil
}

func (s *searchService) ListAvailable(ctx context.Context) SearchResult {
	result := s.properties.ListAvailable(ctx)
	return SearchResult{
		Properties: result,
		Message:    fmt.Sprintf("Showing all available properties (%d total)", len(result)),
	}
}

func (s *searchService) ListCities(ctx context.Context) []string {
	return facet(s.properties.ListAll(ctx), func(p *models.Property) []string {
		return []string{p.City}
	})
}

func (s *searchService) ListAmenities(ctx context.Context) []string {
	return facet(s.properties.ListAll(ctx), func(p *models.Property) []string {
		return p.Amenities
	})
}

func (s *searchService) ListByOwner(ctx context.Context, ownerID string) SearchResult {
	result := s.properties.ListByOwner(ctx, ownerID)
	if len(result) == 0 {
		return SearchResult{Properties: result, Message: "You have no registered properties yet"}
	}
	return SearchResult{
		Properties: result,
		Message:    fmt.Sprintf("You have %d registered property(ies)", len(result)),
	}
}

func (s *searchService) FindProperty(ctx context.Context, ref string) (*models.Property, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, common.NewValidationError("id", "property id is required")
	}
	if p, ok := s.properties.FindByID(ctx, ref); ok {
		return p, nil
	}
	if len(ref) < MinIDPrefix {
		return nil, fmt.Errorf("%w: property %q", common.ErrNotFound, ref)
	}

	var found *models.Property
	for _, p := range s.properties.ListAll(ctx) {
		if !strings.HasPrefix(p.ID, ref) {
			continue
		}
		if found != nil {
			return nil, common.NewValidationError("id", "id prefix matches several properties; type more characters")
		}
		found = p
	}
	if found == nil {
		return nil, fmt.Errorf("%w: property %q", common.ErrNotFound, ref)
	}
	return found, nil
}

func filter(in []*models.Property, keep func(*models.Property) bool) []*models.Property {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// facet collects distinct values case-insensitively, first spelling first,
// and sorts them with a case-insensitive collator.
func facet(ps []*models.Property, values func(*models.Property) []string) []string {
	var all []string
	for _, p := range ps {
		all = append(all, values(p)...)
	}
	out := textx.DistinctFold(all)
	textx.SortFold(out)
	return out
}

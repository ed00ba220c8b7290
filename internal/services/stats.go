package services

import (
	"context"

	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
)

// StatsService summarizes the catalog and the user base.
type StatsService interface {
	Catalog(ctx context.Context) CatalogStats
	Users(ctx context.Context) UserStats
}

type CatalogStats struct {
	Total        int
	Available    int
	Cities       []string
	AveragePrice float64
	MinPrice     float64
	MaxPrice     float64
}

type UserStats struct {
	Total  int
	ByRole map[models.Role]int
}

type statsService struct {
	properties properties.Repository
	users      users.Repository
	search     SearchService
}

func NewStatsService(properties properties.Repository, users users.Repository) StatsService {
	return &statsService{
		properties: properties,
		users:      users,
		search:     NewSearchService(properties),
	}
}

func (s *statsService) Catalog(ctx context.Context) CatalogStats {
	all := s.properties.ListAll(ctx)
	st := CatalogStats{
		Total:    len(all),
		Cities:   s.search.ListCities(ctx),
		MinPrice: s.properties.MinPrice(ctx),
		MaxPrice: s.properties.MaxPrice(ctx),
	}
	var sum float64
	for _, p := range all {
		sum += p.PricePerNight
		if p.Available {
			st.Available++
		}
	}
	if len(all) > 0 {
		st.AveragePrice = sum / float64(len(all))
	}
	return st
}

func (s *statsService) Users(ctx context.Context) UserStats {
	st := UserStats{Total: s.users.Len(), ByRole: make(map[models.Role]int, len(models.Roles))}
	for _, r := range models.Roles {
		st.ByRole[r] = s.users.CountByRole(ctx, r)
	}
	return st
}

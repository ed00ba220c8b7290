package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
	"github.com/dmitrijs2005/staykonnect/internal/session"
	"github.com/stretchr/testify/require"
)

// env bundles fresh stores and services for one test.
type env struct {
	users      *users.MemoryRepository
	properties *properties.MemoryRepository
	session    *session.Holder
	hasher     cryptox.Hasher

	auth    AuthService
	search  SearchService
	listing ListingService
	stats   StatsService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		users:      users.NewMemoryRepository(),
		properties: properties.NewMemoryRepository(),
		hasher:     cryptox.MustHasher(cryptox.AlgorithmSHA256),
	}
	e.session = session.NewHolder(e.users)
	e.auth = NewAuthService(e.users, e.hasher, e.session, DefaultMinPasswordLength)
	e.search = NewSearchService(e.properties)
	e.listing = NewListingService(e.properties, e.session)
	e.stats = NewStatsService(e.properties, e.users)
	return e
}

func (e *env) addUser(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	u, err := e.users.Register(context.Background(), &models.User{
		DisplayName:    "User " + email,
		Email:          email,
		Phone:          "3001234567",
		PasswordDigest: e.hasher.Hash([]byte(password)),
		Role:           role,
	})
	require.NoError(t, err)
	return u
}

func (e *env) addProperty(t *testing.T, title, city string, price float64, amenities ...string) *models.Property {
	t.Helper()
	p := models.NewProperty()
	p.OwnerID = "owner-1"
	p.Title = title
	p.City = city
	p.PricePerNight = price
	for _, a := range amenities {
		p.AddAmenity(a)
	}
	got, err := e.properties.Register(context.Background(), p)
	require.NoError(t, err)
	return got
}

func titlesOf(ps []*models.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

package seed

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultCatalog(t *testing.T) {
	ctx := context.Background()
	us := users.NewMemoryRepository()
	ps := properties.NewMemoryRepository()
	h := cryptox.MustHasher(cryptox.AlgorithmSHA256)

	c, err := Default()
	require.NoError(t, err)

	sum, err := Load(ctx, c, us, ps, h)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 5, Properties: 10}, sum)

	admin, ok := us.FindByEmail(ctx, "ADMIN@admin.com")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, h.Verify([]byte("1234"), admin.PasswordDigest))
	assert.Equal(t, 2, us.CountByRole(ctx, models.RoleHost))
	assert.Equal(t, 2, us.CountByRole(ctx, models.RoleTraveler))

	host, _ := us.FindByEmail(ctx, "maria.gonzalez@gmail.com")
	assert.Len(t, ps.ListByOwner(ctx, host.ID), 10)

	assert.Equal(t, float64(70000), ps.MinPrice(ctx))
	assert.Equal(t, float64(400000), ps.MaxPrice(ctx))

	inRange := ps.PriceRange(ctx, 100000, 200000)
	require.Len(t, inRange, 2)
	assert.Equal(t, "Apartamento cerca a la Terminal", inRange[0].Title)
	assert.Equal(t, "Apartamento moderno en Chapinero", inRange[1].Title)

	bogota := 0
	for _, p := range ps.ListAll(ctx) {
		if p.City == "Bogotá" {
			bogota++
		}
	}
	assert.Equal(t, 6, bogota)
}

func TestLoad_TwiceFailsOnDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	us := users.NewMemoryRepository()
	ps := properties.NewMemoryRepository()
	h := cryptox.MustHasher(cryptox.AlgorithmSHA256)
	c, err := Default()
	require.NoError(t, err)

	_, err = Load(ctx, c, us, ps, h)
	require.NoError(t, err)
	_, err = Load(ctx, c, us, ps, h)
	require.ErrorIs(t, err, common.ErrDuplicateKey)
	assert.Equal(t, 5, us.Len())
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	h := cryptox.MustHasher(cryptox.AlgorithmSHA256)

	c, err := Parse([]byte(`
users:
  - {name: X, email: x@x.co, phone: "3001234567", password: p, role: pirate}
`))
	require.NoError(t, err)
	_, err = Load(ctx, c, users.NewMemoryRepository(), properties.NewMemoryRepository(), h)
	require.ErrorContains(t, err, "unknown role")

	c, err = Parse([]byte(`
properties:
  - {owner: ghost@x.co, title: T, price: 10}
`))
	require.NoError(t, err)
	_, err = Load(ctx, c, users.NewMemoryRepository(), properties.NewMemoryRepository(), h)
	require.ErrorContains(t, err, "unknown owner")

	_, err = Parse([]byte("users: [\n"))
	require.Error(t, err)
}

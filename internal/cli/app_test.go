package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/dmitrijs2005/staykonnect/internal/config"
	"github.com/dmitrijs2005/staykonnect/internal/logging"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

// newTestApp builds an App over the demonstration catalog whose prompts read
// the given lines.
func newTestApp(t *testing.T, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	app, err := NewApp(context.Background(), cfg, logging.Discard(), in, &out)
	require.NoError(t, err)
	return app, &out
}

func TestNewApp_UnsupportedAlgorithm(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HashAlgorithm = "md5"

	_, err := NewApp(context.Background(), cfg, logging.Discard(), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, common.ErrUnsupportedAlgorithm)
}

func TestNewApp_WithoutSeed(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SeedDemoData = false

	var out bytes.Buffer
	app, err := NewApp(context.Background(), cfg, logging.Discard(), strings.NewReader(""), &out)
	require.NoError(t, err)

	require.NoError(t, app.Cities(context.Background()))
	assert.Equal(t, "Cities: none\n", out.String())
}

func TestApp_RegisterLoginPublish(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t,
		// register
		"Laura Ríos", "laura@example.com", "3001112233", "secret1", "secret1", "anfitrión",
		// login
		"LAURA@example.com", "secret1",
		// publish
		"Cabaña en Guatapé", "Guatapé", "Vereda El Roble", "Cabaña",
		"180000", "5", "2", "1",
		"Cabaña frente al embalse.", "Incluye kayak.", "",
		"WiFi, Chimenea, wifi",
	)

	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), "User registered successfully. You can now log in.")

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), "Welcome Laura Ríos!")
	st, role := app.state(ctx)
	assert.Equal(t, session.Authenticated, st)
	assert.Equal(t, models.RoleHost, role)
	assert.Equal(t, "(laura@example.com Host)", app.getStatus(ctx))

	out.Reset()
	require.NoError(t, app.Publish(ctx))
	got := out.String()
	assert.Contains(t, got, "Property published successfully")
	assert.Contains(t, got, "Cabaña en Guatapé [")
	assert.Contains(t, got, "  Price:     $180,000 per night")
	assert.Contains(t, got, "  Amenities: WiFi, Chimenea")
	assert.Contains(t, got, "  Cabaña frente al embalse.\n  Incluye kayak.\n")

	out.Reset()
	require.NoError(t, app.Mine(ctx))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "You have 1 registered property(ies)", lines[0])

	// "1. [xxxxxxxx] ..." - reuse the short id the listing printed.
	short := lines[1][len("1. [") : len("1. [")+shortIDLen]
	out.Reset()
	require.NoError(t, app.Availability(ctx, short, "off"))
	assert.Equal(t, "Cabaña en Guatapé is now unavailable\n", out.String())

	out.Reset()
	require.NoError(t, app.Mine(ctx))
	assert.Contains(t, out.String(), " - Guatapé - $180,000 (unavailable)")

	require.NoError(t, app.Logout(ctx))
	st, _ = app.state(ctx)
	assert.Equal(t, session.Anonymous, st)
	assert.Equal(t, "(guest)", app.getStatus(ctx))
}

func TestApp_RegisterRejected(t *testing.T) {
	app, _ := newTestApp(t,
		"Otro", "maria.gonzalez@gmail.com", "3001112233", "secret1", "secret1", "traveler",
	)

	err := app.Register(context.Background())
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t, "maria.gonzalez@gmail.com", "wrong-password")

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	st, _ := app.state(context.Background())
	assert.Equal(t, session.Anonymous, st)
}

func TestApp_WhoAmI(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "ana.martinez@gmail.com", "viajero123")

	assert.ErrorIs(t, app.WhoAmI(ctx), common.ErrUnauthorized)

	require.NoError(t, app.Login(ctx))
	out.Reset()
	require.NoError(t, app.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Ana Martínez <ana.martinez@gmail.com>\n  Role:       Traveler\n")
}

func TestApp_PublishAsTravelerForbidden(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t,
		"carlos.perez@gmail.com", "viajero123",
		"Title", "Cali", "Calle 1", "Casa", "100000", "2", "1", "1", "", "",
	)
	require.NoError(t, app.Login(ctx))

	err := app.Publish(ctx)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestApp_Search(t *testing.T) {
	app, out := newTestApp(t, "bogota", "100000", "300000", "wifi, COCINA")

	require.NoError(t, app.Search(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Found 3 property(ies)\n")
	assert.Contains(t, got, "Apartamento moderno en Chapinero - Bogotá - $150,000")
	assert.Contains(t, got, "Casa acogedora en Usaquén - Bogotá - $250,000")
	assert.Contains(t, got, "Loft de lujo en Parque 93 - Bogotá - $300,000")
}

func TestApp_SearchInvalidPrice(t *testing.T) {
	app, _ := newTestApp(t, "", "abc", "", "")

	err := app.Search(context.Background())
	assert.Equal(t, "priceMin", common.FieldOf(err))
}

func TestApp_Facets(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)

	require.NoError(t, app.Cities(ctx))
	assert.Equal(t, "Cities (4): Bogotá, Cali, Cartagena, Medellín\n", out.String())

	out.Reset()
	require.NoError(t, app.Amenities(ctx))
	assert.True(t, strings.HasPrefix(out.String(), "Amenities (8): "))
}

func TestApp_RankingCommands(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)

	require.NoError(t, app.Cheapest(ctx, ""))
	assert.Contains(t, out.String(), "Top 3 cheapest\n")
	assert.Contains(t, out.String(), "3. [")
	assert.NotContains(t, out.String(), "4. [")

	out.Reset()
	require.NoError(t, app.Priciest(ctx, "1"))
	assert.Contains(t, out.String(), "Casa de playa en Bocagrande")

	assert.Equal(t, "n", common.FieldOf(app.Cheapest(ctx, "zero")))
	assert.Equal(t, "n", common.FieldOf(app.Priciest(ctx, "0")))

	out.Reset()
	require.NoError(t, app.Range(ctx, "100000", "200000"))
	got := out.String()
	assert.Contains(t, got, "Between $100000 and $200000: 2 found\n")
	assert.Less(t, strings.Index(got, "Terminal"), strings.Index(got, "Chapinero"))

	assert.Equal(t, "order", common.FieldOf(app.Sorted(ctx, "sideways")))
}

func TestApp_ShowByPrefix(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)

	require.NoError(t, app.Priciest(ctx, "1"))
	line := strings.Split(out.String(), "\n")[1]
	prefix := line[len("1. [") : len("1. [")+shortIDLen]

	out.Reset()
	require.NoError(t, app.Show(ctx, prefix))
	assert.Contains(t, out.String(), "Casa de playa en Bocagrande [")
	assert.Contains(t, out.String(), "  Guests:    8 (")

	assert.ErrorIs(t, app.Show(ctx, "zzzzzzzz"), common.ErrNotFound)
}

func TestApp_AvailabilityRejectsBadValue(t *testing.T) {
	app, _ := newTestApp(t)

	err := app.Availability(context.Background(), "whatever", "maybe")
	assert.Equal(t, "available", common.FieldOf(err))
}

func TestApp_Profile(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t,
		"ana.martinez@gmail.com", "viajero123",
		"Ana María Martínez", "",
		"", "12",
	)

	assert.ErrorIs(t, app.Profile(ctx), common.ErrUnauthorized)

	require.NoError(t, app.Login(ctx))
	out.Reset()
	require.NoError(t, app.Profile(ctx))
	got := out.String()
	assert.Contains(t, got, "Full name [Ana Martínez]\n> ")
	assert.Contains(t, got, "Phone [3159876543]\n> ")
	assert.Contains(t, got, "Profile updated\nAna María Martínez <ana.martinez@gmail.com>\n")
	assert.Contains(t, got, "  Phone:      3159876543\n")

	err := app.Profile(ctx)
	assert.Equal(t, "phone", common.FieldOf(err))
	assert.Equal(t, "(ana.martinez@gmail.com Traveler)", app.getStatus(ctx))
}

func TestApp_PasswordReadFromAppInput(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, "maria.gonzalez@gmail.com", "anfitrion123")
	// Even if the process stdin were a terminal, a non-file input is read
	// line by line.
	stubTerminal(t, true, nil, errors.New("terminal must not be used"))

	require.NoError(t, app.Login(ctx))
	_, role := app.state(ctx)
	assert.Equal(t, models.RoleHost, role)
}

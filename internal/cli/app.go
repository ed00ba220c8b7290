package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/staykonnect/internal/config"
	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/dmitrijs2005/staykonnect/internal/logging"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
	"github.com/dmitrijs2005/staykonnect/internal/seed"
	"github.com/dmitrijs2005/staykonnect/internal/services"
	"github.com/dmitrijs2005/staykonnect/internal/session"
)

// App is the composition root of the terminal client.
type App struct {
	config         *config.Config
	log            logging.Logger
	session        *session.Holder
	authService    services.AuthService
	searchService  services.SearchService
	listingService services.ListingService
	statsService   services.StatsService
	reader         *bufio.Reader
	inFd           int
	out            io.Writer
}

// NewApp wires stores, session and services for cfg and loads the
// demonstration catalog when cfg asks for it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	hasher, err := cryptox.NewHasher(cfg.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	userRepo := users.NewMemoryRepository()
	propertyRepo := properties.NewMemoryRepository()
	sess := session.NewHolder(userRepo)

	if cfg.SeedDemoData {
		catalog, err := seed.Default()
		if err != nil {
			return nil, err
		}
		sum, err := seed.Load(ctx, catalog, userRepo, propertyRepo, hasher)
		if err != nil {
			return nil, fmt.Errorf("load demo catalog: %w", err)
		}
		log.Info(ctx, "demo catalog loaded", "users", sum.Users, "properties", sum.Properties)
	}
	log.Debug(ctx, "app ready", "hash_algorithm", hasher, "min_password_length", cfg.MinPasswordLength)

	return &App{
		config:         cfg,
		log:            log,
		session:        sess,
		authService:    services.NewAuthService(userRepo, hasher, sess, cfg.MinPasswordLength),
		searchService:  services.NewSearchService(propertyRepo),
		listingService: services.NewListingService(propertyRepo, sess),
		statsService:   services.NewStatsService(propertyRepo, userRepo),
		reader:         bufio.NewReader(in),
		inFd:           inputFd(in),
		out:            out,
	}, nil
}

// state reports the session state and, when signed in, the role.
func (a *App) state(ctx context.Context) (session.State, models.Role) {
	u, ok := a.authService.Current(ctx)
	if !ok {
		return session.Anonymous, 0
	}
	return session.Authenticated, u.Role
}

// getStatus renders the prompt status, e.g. "(ana.martinez@gmail.com Traveler)".
func (a *App) getStatus(ctx context.Context) string {
	u, ok := a.authService.Current(ctx)
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

// Run starts the interactive loop and returns when the user leaves or input
// ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to StayKonnect (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/staykonnect/internal/config"
	"github.com/dmitrijs2005/staykonnect/internal/logging"
	"github.com/dmitrijs2005/staykonnect/internal/services"
)

// NewRootCommand creates the root command for the StayKonnect client.
// Without a subcommand it starts the interactive REPL.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staykonnect",
		Short: "StayKonnect - short-stay rentals in the terminal",
		Long: "StayKonnect lets travelers browse and search rental properties and " +
			"hosts publish them, backed by an in-memory catalog with a price index.",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newReplCommand())
	cmd.AddCommand(newDemoCommand())
	cmd.AddCommand(newSearchCommand())
	cmd.AddCommand(newStatsCommand())

	return cmd
}

// bootstrap loads configuration from the parsed flags and builds an App
// bound to the command's streams.
func bootstrap(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load(config.Options{Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return NewApp(cmd.Context(), cfg, log.With("command", cmd.Name()), cmd.InOrStdin(), cmd.OutOrStdout())
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	app, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	app.Run(cmd.Context())
	return nil
}

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive session (default)",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the price index showcase for the loaded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			return app.Demo(cmd.Context())
		},
	}
}

type searchOptions struct {
	city      string
	min       string
	max       string
	amenities []string
}

func newSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search available properties by city, price and amenities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			// Validation errors carry the user-facing text; cobra prints it once.
			return app.runSearch(cmd.Context(), services.SearchRequest{
				City:      opts.city,
				PriceMin:  opts.min,
				PriceMax:  opts.max,
				Amenities: opts.amenities,
			})
		},
	}

	cmd.Flags().StringVar(&opts.city, "city", "", "city to search in (empty for all)")
	cmd.Flags().StringVar(&opts.min, "min", "", "minimum price per night")
	cmd.Flags().StringVar(&opts.max, "max", "", "maximum price per night")
	cmd.Flags().StringSliceVar(&opts.amenities, "amenity", nil, "required amenity (repeatable)")

	return cmd
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog and user statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			return app.Stats(cmd.Context())
		},
	}
}

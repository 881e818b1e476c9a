package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movaro/console/internal/core/guard"
	"github.com/movaro/console/internal/core/session"
	"github.com/movaro/console/internal/infrastructure/config"
	"github.com/movaro/console/internal/infrastructure/store"
	"github.com/movaro/console/pkg/client"
	"github.com/movaro/console/pkg/logger"
)

var (
	flagAPIURL   string
	flagLogLevel string

	cfg      *config.Config
	tokenDB  *store.BoltStore
	sessions *session.Manager
	api      *client.Client
)

// NewRootCmd creates the root cobra command for the movaro console.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "movaro",
		Short: "Movaro operations console",
		Long:  "Movaro manages transportation bookings, the construction-supply catalog, and garage service requests from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if flagAPIURL != "" {
				cfg.APIBaseURL = flagAPIURL
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}

			logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

			tokenPath, err := cfg.ResolveTokenPath()
			if err != nil {
				return err
			}
			tokenDB, err = store.OpenBolt(tokenPath)
			if err != nil {
				return fmt.Errorf("open token store: %w", err)
			}

			sessions = session.NewManager(tokenDB, logger.Get())
			api = client.New(cfg.APIBaseURL, sessions, cfg.HTTPTimeout)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if tokenDB != nil {
				if err := tokenDB.Close(); err != nil {
					log := logger.Get()
					log.Warn().Err(err).Msg("close token store")
				}
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (overrides MOVARO_API_URL)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newDashboardCmd(),
		newBookingsCmd(),
		newDriversCmd(),
		newVehiclesCmd(),
		newProductsCmd(),
		newOrdersCmd(),
		newRequestsCmd(),
	)

	return root
}

// gate turns a guard decision into a command error. Commands call it
// before touching the API so denial reads the same everywhere.
func gate(dec guard.Decision) error {
	if dec.Allowed {
		return nil
	}
	if dec.Redirect == guard.DestinationLogin {
		return fmt.Errorf("not signed in (redirect: %s); run `movaro login`", dec.Redirect)
	}
	return fmt.Errorf("admin role required (redirect: %s)", dec.Redirect)
}

func requireSession() error {
	return gate(guard.Protected(sessions.Current()))
}

func requireAdmin() error {
	return gate(guard.AdminOnly(sessions.Current()))
}

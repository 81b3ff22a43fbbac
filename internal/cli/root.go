package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fuelfleet/pkg/clients"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Addr   string
	Token  string
	Format string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the fleetctl root command. Every subcommand talks to
// a running fleetd through client.
func NewRootCommand(client clients.HTTPClientI) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fleetctl",
		Short: "Admin client for the fuel fleet API",
		Long:  "Trigger maintenance jobs and inspect pending dispenses on a running fleetd.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Token == "" {
				return fmt.Errorf("no token: pass --token or set FLEET_TOKEN")
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", envOr("FLEET_ADDR", "http://localhost:8080"), "fleetd base URL")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv("FLEET_TOKEN"), "bearer token from /api/user/login")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	api := &apiClient{client: client, opts: opts}
	cmd.AddCommand(NewReconcileCommand(api))
	cmd.AddCommand(NewResetQuotasCommand(api))
	cmd.AddCommand(NewPendingCommand(api))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/spf13/cobra"
)

var (
	apiBase string
	token   string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "hireboard-cli",
	Short: "Hireboard admin CLI",
	Long: `hireboard-cli reads the marketplace API with an admin token and prints
the same rows the console shows.

Available commands:
  list        Print one page of a collection
  dashboard   Print the dashboard totals
  version     Print the CLI version`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if apiBase == "" {
			apiBase = os.Getenv("HIREBOARD_API_BASE_URL")
		}
		if token == "" {
			token = os.Getenv("HIREBOARD_TOKEN")
		}
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "marketplace API base URL (default $HIREBOARD_API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "admin bearer token (default $HIREBOARD_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")
}

// connect returns a client and a context carrying the admin token.
func connect(parent context.Context) (*apiclient.Client, context.Context, context.CancelFunc, error) {
	if token == "" {
		return nil, nil, nil, fmt.Errorf("no token: pass --token or set HIREBOARD_TOKEN")
	}
	api, err := apiclient.New(apiBase, apiclient.WithTimeout(timeout))
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(apiclient.WithCredential(parent, token), timeout)
	return api, ctx, cancel, nil
}

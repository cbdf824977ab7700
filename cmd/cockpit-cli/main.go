package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cockpit-cli",
		Short: "Avatar cockpit CLI - configuration and connectivity checks",
		Long: `cockpit-cli inspects the avatar cockpit configuration and checks that
LiveKit and the token endpoint work before the browser is involved.

Examples:
  # Configuration
  cockpit-cli config schema -o cockpit.schema.json
  cockpit-cli config show --format json

  # Tokens
  cockpit-cli token issue --room test-room --identity test-user
  cockpit-cli token check --server http://localhost:3000

  # LiveKit
  cockpit-cli livekit probe`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if envFile == "" {
				return nil
			}
			if err := godotenv.Overload(envFile); err != nil {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newLiveKitCmd())

	rootCmd.PersistentFlags().String("env-file", "", "Load variables from this .env file first")
	return rootCmd
}

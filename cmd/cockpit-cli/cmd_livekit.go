package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/janhq/avatar-cockpit/internal/config"
	"github.com/janhq/avatar-cockpit/internal/domain"
	"github.com/janhq/avatar-cockpit/internal/infrastructure"
)

func newLiveKitCmd() *cobra.Command {
	livekitCmd := &cobra.Command{
		Use:   "livekit",
		Short: "LiveKit connectivity commands",
	}

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "List active rooms to check URL and credentials",
		RunE:  runLiveKitProbe,
	}
	probeCmd.Flags().Duration("timeout", 10*time.Second, "Probe timeout")

	livekitCmd.AddCommand(probeCmd)
	return livekitCmd
}

func runLiveKitProbe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	client := infrastructure.ProvideRoomClient(domain.ProvideGrantSettings(cfg), cliLogger(cmd))

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	status, err := client.Probe(ctx)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "LiveKit URL: %s\n", status.URL)
	if err != nil {
		return fmt.Errorf("LiveKit not reachable: %w", err)
	}

	fmt.Fprintf(out, "✓ Connected, %d active room(s)\n", len(status.Rooms))
	for _, room := range status.Rooms {
		fmt.Fprintf(out, "- %s (%d participants)\n", room.Name, room.NumParticipants)
	}
	return nil
}

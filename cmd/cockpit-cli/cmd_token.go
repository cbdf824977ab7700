package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/janhq/avatar-cockpit/internal/config"
	"github.com/janhq/avatar-cockpit/internal/domain"
	"github.com/janhq/avatar-cockpit/internal/domain/grant"
	"github.com/janhq/avatar-cockpit/internal/infrastructure"
)

func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Room token commands",
	}

	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a room token locally from LIVEKIT_* variables",
		RunE:  runTokenIssue,
	}
	issueCmd.Flags().String("room", "", "Room name (default: LIVEKIT_ROOM_NAME)")
	issueCmd.Flags().String("identity", "", "Participant identity (default: generated)")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Request a token from a running server and inspect it",
		Long: `Calls GET /token on a running server, checks the response shape and
decodes the token claims. The signature is not verified.`,
		RunE: runTokenCheck,
	}
	checkCmd.Flags().String("server", "http://localhost:3000", "Server base URL")
	checkCmd.Flags().String("room", "test-room", "Room name to request")
	checkCmd.Flags().String("identity", "test-user", "Identity to request")
	checkCmd.Flags().String("bearer", "", "Bearer token when the server has auth enabled")
	checkCmd.Flags().Duration("timeout", 10*time.Second, "Request timeout")

	tokenCmd.AddCommand(issueCmd)
	tokenCmd.AddCommand(checkCmd)
	return tokenCmd
}

func cliLogger(cmd *cobra.Command) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
}

func runTokenIssue(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := cliLogger(cmd)

	settings := domain.ProvideGrantSettings(cfg)
	issuer := domain.ProvideIssuer(infrastructure.ProvideTokenSigner(), settings, log)
	service := domain.ProvideGrantService(issuer, settings, log)

	room, _ := cmd.Flags().GetString("room")
	identity, _ := cmd.Flags().GetString("identity")

	sess, err := service.CreateSession(cmd.Context(), &grant.SessionRequest{Room: room, Identity: identity})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"token":      sess.Token,
		"url":        sess.URL,
		"room":       sess.Room,
		"identity":   sess.Identity,
		"expires_at": sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

type tokenCheckResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
	Room  string `json:"room"`
}

func runTokenCheck(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")
	room, _ := cmd.Flags().GetString("room")
	identity, _ := cmd.Flags().GetString("identity")
	bearer, _ := cmd.Flags().GetString("bearer")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	query := url.Values{}
	query.Set("room", room)
	query.Set("identity", identity)
	target := strings.TrimSuffix(server, "/") + "/token?" + query.Encode()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing token endpoint at %s\n", target)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req := resty.New().R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&tokenCheckResponse{})
	if bearer != "" {
		req.SetAuthToken(bearer)
	}

	resp, err := req.Get(strings.TrimSuffix(server, "/") + "/token")
	if err != nil {
		return fmt.Errorf("connect to token endpoint (is the server running on %s?): %w", server, err)
	}
	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode())

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	tr, ok := resp.Result().(*tokenCheckResponse)
	if !ok || tr == nil {
		return errors.New("response is not valid JSON")
	}
	if tr.Token == "" {
		return errors.New("response has no token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.Token, claims); err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	fmt.Fprintln(out, "✓ Token endpoint is working")
	fmt.Fprintf(out, "- Room: %s\n", tr.Room)
	fmt.Fprintf(out, "- LiveKit URL: %s\n", tr.URL)
	fmt.Fprintf(out, "- Subject: %v\n", claims["sub"])
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Fprintf(out, "- Expires: %s\n", exp.UTC().Format(time.RFC3339))
	}

	if tr.Room != room {
		return fmt.Errorf("requested room %q but got %q", room, tr.Room)
	}
	if sub, _ := claims.GetSubject(); sub != identity {
		return fmt.Errorf("requested identity %q but token subject is %q", identity, sub)
	}
	return nil
}

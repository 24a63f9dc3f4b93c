package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(pairingsCmd)
	rootCmd.AddCommand(announceCmd)
	rootCmd.AddCommand(announceStandingsCmd)
	rootCmd.AddCommand(resetMatchesCmd)
	rootCmd.AddCommand(resetPlayersCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register NAME",
	Short: "Register a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players", map[string]string{"name": args[0]})
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil)
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players/count", nil)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report WINNER LOSER",
	Short: "Record a match result by player id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winner, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid winner id %q: %w", args[0], err)
		}
		loser, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid loser id %q: %w", args[1], err)
		}
		return performRequest(http.MethodPost, "/matches", map[string]int64{"winner": winner, "loser": loser})
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/matches", nil)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/standings", nil)
	},
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "Show the pairings for the next round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/pairings", nil)
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Pair the next round and announce it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/rounds/announce", nil)
	},
}

var announceStandingsCmd = &cobra.Command{
	Use:   "announce-standings",
	Short: "Announce the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/standings/announce", nil)
	},
}

var resetMatchesCmd = &cobra.Command{
	Use:   "reset-matches",
	Short: "Delete every recorded match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/matches", nil)
	},
}

var resetPlayersCmd = &cobra.Command{
	Use:   "reset-players",
	Short: "Delete every player and their matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/players", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

// requestURL joins the endpoint to the host and applies the global flags.
func requestURL(endpoint string) (string, error) {
	u, err := url.Parse(host + endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", host, err)
	}
	q := u.Query()
	if dryRun {
		q.Set("dry_run", "true")
	}
	if verbose {
		q.Set("verbose", "true")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func performRequest(method, endpoint string, payload any) error {
	target, err := requestURL(endpoint)
	if err != nil {
		return err
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	winnerID       int64
	loserID        int64
	winnerChampion string
	loserChampion  string
	matchDate      string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(addMatchCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(metricsCmd)

	addMatchCmd.Flags().Int64Var(&winnerID, "winner", 0, "Winner player id")
	addMatchCmd.Flags().Int64Var(&loserID, "loser", 0, "Loser player id")
	addMatchCmd.Flags().StringVar(&winnerChampion, "winner-champion", "", "Champion played by the winner")
	addMatchCmd.Flags().StringVar(&loserChampion, "loser-champion", "", "Champion played by the loser")
	addMatchCmd.Flags().StringVar(&matchDate, "date", time.Now().Format("2006-01-02"), "Match date (YYYY-MM-DD or DD/MM/YYYY)")
	for _, flag := range []string{"winner", "loser", "winner-champion", "loser-champion"} {
		_ = addMatchCmd.MarkFlagRequired(flag)
	}
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the current ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/players", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/matches", nil)
	},
}

var addMatchCmd = &cobra.Command{
	Use:   "add-match",
	Short: "Record the result of a 1v1 match",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]any{
			"winnerPlayerId": winnerID,
			"winnerChampion": winnerChampion,
			"loserPlayerId":  loserID,
			"loserChampion":  loserChampion,
			"matchDate":      matchDate,
		})
		if err != nil {
			return err
		}
		return performRequest(http.MethodPost, "/api/matches", body)
	},
}

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "List the champion catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/champions", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func performRequest(method, endpoint string, payload []byte) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
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

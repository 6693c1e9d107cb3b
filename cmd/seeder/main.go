package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/x1-ranking/internal/database"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/spf13/cobra"
)

var (
	playerNames []string
	demoMatches int
)

var demoChampions = []string{"Ahri", "Zed", "Yasuo", "Lux", "Jinx", "Lee Sin", "Darius", "Katarina", "Ezreal", "Thresh"}

// Simplified config loading for the script
func loadConfig() (dbName, primaryURL, authToken string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable %s is not set.", "DB_NAME")
	}
	return dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN")
}

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Create players and optional demo matches in the x1-ranking database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringSliceVar(&playerNames, "players", nil, "Comma separated player names to create")
	rootCmd.Flags().IntVar(&demoMatches, "demo-matches", 0, "Number of random matches to record between the created players")
	_ = rootCmd.MarkFlagRequired("players")
}

func seed(ctx context.Context) error {
	log.Info("Starting database seeder...")
	dbName, primaryURL, authToken := loadConfig()

	db, teardown, err := database.InitDB(dbName, primaryURL, authToken)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	store := league.New(db)
	ids := make([]int64, 0, len(playerNames))
	for _, name := range playerNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		id, err := store.AddPlayer(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to add player %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	log.Info("Created players", "count", len(ids))

	if demoMatches == 0 {
		return nil
	}
	if len(ids) < 2 {
		return fmt.Errorf("at least two players are needed for demo matches")
	}

	startTime := time.Now()
	for i := range demoMatches {
		winner := rand.Intn(len(ids))
		loser := (winner + 1 + rand.Intn(len(ids)-1)) % len(ids)
		_, err := store.InsertMatch(ctx, league.NewMatch{
			WinnerPlayerID: ids[winner],
			WinnerChampion: demoChampions[rand.Intn(len(demoChampions))],
			LoserPlayerID:  ids[loser],
			LoserChampion:  demoChampions[rand.Intn(len(demoChampions))],
			MatchDate:      time.Now().AddDate(0, 0, -rand.Intn(90)),
		})
		if err != nil {
			return fmt.Errorf("failed to insert demo match %d: %w", i+1, err)
		}
	}
	log.Info("Successfully inserted demo matches.", "count", demoMatches, "duration", time.Since(startTime))
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal("Seeder failed", "error", err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyflap/skyflap/internal/accounts"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top player scores.

Examples:
  skyflap scores
  skyflap scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := accounts.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening accounts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Leaderboard(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Skyflap - High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Sign up and play 'skyflap play --user <name>' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Player", "Best", "Since")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "------", "----", "-----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02")
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, entry.Username, entry.HighScore, dateStr)
	}
}

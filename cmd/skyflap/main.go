// skyflap is a side-scrolling reflex game for the terminal.
//
// Usage:
//
//	skyflap play             - Play in the current terminal
//	skyflap signup           - Create an account from the command line
//	skyflap scores           - Show the leaderboard
//	skyflap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyflap/accounts.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyflap",
	Short: "Skyflap - Flap through the gaps in your terminal",
	Long: `Skyflap is a terminal arcade game: keep flapping to stay airborne
and steer through the gaps in the oncoming barriers. Survive longer,
score higher; log in to keep your best on the leaderboard.

Available commands:
  play     - Play in the current terminal
  signup   - Create an account from the command line
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  skyflap play
  skyflap play --user alice
  skyflap scores
  skyflap serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflap/accounts.db", "Path to accounts database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

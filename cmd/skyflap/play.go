package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skyflap/skyflap/internal/accounts"
	"github.com/skyflap/skyflap/internal/config"
	"github.com/skyflap/skyflap/internal/core"
	"github.com/skyflap/skyflap/internal/platform/tui"
)

var (
	flagConfig string
	flagUser   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Resume
  N          - New game (from pause or game over)
  Q/Ctrl+C   - Quit

Pass --user to log in before the menu; scores only persist for
logged-in players.

Examples:
  skyflap play
  skyflap play --user alice
  skyflap play --config ./my-skyflap.yaml
  skyflap play --seed 42 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagUser, "user", "", "Log in as this user (prompts for password)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "skyflap"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game config: %v\n", err)
		os.Exit(1)
	}

	// Scores cannot be read or written without the database; refuse to
	// start rather than silently play without persistence.
	store, err := accounts.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening accounts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	username := ""
	if flagUser != "" {
		fmt.Printf("Password for %s: ", flagUser)
		password, pwErr := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if pwErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", pwErr)
			os.Exit(1)
		}

		ok, verifyErr := store.Verify(flagUser, string(password))
		if verifyErr != nil {
			fmt.Fprintf(os.Stderr, "Error checking credentials: %v\n", verifyErr)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Invalid username or password.")
			os.Exit(1)
		}
		username = flagUser
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(store, gameCfg, rt, username, logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

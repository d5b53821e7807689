package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skyflap/skyflap/internal/accounts"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account from the command line",
	Long: `Create a new account. Prompts for a username and password; the
password is read without echoing.

Examples:
  skyflap signup
  skyflap signup --db ./accounts.db`,
	Run: runSignup,
}

func runSignup(cmd *cobra.Command, args []string) {
	store, err := accounts.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening accounts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading username: %v\n", err)
		os.Exit(1)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Fprintln(os.Stderr, "Username is required.")
		os.Exit(1)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}

	if string(password) != string(confirm) {
		fmt.Fprintln(os.Stderr, "Passwords do not match.")
		os.Exit(1)
	}

	created, err := store.Create(username, string(password))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		os.Exit(1)
	}
	if !created {
		fmt.Fprintf(os.Stderr, "Username %q is already taken.\n", username)
		os.Exit(1)
	}

	fmt.Printf("Account %q created. Play with: skyflap play --user %s\n", username, username)
}

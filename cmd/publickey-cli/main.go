// Package main is the entry point for the publickey-cli application.
// It registers the key generation and cipher sub-commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/derricw/publickey/cmd/publickey-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "publickey-cli",
		Short: "Textbook public-key block cipher CLI",
		Long: `publickey-cli is a command-line tool for a textbook RSA-style block
cryptosystem: generate key pairs from random primes, encrypt ASCII text into
integer blocks and decrypt them again.

This is an educational cipher. It uses no padding and no cryptographically
secure randomness; do not use it to protect real data.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}

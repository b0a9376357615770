// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Learndash admin
// CLI. It implements subcommands for authentication, profile management,
// and dashboard resources (instructors, students, courses, transactions,
// notifications) using the Cobra CLI framework, with a terminal UI built
// on pterm spinners and tables.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/config"
	"learndash/admincli/internal/credstore"
	"learndash/admincli/internal/session"
	"learndash/admincli/internal/xdg"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Learndash admin CLI.
var rootCmd = &cobra.Command{
	Use:           "learndash",
	Short:         "Learndash admin CLI for the learning dashboard backend",
	Long:          `Learndash is a command-line tool for administering the learning dashboard: managing instructors, students, courses, transactions and notifications against the hosted backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("learndash %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}

// newSession builds a session from configuration and the OS keychain.
// Previously persisted credentials are restored, so a session may start
// out already authenticated.
func newSession() (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	applyTerminalPrefs(cfg)

	// The state dir holds the keyring file fallback on platforms without
	// a native credential store.
	fallbackDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	store, err := credstore.OpenKeyring(fallbackDir)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	sess := session.New(cfg.BaseURL, store)
	sess.API().SetTimeout(cfg.Timeout)
	return sess, nil
}

// applyTerminalPrefs applies the configured output settings. Debug level
// unlocks the pterm.Debug diagnostics printed on network failures.
func applyTerminalPrefs(cfg config.Config) {
	if !cfg.ColorOutput {
		pterm.DisableColor()
	}
	if strings.EqualFold(cfg.LogLevel, "debug") {
		pterm.EnableDebugMessages()
	}
}

// requireSession builds a session and insists it is authenticated.
// When no credentials are stored it prints a login hint and returns ok=false
// with no error, so commands can exit quietly.
func requireSession() (*session.Session, bool, error) {
	sess, err := newSession()
	if err != nil {
		return nil, false, err
	}
	if !sess.IsLoggedIn() {
		fmt.Println("🔒 You're not logged in yet!")
		fmt.Println("   Run 'learndash login' to get started.")
		return nil, false, nil
	}
	return sess, true, nil
}

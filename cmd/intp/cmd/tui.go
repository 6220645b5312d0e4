// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the full-screen REPL
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/intp/internal/repl"
	"github.com/msto63/intp/internal/tui/replclient"
)

var tuiMode string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen REPL",
	Long: `Starts the terminal UI REPL.

Shortcuts:
  Enter       evaluate input
  Alt+Enter   new line
  ↑/↓         input history
  Ctrl+T      cycle mode (ast, tokens, both)
  Ctrl+L      clear transcript
  PgUp/PgDn   scroll
  Ctrl+C      quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVarP(&tuiMode, "mode", "m", "", "initial mode: tokens, ast or both (default from config)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := replclient.ConfigFrom(appConfig, logger)
	cfg.Version = Version
	if cmd.Flags().Changed("mode") {
		if !repl.ValidMode(tuiMode) {
			return invalidModeError(tuiMode)
		}
		cfg.Mode = tuiMode
	}

	// Log lines would corrupt the alternate screen
	if !verbose {
		cfg.Logger = logger.WithOutput(io.Discard)
	}

	if err := replclient.Run(cfg); err != nil {
		printError(cmd, "terminal UI failed", err)
		return err
	}
	return nil
}

// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the line REPL
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/intp/foundation/intp/parser"
	"github.com/msto63/intp/internal/repl"
)

var (
	replMode   string
	replPrompt string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the line REPL",
	Long: `Starts a read-eval-print loop on standard input.

Every line is lexed and parsed on its own. Depending on the mode the
REPL prints the tokens, the parsed program or both.

Commands:
  :mode [tokens|ast|both]  show or change the mode
  :help                    list commands
  :quit                    leave (as does end of input)`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replMode, "mode", "m", "", "output mode: tokens, ast or both (default from config)")
	replCmd.Flags().StringVarP(&replPrompt, "prompt", "p", "", "prompt string (default from config)")
}

func runREPL(cmd *cobra.Command, args []string) error {
	opts := repl.Options{
		Prompt: appConfig.REPL.Prompt,
		Mode:   appConfig.REPL.Mode,
		Parser: parser.Options{
			MaxInputLength: appConfig.Parser.MaxInputLength,
			Trace:          appConfig.Parser.Trace,
		},
		Logger: logger,
	}
	if cmd.Flags().Changed("mode") {
		opts.Mode = replMode
	}
	if cmd.Flags().Changed("prompt") {
		opts.Prompt = replPrompt
	}

	return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}

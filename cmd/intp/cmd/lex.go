// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command that prints the token stream of a source file
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/lexer"
	"github.com/msto63/intp/foundation/intp/token"
	"github.com/msto63/intp/foundation/utils/filex"
	"github.com/msto63/intp/foundation/utils/stringx"
)

var lexMaxLiteral int

var lexCmd = &cobra.Command{
	Use:   "lex [file|-]",
	Short: "Print the tokens of a source file",
	Long: `Prints one line per token: position, kind and literal.

Without a file, or with "-", the source is read from standard input.
The listing ends with the EOF token.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().IntVar(&lexMaxLiteral, "max-literal", 40, "truncate literals longer than this (0 = no limit)")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	illegal := 0
	for _, tok := range lexer.Tokenize(source) {
		literal := strconv.Quote(tok.Literal)
		if lexMaxLiteral > 0 {
			literal = stringx.Truncate(literal, lexMaxLiteral)
		}
		fmt.Fprintf(out, "%s%s%s\n",
			stringx.PadRight(tok.Pos.String(), 10, ' '),
			stringx.PadRight(tok.Kind.String(), 10, ' '),
			literal)
		if tok.Kind == token.ILLEGAL {
			illegal++
		}
	}

	if illegal > 0 {
		logger.Debug("Illegal tokens found", intplog.Fields{
			"source":  sourceName(args),
			"illegal": illegal,
		})
	}
	return nil
}

// readSource reads the file named by args, or standard input
func readSource(cmd *cobra.Command, args []string) (string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	source, err := filex.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		code := intperror.CodeIOError
		if path != "" && path != filex.Stdin && !filex.Exists(path) {
			code = intperror.CodeNotFound
		}
		return "", intperror.Wrap(err, "failed to read source").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("source", sourceName(args))
	}
	return source, nil
}

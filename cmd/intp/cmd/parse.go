// ============================================================================
// intp - Monkey Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command that parses a source file and prints the program
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/ast"
	"github.com/msto63/intp/foundation/intp/parser"
)

var (
	parseFormat string
	parseTrace  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a source file and print the program",
	Long: `Parses a source file and prints the resulting program.

Formats:
  text   canonical source with explicit grouping
  tree   indented node outline
  json   node structure as JSON
  yaml   node structure as YAML

Diagnostics are written to standard error. The exit status is 1 when
the parser reported any.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, tree, json or yaml")
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "log grammar rule entry and exit")
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "text", "tree", "json", "yaml":
	default:
		return intperror.New(fmt.Sprintf("unknown output format: %s", parseFormat)).
			WithCode(intperror.CodeInvalidInput).
			WithDetail("format", parseFormat)
	}

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	opts := parser.Options{
		Logger:         logger,
		Trace:          appConfig.Parser.Trace || parseTrace,
		MaxInputLength: appConfig.Parser.MaxInputLength,
	}
	if parseTrace {
		opts.Logger = logger.WithLevel(intplog.LevelTrace)
	}

	result := parser.Parse(source, opts)

	if err := writeProgram(cmd.OutOrStdout(), result.Program, parseFormat); err != nil {
		return intperror.Wrap(err, "failed to write output").
			WithCode(intperror.CodeIOError).
			WithOperation("cmd.parse")
	}

	if !result.HasErrors() {
		return nil
	}

	name := sourceName(args)
	for _, d := range result.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, d.Error())
	}
	for _, incomplete := range ast.Validate(result.Program) {
		logger.Debug("Incomplete node", intplog.Err(incomplete))
	}
	return result.Err()
}

// writeProgram renders program in the given format
func writeProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case "tree":
		_, err := io.WriteString(w, ast.TreeString(program))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ast.Dump(program))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, program.String())
		return err
	}
}

// File: repl.go
// Title: Line REPL
// Description: Read-eval-print loop over plain streams. Each line is lexed
//              and parsed on its own and the result printed according to
//              the current mode.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.1.0: Token and AST modes
// - 2026-10-19 v0.2.0: Session logging, :mode and :help commands

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/msto63/intp/foundation/core/config"
	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
	"github.com/msto63/intp/foundation/intp/parser"
)

// DefaultPrompt is printed before every line
const DefaultPrompt = ">> "

// maxLineLength bounds a single input line
const maxLineLength = 4 << 20

// Options configures a REPL session
type Options struct {
	Prompt string
	Mode   string
	Parser parser.Options
	Logger *intplog.Logger
}

// Start runs the REPL until in is exhausted or the user enters :quit
func Start(in io.Reader, out io.Writer, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeAST
	}
	if !ValidMode(opts.Mode) {
		return intperror.New(fmt.Sprintf("unknown REPL mode: %s", opts.Mode)).
			WithCode(intperror.CodeInvalidInput).
			WithOperation("repl.Start").
			WithDetail("mode", opts.Mode)
	}
	if opts.Logger == nil {
		opts.Logger = intplog.GetDefault()
	}

	logger := opts.Logger.WithName("repl").WithSessionID(uuid.New().String())
	opts.Parser.Logger = logger
	logger.Info("Session started", intplog.Field("mode", opts.Mode))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	mode := opts.Mode
	lines := 0

	for {
		fmt.Fprint(out, opts.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			quit, msg := command(trimmed, &mode)
			fmt.Fprint(out, msg)
			if quit {
				break
			}
			continue
		}

		lines++
		fmt.Fprint(out, Eval(line, mode, opts.Parser))
	}

	if err := scanner.Err(); err != nil {
		logger.ErrorWithErr("Reading input failed", err)
		return intperror.Wrap(err, "failed to read REPL input").
			WithCode(intperror.CodeIOError).
			WithOperation("repl.Start")
	}

	logger.Info("Session ended", intplog.Field("lines", lines))
	return nil
}

// command handles a colon command and reports whether the session ends
func command(input string, mode *string) (bool, string) {
	fields := strings.Fields(input)

	switch fields[0] {
	case ":quit", ":q":
		return true, ""
	case ":help":
		return false, helpText
	case ":mode":
		if len(fields) == 1 {
			return false, fmt.Sprintf("mode: %s\n", *mode)
		}
		if !ValidMode(fields[1]) {
			return false, fmt.Sprintf("unknown mode %q, expected one of %s\n", fields[1], strings.Join(Modes, ", "))
		}
		*mode = fields[1]
		return false, fmt.Sprintf("mode: %s\n", *mode)
	default:
		return false, fmt.Sprintf("unknown command %s, try :help\n", fields[0])
	}
}

const helpText = `commands:
  :mode [tokens|ast|both]  show or change the output mode
  :help                    show this help
  :quit                    leave the REPL
`

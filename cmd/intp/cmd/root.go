package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/intp/foundation/core/config"
	intperror "github.com/msto63/intp/foundation/core/error"
	intplog "github.com/msto63/intp/foundation/core/log"
)

var (
	cfgFile string
	verbose bool

	// set by loadConfig before any command runs
	appConfig *config.Config
	logger    *intplog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intp",
	Short: "intp - Monkey language lexer and parser",
	Long: `intp tokenizes and parses programs of the Monkey language.

Commands:
  repl     - line based REPL (tokens, AST or both)
  tui      - full-screen REPL
  lex      - print the tokens of a file
  parse    - print the parsed program of a file`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./intp.toml or $INTP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration and sets up logging
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	appConfig = loaded
	logger = loaded.Log.Logger(cmd.ErrOrStderr(), "intp")
	if verbose && logger.GetLevel() > intplog.LevelDebug {
		logger = logger.WithLevel(intplog.LevelDebug)
	}
	intplog.SetDefault(logger)

	logger.Debug("Configuration loaded", intplog.Fields{
		"mode":   loaded.REPL.Mode,
		"config": cfgFile,
	})
	return nil
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}

// sourceName names the input in messages
func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>"
	}
	return args[0]
}

func invalidModeError(mode string) error {
	return intperror.New(fmt.Sprintf("unknown mode: %s", mode)).
		WithCode(intperror.CodeInvalidInput).
		WithDetail("mode", mode)
}

// File: config.go
// Title: Interpreter Front End Configuration
// Description: Typed configuration for the REPLs and command line tools.
//              Loads TOML or YAML files, fills in defaults and applies
//              environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-18 v0.1.0: Typed config with TOML support
// - 2026-10-19 v0.2.0: YAML, environment overrides, LoadOrDefault

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	intperror "github.com/msto63/intp/foundation/core/error"
)

// Format identifies the encoding of a configuration file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// REPL modes
const (
	ModeTokens = "tokens"
	ModeAST    = "ast"
	ModeBoth   = "both"
)

// Environment variables that override file settings
const (
	EnvConfig    = "INTP_CONFIG"
	EnvPrompt    = "INTP_PROMPT"
	EnvMode      = "INTP_MODE"
	EnvLogLevel  = "INTP_LOG_LEVEL"
	EnvLogFormat = "INTP_LOG_FORMAT"
)

// Config holds all settings of the intp tools
type Config struct {
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// REPLConfig configures the line REPL and the terminal UI
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Mode        string `toml:"mode" yaml:"mode"`
	Color       bool   `toml:"color" yaml:"color"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// ParserConfig configures the parser
type ParserConfig struct {
	MaxInputLength int  `toml:"max_input_length" yaml:"max_input_length"`
	Trace          bool `toml:"trace" yaml:"trace"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		REPL: REPLConfig{Color: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path. The format is chosen by
// extension. Environment overrides are applied after the file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := intperror.CodeIOError
		if os.IsNotExist(err) {
			code = intperror.CodeNotFound
		}
		return nil, intperror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := LoadFromString(string(data), format)
	if err != nil {
		return nil, intperror.Wrap(err, fmt.Sprintf("failed to load config file %s", path)).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromString parses configuration content in the given format and
// fills in defaults. Environment overrides are not applied.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := &Config{
		REPL: REPLConfig{Color: true},
	}

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(content, cfg)
	case FormatYAML:
		err = yaml.Unmarshal([]byte(content), cfg)
	default:
		return nil, intperror.New(fmt.Sprintf("unsupported config format: %s", format)).
			WithCode(intperror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", string(format))
	}
	if err != nil {
		return nil, intperror.Wrap(err, fmt.Sprintf("failed to parse %s config", format)).
			WithCode(intperror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", string(format))
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadOrDefault loads path if it is set, otherwise the file named by
// INTP_CONFIG, otherwise the first file found in the standard locations.
// Without any file the defaults are returned. Environment overrides are
// applied in every case.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		found, err := FindConfigFile(DefaultDiscoveryOptions())
		if err != nil && !intperror.HasCode(err, intperror.CodeNotFound) {
			return nil, err
		}
		path = found
	}
	if path == "" {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return Load(path)
}

// applyDefaults fills zero values with defaults
func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = ModeAST
	}
	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 500
	}
	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = "~/.intp/history.json"
	}
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 1 << 20
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// applyEnv overrides settings from environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrompt); v != "" {
		c.REPL.Prompt = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.REPL.Mode = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
}

// HistoryPath returns the history file with a leading ~ expanded.
// An empty string disables history persistence.
func (r REPLConfig) HistoryPath() string {
	path := os.ExpandEnv(r.HistoryFile)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// detectFormat picks the format from the file extension
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", intperror.New(fmt.Sprintf("unsupported config file extension: %s", strconv.Quote(filepath.Ext(path)))).
			WithCode(intperror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
}

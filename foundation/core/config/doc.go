// Package config loads the settings of the intp command line tools.
//
// Settings are read from a TOML or YAML file, chosen by extension:
//
//	[repl]
//	prompt = ">> "
//	mode = "both"          # tokens, ast or both
//	history_size = 500
//	history_file = "~/.intp/history.json"
//
//	[parser]
//	max_input_length = 1048576
//	trace = false
//
//	[log]
//	level = "warn"
//	format = "text"
//
// Missing values get defaults. The variables INTP_PROMPT, INTP_MODE,
// INTP_LOG_LEVEL and INTP_LOG_FORMAT override the file, and INTP_CONFIG
// names the file when no path is given:
//
//	cfg, err := config.LoadOrDefault(flagPath)
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//	logger := cfg.Log.Logger(os.Stderr, "intp")
package config

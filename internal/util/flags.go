package util

import (
	"flag"

	"photo-slideshow/internal/config"
)

var (
	// ConfigPath points at a YAML config file. Empty means search the defaults.
	ConfigPath *string

	// Workers caps concurrent jobs; -1 keeps the configured value.
	Workers *int

	// Summary is a path for the JSON run summary; empty keeps the configured value.
	Summary *string

	// LogLevel and LogFormat override the logging section when set.
	LogLevel  *string
	LogFormat *string
)

func init() {
	registerFlags()
}

func registerFlags() {
	ConfigPath = flag.String("config", "", "Path to a YAML config file. Defaults to $SLIDESHOW_CONFIG or ./slideshow.yaml.")
	Workers = flag.Int("workers", -1, "Maximum concurrent jobs. 0 runs one worker per input; -1 keeps the configured value.")
	Summary = flag.String("summary", "", "Write a JSON run summary to this path.")
	LogLevel = flag.String("log-level", "", "Log level: debug, info, warn, error.")
	LogFormat = flag.String("log-format", "", "Log format: console or json.")
}

// Parse parses the command line.
func Parse() {
	flag.Parse()
}

// Apply copies explicitly set flag values over cfg.
func Apply(cfg *config.Config) {
	if *Workers >= 0 {
		cfg.Workers = *Workers
	}
	if *Summary != "" {
		cfg.Output.Summary = *Summary
	}
	if *LogLevel != "" {
		cfg.Logging.Level = *LogLevel
	}
	if *LogFormat != "" {
		cfg.Logging.Format = *LogFormat
	}
}

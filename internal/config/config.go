// Package config loads slideshow settings from built-in defaults, an optional
// YAML file, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"photo-slideshow/internal/sequence"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"slideshow.yaml",
	"slideshow.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "SLIDESHOW_CONFIG"

// Config is the full runtime configuration.
type Config struct {
	// Inputs is the default batch processed when no path is given on the command line.
	Inputs []string `koanf:"inputs"`
	// Workers caps concurrent jobs. 0 runs one worker per input.
	Workers  int            `koanf:"workers"`
	Sequence SequenceConfig `koanf:"sequence"`
	Output   OutputConfig   `koanf:"output"`
	Tags     TagsConfig     `koanf:"tags"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type SequenceConfig struct {
	HorizontalWindow    int `koanf:"horizontal_window"`
	VerticalOuterWindow int `koanf:"vertical_outer_window"`
	VerticalInnerWindow int `koanf:"vertical_inner_window"`
	ProgressEvery       int `koanf:"progress_every"`
}

// Windows converts the search bounds to the sequencer's type.
func (s SequenceConfig) Windows() sequence.Windows {
	return sequence.Windows{
		Horizontal:    s.HorizontalWindow,
		VerticalOuter: s.VerticalOuterWindow,
		VerticalInner: s.VerticalInnerWindow,
	}
}

type OutputConfig struct {
	// InputMarker is replaced (first occurrence only) by ResultMarker to
	// derive the output path from an input path.
	InputMarker  string `koanf:"input_marker"`
	ResultMarker string `koanf:"result_marker"`
	// Summary is an optional path for a JSON run summary.
	Summary string `koanf:"summary"`
}

type TagsConfig struct {
	Stem bool `koanf:"stem"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	w := sequence.DefaultWindows()
	return &Config{
		Inputs: []string{
			"data/a_example.txt",
			"data/b_lovely_landscapes.txt",
			"data/c_memorable_moments.txt",
			"data/d_pet_pictures.txt",
			"data/e_shiny_selfies.txt",
		},
		Workers: 0,
		Sequence: SequenceConfig{
			HorizontalWindow:    w.Horizontal,
			VerticalOuterWindow: w.VerticalOuter,
			VerticalInnerWindow: w.VerticalInner,
			ProgressEvery:       sequence.DefaultProgressEvery,
		},
		Output: OutputConfig{
			InputMarker:  "txt",
			ResultMarker: "result",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return *defaultConfig()
}

// Load layers defaults, the config file, and the environment. path may be
// empty, in which case the file is located via SLIDESHOW_CONFIG or
// DefaultConfigPaths; a missing default file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitInputs(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// splitInputs turns a comma separated SLIDESHOW_INPUTS value into a list.
func splitInputs(k *koanf.Koanf) error {
	strVal, ok := k.Get("inputs").(string)
	if !ok {
		return nil
	}
	var inputs []string
	for _, p := range strings.Split(strVal, ",") {
		if p = strings.TrimSpace(p); p != "" {
			inputs = append(inputs, p)
		}
	}
	if err := k.Set("inputs", inputs); err != nil {
		return fmt.Errorf("failed to set inputs: %w", err)
	}
	return nil
}

var envMappings = map[string]string{
	"slideshow_inputs":                "inputs",
	"slideshow_workers":               "workers",
	"slideshow_horizontal_window":     "sequence.horizontal_window",
	"slideshow_vertical_outer_window": "sequence.vertical_outer_window",
	"slideshow_vertical_inner_window": "sequence.vertical_inner_window",
	"slideshow_progress_every":        "sequence.progress_every",
	"slideshow_input_marker":          "output.input_marker",
	"slideshow_result_marker":         "output.result_marker",
	"slideshow_summary":               "output.summary",
	"slideshow_stem_tags":             "tags.stem",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps known environment variables to config keys. Unknown
// variables map to "" and are dropped by koanf.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Validate checks the configuration for values the runner cannot work with.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return fmt.Errorf("at least one input is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if err := c.Sequence.Windows().Validate(); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	if c.Sequence.ProgressEvery < 2 {
		return fmt.Errorf("sequence.progress_every must be at least 2, got %d", c.Sequence.ProgressEvery)
	}
	if c.Output.InputMarker == "" {
		return fmt.Errorf("output.input_marker must not be empty")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

package util

import (
	"flag"
	"os"
	"testing"

	"photo-slideshow/internal/config"
)

func TestFlags_ParseAndApply(t *testing.T) {
	// Store original os.Args and restore it afterwards.
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tests := []struct {
		name          string
		args          []string
		expectedCfg   string
		expectedWork  int
		expectedSum   string
		expectedLevel string
		expectedArgs  []string
	}{
		{
			name:          "default values",
			args:          []string{"cmd"},
			expectedCfg:   "",
			expectedWork:  0,
			expectedSum:   "",
			expectedLevel: "info",
		},
		{
			name:          "custom values",
			args:          []string{"cmd", "-config", "/tmp/s.yaml", "-workers", "3", "-summary", "run.json", "-log-level", "debug", "data/b.txt"},
			expectedCfg:   "/tmp/s.yaml",
			expectedWork:  3,
			expectedSum:   "run.json",
			expectedLevel: "debug",
			expectedArgs:  []string{"data/b.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Fresh command line so flags can be redefined and reparsed.
			flag.CommandLine = flag.NewFlagSet(tt.args[0], flag.PanicOnError)
			registerFlags()
			os.Args = tt.args
			Parse()

			if *ConfigPath != tt.expectedCfg {
				t.Errorf("ConfigPath: expected %q, got %q", tt.expectedCfg, *ConfigPath)
			}

			cfg := config.Default()
			Apply(&cfg)
			if cfg.Workers != tt.expectedWork {
				t.Errorf("Workers: expected %d, got %d", tt.expectedWork, cfg.Workers)
			}
			if cfg.Output.Summary != tt.expectedSum {
				t.Errorf("Summary: expected %q, got %q", tt.expectedSum, cfg.Output.Summary)
			}
			if cfg.Logging.Level != tt.expectedLevel {
				t.Errorf("LogLevel: expected %q, got %q", tt.expectedLevel, cfg.Logging.Level)
			}
			if len(flag.Args()) != len(tt.expectedArgs) {
				t.Errorf("Args: expected %v, got %v", tt.expectedArgs, flag.Args())
			}
		})
	}
}

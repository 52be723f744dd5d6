// Package config loads mazebench settings from defaults, an optional YAML
// file and MAZELAB_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/harness"
	"github.com/katalvlaran/mazelab/internal/logger"
	"github.com/katalvlaran/mazelab/maze"
)

// ErrInvalid is returned by Validate; the message lists every problem.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full mazebench configuration.
type Config struct {
	// Seed for the maze generator; 0 picks a time-based seed.
	Seed        int64         `koanf:"seed"`
	Probability int           `koanf:"probability"`
	Backend     string        `koanf:"backend"`
	Suites      SuitesConfig  `koanf:"suites"`
	Report      ReportConfig  `koanf:"report"`
	Log         LogConfig     `koanf:"log"`
	Metrics     MetricsConfig `koanf:"metrics"`
}

// SuitesConfig holds one size sweep per suite.
type SuitesConfig struct {
	HasPath SuiteConfig `koanf:"haspath"`
	Nearest SuiteConfig `koanf:"nearest"`
	Longest SuiteConfig `koanf:"longest"`
}

// SuiteConfig is an inclusive size sweep. Advanced is read for the longest
// suite only.
type SuiteConfig struct {
	Enabled  bool `koanf:"enabled"`
	MinSize  int  `koanf:"min_size"`
	MaxSize  int  `koanf:"max_size"`
	Step     int  `koanf:"step"`
	Advanced bool `koanf:"advanced"`
}

type ReportConfig struct {
	MaxPrint          int  `koanf:"max_print"`
	PrintOnSuccess    bool `koanf:"print_on_success"`
	PrintOnFailure    bool `koanf:"print_on_failure"`
	PrintOnUnknown    bool `koanf:"print_on_unknown"`
	SuppressOnSuccess bool `koanf:"suppress_on_success"`
}

type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus textfile written after a run.
type MetricsConfig struct {
	// Textfile is the output path; empty disables the export.
	Textfile  string `koanf:"textfile"`
	Namespace string `koanf:"namespace"`
}

// Validate checks every field and reports all problems at once. Empty log
// settings are filled with their defaults.
func (c *Config) Validate() error {
	var errs []string

	if c.Probability < maze.MinProbability || c.Probability > 100 {
		errs = append(errs, fmt.Sprintf("probability must be within [%d, 100], got %d", maze.MinProbability, c.Probability))
	}
	if _, err := graph.ParseBackend(c.Backend); err != nil {
		errs = append(errs, fmt.Sprintf("backend must be one of: list, matrix, got %q", c.Backend))
	}

	suites := []struct {
		name string
		sc   SuiteConfig
		min  int
	}{
		{"haspath", c.Suites.HasPath, 8},
		{"nearest", c.Suites.Nearest, 8},
		{"longest", c.Suites.Longest, 4},
	}
	for _, s := range suites {
		if !s.sc.Enabled {
			continue
		}
		if s.sc.MinSize < s.min {
			errs = append(errs, fmt.Sprintf("suites.%s.min_size must be at least %d, got %d", s.name, s.min, s.sc.MinSize))
		}
		if s.sc.MaxSize < s.sc.MinSize {
			errs = append(errs, fmt.Sprintf("suites.%s.max_size must not be below min_size, got %d", s.name, s.sc.MaxSize))
		}
		if s.sc.Step < 1 {
			errs = append(errs, fmt.Sprintf("suites.%s.step must be positive, got %d", s.name, s.sc.Step))
		}
	}

	if c.Report.MaxPrint < 0 {
		errs = append(errs, "report.max_print must be non-negative")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	case "file":
		if c.Log.FilePath == "" {
			errs = append(errs, "log.file_path is required when log.output is file")
		}
	default:
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}

	if len(errs) > 0 {
		return errors.Wrap(ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// Harness converts the suite and report settings for harness.NewRunner.
func (c *Config) Harness() (harness.Config, error) {
	backend, err := graph.ParseBackend(c.Backend)
	if err != nil {
		return harness.Config{}, errors.Wrap(err, "config: backend")
	}
	suite := func(s SuiteConfig) harness.SuiteConfig {
		return harness.SuiteConfig{Enabled: s.Enabled, MinSize: s.MinSize, MaxSize: s.MaxSize, Step: s.Step}
	}
	return harness.Config{
		HasPath:  suite(c.Suites.HasPath),
		Nearest:  suite(c.Suites.Nearest),
		Longest:  suite(c.Suites.Longest),
		Advanced: c.Suites.Longest.Advanced,
		Backend:  backend,
		Report: harness.ReportConfig{
			MaxPrint:          c.Report.MaxPrint,
			PrintOnSuccess:    c.Report.PrintOnSuccess,
			PrintOnFailure:    c.Report.PrintOnFailure,
			PrintOnUnknown:    c.Report.PrintOnUnknown,
			SuppressOnSuccess: c.Report.SuppressOnSuccess,
		},
	}, nil
}

// Logger converts the log settings for logger.New.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:      strings.ToLower(c.Log.Level),
		Format:     c.Log.Format,
		Output:     c.Log.Output,
		FilePath:   c.Log.FilePath,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}

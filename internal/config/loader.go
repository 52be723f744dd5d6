package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "MAZELAB_"

// defaults is the lowest configuration layer.
var defaults = map[string]any{
	"seed":        0,
	"probability": 70,
	"backend":     "list",

	"suites.haspath.enabled":  true,
	"suites.haspath.min_size": 8,
	"suites.haspath.max_size": 60,
	"suites.haspath.step":     5,

	"suites.nearest.enabled":  true,
	"suites.nearest.min_size": 8,
	"suites.nearest.max_size": 60,
	"suites.nearest.step":     3,

	"suites.longest.enabled":  true,
	"suites.longest.min_size": 4,
	"suites.longest.max_size": 9,
	"suites.longest.step":     1,
	"suites.longest.advanced": true,

	"report.max_print":           45,
	"report.print_on_success":    false,
	"report.print_on_failure":    true,
	"report.print_on_unknown":    false,
	"report.suppress_on_success": false,

	"log.level":       "info",
	"log.format":      "text",
	"log.output":      "stderr",
	"log.file_path":   "",
	"log.max_size":    100,
	"log.max_backups": 3,
	"log.max_age":     7,
	"log.compress":    true,

	"metrics.textfile":  "",
	"metrics.namespace": "mazelab",
}

// envKeys maps lower-cased env suffixes (suites_haspath_min_size) to
// config keys (suites.haspath.min_size). Keys with underscores in their
// names cannot be recovered by replacing every "_" with ".".
var envKeys = func() map[string]string {
	m := make(map[string]string, len(defaults))
	for k := range defaults {
		m[strings.ReplaceAll(k, ".", "_")] = k
	}
	return m
}()

// Loader layers configuration sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader returns a Loader searching mazelab.yaml and
// config/mazelab.yaml with the MAZELAB_ env prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"mazelab.yaml", "config/mazelab.yaml"},
		envPrefix:   envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithConfigPaths replaces the search paths used when no explicit file is
// given to Load.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix replaces the MAZELAB_ prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// Load builds the configuration with increasing priority: defaults, the
// YAML file, then environment variables. An explicit path must exist;
// otherwise the first existing search path is used, if any.
func (l *Loader) Load(path string) (*Config, error) {
	// 1. Defaults
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "config: load defaults")
	}

	// 2. Config file
	if err := l.loadFile(path); err != nil {
		return nil, err
	}

	// 3. Environment
	if err := l.loadEnv(); err != nil {
		return nil, errors.Wrap(err, "config: load env")
	}

	// 4. Unmarshal
	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadFile(path string) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return errors.Wrapf(err, "config: file %s", path)
		}
		return errors.Wrapf(l.k.Load(file.Provider(path), yaml.Parser()), "config: parse %s", path)
	}
	for _, p := range l.configPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return errors.Wrapf(l.k.Load(file.Provider(abs), yaml.Parser()), "config: parse %s", abs)
		}
	}
	return nil
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeys[key]; ok {
			return mapped, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}

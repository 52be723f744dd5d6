package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/graph"
	"github.com/katalvlaran/mazelab/harness"
)

func load(t *testing.T, path string) (*Config, error) {
	t.Helper()
	return NewLoader(WithConfigPaths()).Load(path)
}

func TestLoad_DefaultsMatchHarness(t *testing.T) {
	cfg, err := load(t, "")
	require.NoError(t, err)

	hc, err := cfg.Harness()
	require.NoError(t, err)
	assert.Equal(t, harness.DefaultConfig(), hc)
	assert.Equal(t, 70, cfg.Probability)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "mazelab", cfg.Metrics.Namespace)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazelab.yaml")
	yml := `
seed: 42
backend: matrix
suites:
  haspath:
    max_size: 20
  longest:
    enabled: false
report:
  print_on_success: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("MAZELAB_SUITES_HASPATH_MIN_SIZE", "12")
	t.Setenv("MAZELAB_REPORT_MAX_PRINT", "30")
	t.Setenv("MAZELAB_SEED", "7")

	cfg, err := load(t, path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed, "env overrides file")
	assert.Equal(t, "matrix", cfg.Backend)
	assert.Equal(t, 12, cfg.Suites.HasPath.MinSize)
	assert.Equal(t, 20, cfg.Suites.HasPath.MaxSize)
	assert.Equal(t, 5, cfg.Suites.HasPath.Step, "untouched keys keep defaults")
	assert.False(t, cfg.Suites.Longest.Enabled)
	assert.True(t, cfg.Report.PrintOnSuccess)
	assert.Equal(t, 30, cfg.Report.MaxPrint)
	assert.Equal(t, "debug", cfg.Logger().Level)

	hc, err := cfg.Harness()
	require.NoError(t, err)
	assert.Equal(t, graph.Matrix, hc.Backend)
}

func TestLoad_SearchPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "found.yaml")
	require.NoError(t, os.WriteFile(path, []byte("probability: 55\n"), 0o600))

	cfg, err := NewLoader(WithConfigPaths(filepath.Join(dir, "missing.yaml"), path)).Load("")
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Probability)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("suites: [unclosed\n"), 0o600))
	_, err = load(t, bad)
	require.Error(t, err)

	t.Setenv("MAZELAB_PROBABILITY", "101")
	_, err = load(t, "")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "probability must be within [50, 100], got 101")
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("MB_BACKEND", "matrix")
	cfg, err := NewLoader(WithConfigPaths(), WithEnvPrefix("MB_")).Load("")
	require.NoError(t, err)
	assert.Equal(t, "matrix", cfg.Backend)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Probability: 70,
			Backend:     "list",
			Suites: SuitesConfig{
				HasPath: SuiteConfig{Enabled: true, MinSize: 8, MaxSize: 20, Step: 4},
				Longest: SuiteConfig{Enabled: true, MinSize: 4, MaxSize: 6, Step: 1},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad backend", func(c *Config) { c.Backend = "csr" }, "backend must be one of"},
		{"negative probability", func(c *Config) { c.Probability = -1 }, "probability"},
		{"zero probability", func(c *Config) { c.Probability = 0 }, "probability must be within [50, 100], got 0"},
		{"probability below half", func(c *Config) { c.Probability = 49 }, "probability must be within [50, 100], got 49"},
		{"probability at half", func(c *Config) { c.Probability = 50 }, ""},
		{"small haspath", func(c *Config) { c.Suites.HasPath.MinSize = 7 }, "suites.haspath.min_size must be at least 8"},
		{"inverted longest", func(c *Config) { c.Suites.Longest.MaxSize = 3 }, "suites.longest.max_size"},
		{"zero step", func(c *Config) { c.Suites.HasPath.Step = 0 }, "suites.haspath.step"},
		{"disabled suite ignored", func(c *Config) { c.Suites.Nearest = SuiteConfig{MinSize: 1} }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"file without path", func(c *Config) { c.Log.Output = "file" }, "log.file_path is required"},
		{"bad output", func(c *Config) { c.Log.Output = "syslog" }, "log.output"},
		{"negative max print", func(c *Config) { c.Report.MaxPrint = -1 }, "report.max_print"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateFillsLogDefaults(t *testing.T) {
	cfg := Config{Backend: "matrix", Probability: 70}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

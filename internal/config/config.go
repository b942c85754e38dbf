package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/radiotap/internal/logging"
	"github.com/danmuck/radiotap/internal/observability"
)

// DumpConfig drives radiotapdump.
type DumpConfig struct {
	Workers     int
	StopOnError bool
	Verbose     bool
	// MetricsFile, when set, receives the decode metrics in the prometheus
	// text format once all captures are processed.
	MetricsFile string
	Log         LogConfig
}

type LogConfig struct {
	Level     string
	Timestamp bool
	NoColor   bool
	JSON      bool
}

type fileConfig struct {
	Workers     int           `toml:"workers"`
	StopOnError bool          `toml:"stop_on_error"`
	Verbose     bool          `toml:"verbose"`
	MetricsFile string        `toml:"metrics_file"`
	Log         fileLogConfig `toml:"log"`
}

type fileLogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
	JSON      bool   `toml:"json"`
}

func DefaultDumpConfig() DumpConfig {
	return DumpConfig{
		Workers: runtime.GOMAXPROCS(0),
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// LoadDumpConfig overlays the keys defined in the TOML file at path on
// DefaultDumpConfig. Unknown keys are rejected.
func LoadDumpConfig(path string) (DumpConfig, error) {
	cfg := DefaultDumpConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DumpConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return DumpConfig{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("stop_on_error") {
		cfg.StopOnError = raw.StopOnError
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}
	if meta.IsDefined("log", "json") {
		cfg.Log.JSON = raw.Log.JSON
	}

	if err := ValidateDumpConfig(cfg); err != nil {
		return DumpConfig{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func ValidateDumpConfig(cfg DumpConfig) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", cfg.Log.Level)
	}
	return nil
}

// Observability converts the log section for observability.InitLogger.
// The level must already be validated.
func (c LogConfig) Observability() observability.LogConfig {
	lvl, _ := logging.ParseLevel(c.Level)
	return observability.LogConfig{
		Level:     lvl,
		Timestamp: c.Timestamp,
		NoColor:   c.NoColor,
		Bypass:    c.JSON,
	}
}

package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/danmuck/radiotap/internal/observability"
	"github.com/rs/zerolog"
)

const AppName = "radiotap"

const (
	EnvLogLevel     = "RADIOTAP_LOG_LEVEL"
	EnvLogTimestamp = "RADIOTAP_LOG_TIMESTAMP"
	EnvLogNoColor   = "RADIOTAP_LOG_NOCOLOR"
	EnvLogBypass    = "RADIOTAP_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	ConfigureWith(DefaultConfig(profile))
}

// ConfigureWith installs cfg, after environment overrides, as the process
// logger. Only the first call in a process has any effect.
func ConfigureWith(cfg observability.LogConfig) {
	configureOnce.Do(func() {
		applyEnvOverrides(&cfg)
		observability.InitLogger(AppName, cfg)
	})
}

func DefaultConfig(profile Profile) observability.LogConfig {
	switch profile {
	case ProfileTest:
		return observability.LogConfig{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return observability.LogConfig{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *observability.LogConfig) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
		cfg.Bypass = v
	}
}

// ParseLevel accepts zerolog level names plus a few aliases. The second
// result is false for empty or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "":
		return zerolog.InfoLevel, false
	case "diagnostics":
		return zerolog.TraceLevel, true
	case "warning":
		return zerolog.WarnLevel, true
	case "off", "none", "disable", "inactive":
		return zerolog.Disabled, true
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, false
	}
	return lvl, true
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

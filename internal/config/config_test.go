package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radiotapdump.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDumpConfigDefaults(t *testing.T) {
	cfg, err := LoadDumpConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultDumpConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Fatalf("unexpected default workers: %d", cfg.Workers)
	}
}

func TestLoadDumpConfigOverrides(t *testing.T) {
	cfg, err := LoadDumpConfig(writeConfig(t, `
workers = 2
stop_on_error = true
verbose = true
metrics_file = " /var/lib/node_exporter/radiotap.prom "

[log]
level = "debug"
timestamp = false
json = true
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DumpConfig{
		Workers:     2,
		StopOnError: true,
		Verbose:     true,
		MetricsFile: "/var/lib/node_exporter/radiotap.prom",
		Log:         LogConfig{Level: "debug", Timestamp: false, JSON: true},
	}
	if cfg != want {
		t.Fatalf("unexpected config: got %+v want %+v", cfg, want)
	}
	obs := cfg.Log.Observability()
	if obs.Level != zerolog.DebugLevel || !obs.Bypass || obs.Timestamp {
		t.Fatalf("unexpected observability config: %+v", obs)
	}
}

func TestLoadDumpConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"workers":     "workers = 0\n",
		"log level":   "[log]\nlevel = \"loud\"\n",
		"unknown key": "worker = 3\n",
		"syntax":      "workers = \n",
	}
	for name, body := range cases {
		if _, err := LoadDumpConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadDumpConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteTemplateLoadsAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radiotapdump.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadDumpConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Workers != 4 || cfg.Verbose || cfg.MetricsFile != "" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected template config: %+v", cfg)
	}
	err = WriteTemplate(path, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
}

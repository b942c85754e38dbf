package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/danmuck/radiotap/internal/capture"
	"github.com/danmuck/radiotap/internal/config"
	"github.com/danmuck/radiotap/internal/logging"
	"github.com/danmuck/radiotap/internal/observability"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	verbose     bool
	workers     int
	stopOnError bool
	metricsFile string
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "radiotapdump [flags] FILE...",
		Short:         "Decode RadioTap headers from pcap and pcapng captures",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logging.ConfigureWith(cfg.Log.Observability())
			return run(cmd.Context(), cfg, args)
		},
	}

	bindFlags(cmd, &opts)
	return cmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "radiotapdump TOML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every decoded header")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent header decodes (default from config)")
	flags.BoolVar(&opts.stopOnError, "stop-on-error", false, "stop a file at its first undecodable header")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write decode metrics in prometheus text format to this path")
}

// resolveConfig layers explicitly set flags over the config file, or over
// the defaults when no file is given.
func resolveConfig(cmd *cobra.Command, opts options) (config.DumpConfig, error) {
	cfg := config.DefaultDumpConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadDumpConfig(opts.configPath)
		if err != nil {
			return config.DumpConfig{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("stop-on-error") {
		cfg.StopOnError = opts.stopOnError
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if err := config.ValidateDumpConfig(cfg); err != nil {
		return config.DumpConfig{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// run decodes files in order and stops at the first failing one. The
// metrics file is written either way, so partial runs are still reported.
func run(ctx context.Context, cfg config.DumpConfig, files []string) error {
	var err error
	for _, path := range files {
		if err = dumpFile(ctx, cfg, path); err != nil {
			break
		}
	}
	if cfg.MetricsFile == "" {
		return err
	}
	if werr := observability.WriteMetrics(cfg.MetricsFile); werr != nil {
		return errors.Join(err, werr)
	}
	log.Debug().Str("path", cfg.MetricsFile).Msg("metrics written")
	return err
}

func dumpFile(ctx context.Context, cfg config.DumpConfig, path string) error {
	src, err := capture.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	opts := capture.Options{Workers: cfg.Workers, StopOnError: cfg.StopOnError}
	stats, err := capture.DecodeAll(ctx, src, opts, func(res capture.Result) error {
		if res.Err != nil {
			log.Warn().
				Str("file", path).
				Int("packet", res.Index).
				Str("outcome", capture.Outcome(res.Err)).
				Err(res.Err).
				Msg("undecodable radiotap header")
			return nil
		}
		if cfg.Verbose {
			headerEvent(log.Info(), res).Str("file", path).Msg("radiotap header")
		}
		return nil
	})

	log.Info().
		Str("file", path).
		Str("format", string(src.Format())).
		Int("packets", stats.Packets).
		Int("decoded", stats.Decoded).
		Int("failed", stats.Failed).
		Dur("elapsed", stats.Elapsed).
		Msg("decoding finished")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/rolf/seedsweep/pkg/sweep"
	util_log "github.com/rolf/seedsweep/pkg/util/log"
)

// sweepOptions are the flags shared by every command that runs a sweep. Unset
// flags leave the configured value alone.
type sweepOptions struct {
	Alphas    *string `help:"Comma separated alpha values to sweep."`
	Trials    *int    `help:"Number of trials per alpha."`
	Steps     *int    `help:"Number of t values per trial."`
	Algorithm *string `help:"Hash algorithm used to derive seeds."`
	Modulus   *uint64 `help:"Modulus applied to the digest."`
	Workers   *int    `help:"Number of goroutines generating seeds."`
	Bloom     bool    `help:"Find collision candidates with a bloom filter before counting."`
}

func (o *sweepOptions) apply(cfg *config) error {
	if o.Alphas != nil {
		alphas, err := sweep.ParseAlphas(*o.Alphas)
		if err != nil {
			return err
		}
		cfg.Sweep.Alphas = alphas
	}
	if o.Trials != nil {
		cfg.Sweep.Trials = *o.Trials
	}
	if o.Steps != nil {
		cfg.Sweep.Steps = *o.Steps
	}
	if o.Algorithm != nil {
		cfg.Sweep.Algorithm = *o.Algorithm
	}
	if o.Modulus != nil {
		cfg.Sweep.Modulus = *o.Modulus
	}
	if o.Workers != nil {
		cfg.Report.Workers = *o.Workers
	}
	if o.Bloom {
		cfg.Report.Bloom = true
	}
	return nil
}

// setup loads and validates the configuration and initialises the logger.
func setup(opts *globalOptions, o *sweepOptions) (*config, log.Logger, error) {
	logger, err := util_log.InitLogger(opts.LogFormat, opts.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg, err := loadConfig(opts.ConfigFile, opts.ConfigExpandEnv)
	if err != nil {
		return nil, nil, err
	}
	if err := o.apply(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.ConfigFile != "" {
		level.Debug(logger).Log("msg", "loaded config file", "path", opts.ConfigFile)
	}
	return cfg, logger, nil
}

// signalContext is cancelled on SIGINT or SIGTERM so an interrupted sweep
// returns instead of running to the end.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

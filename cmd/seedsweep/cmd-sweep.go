package main

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rolf/seedsweep/pkg/collision"
	"github.com/rolf/seedsweep/pkg/sweep"
)

type sweepCmd struct {
	sweepOptions

	Output          string `short:"o" default:"plain" enum:"plain,table,json" help:"Output format (plain, table, json)."`
	MetricsTextfile string `name:"metrics-textfile" help:"Write sweep metrics to this file in the Prometheus text format."`
}

func (cmd *sweepCmd) Run(opts *globalOptions) error {
	cfg, logger, err := setup(opts, &cmd.sweepOptions)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	gen, err := cfg.Sweep.Generator()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	r := collision.New(cfg.Report, gen, logger, collision.NewMetrics(reg))

	report, err := r.Run(ctx, sweep.New(cfg.Sweep))
	if err != nil {
		return err
	}

	if err := writeReport(opts.Stdout, report, cmd.Output); err != nil {
		return errors.Wrap(err, "failed to write report")
	}

	if cmd.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(cmd.MetricsTextfile, reg); err != nil {
			return errors.Wrapf(err, "failed to write metrics to %s", cmd.MetricsTextfile)
		}
		level.Info(logger).Log("msg", "wrote metrics", "path", cmd.MetricsTextfile)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rolf/seedsweep/pkg/collision"
	"github.com/rolf/seedsweep/pkg/seed"
	"github.com/rolf/seedsweep/pkg/sweep"
)

type compareCmd struct {
	sweepOptions

	Algorithms []string `default:"sha256,sha1,md5,sha512,xxhash,fnv1a" help:"Hash algorithms to compare."`
}

func (cmd *compareCmd) Run(opts *globalOptions) error {
	cfg, logger, err := setup(opts, &cmd.sweepOptions)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	s := sweep.New(cfg.Sweep)
	t := table.NewWriter()
	t.SetOutputMirror(opts.Stdout)
	t.AppendHeader(table.Row{"algorithm", "crypto", "seeds", "distinct", "colliding", "expected", "duration"})

	for _, name := range cmd.Algorithms {
		a, err := seed.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		gen, err := seed.New(a, cfg.Sweep.Modulus)
		if err != nil {
			return err
		}

		report, err := collision.New(cfg.Report, gen, logger, nil).Run(ctx, s)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}

		t.AppendRow(table.Row{
			a,
			a.Cryptographic(),
			humanize.Comma(int64(report.Generated)),
			humanize.Comma(int64(report.Distinct)),
			len(report.Collisions),
			fmt.Sprintf("%.2f", report.Expected),
			report.Duration.Round(time.Millisecond),
		})
	}

	t.SetCaption("modulus %d", cfg.Sweep.Modulus)
	t.Render()
	return nil
}

package main

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/rolf/seedsweep/pkg/collision"
	"github.com/rolf/seedsweep/pkg/sweep"
)

type verifyCmd struct {
	sweepOptions
}

func (cmd *verifyCmd) Run(opts *globalOptions) error {
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
	s := sweep.New(cfg.Sweep)

	var reports [2]*collision.Report
	for i := range reports {
		reports[i], err = collision.New(cfg.Report, gen, logger, nil).Run(ctx, s)
		if err != nil {
			return err
		}
	}

	if !reports[0].Equal(reports[1]) {
		return errors.Errorf("reports differ between runs (-first +second):\n%s",
			cmp.Diff(reports[0].Collisions, reports[1].Collisions))
	}

	_, err = fmt.Fprintf(opts.Stdout, "ok: %d colliding values identical across runs\n", len(reports[0].Collisions))
	return err
}

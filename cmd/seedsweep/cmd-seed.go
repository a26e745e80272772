package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rolf/seedsweep/pkg/seed"
)

type seedCmd struct {
	Alpha float64 `arg:"" help:"alpha value"`
	Trial int     `arg:"" help:"trial index"`
	T     int     `arg:"" help:"t index"`

	Algorithm string `default:"sha256" help:"Hash algorithm used to derive the seed."`
	Modulus   uint64 `default:"4294967295" help:"Modulus applied to the digest."`
}

func (cmd *seedCmd) Run(opts *globalOptions) error {
	a, err := seed.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		return err
	}
	g, err := seed.New(a, cmd.Modulus)
	if err != nil {
		return err
	}

	key := seed.Key(cmd.Alpha, cmd.Trial, cmd.T)
	_, err = fmt.Fprintf(opts.Stdout, "Key       : %s\nAlgorithm : %s\nDigest    : %s\nSeed      : %d\n",
		key, a, hex.EncodeToString(g.Digest(key)), g.SeedKey(key))
	return err
}

package main

import (
	"bytes"
	"flag"
	"io"
	"os"

	"github.com/drone/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/rolf/seedsweep/pkg/collision"
	"github.com/rolf/seedsweep/pkg/sweep"
)

// config is the layout of the file passed with --config.file.
type config struct {
	Sweep  sweep.Config     `yaml:"sweep"`
	Report collision.Config `yaml:"report"`
}

func (c *config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.Sweep.RegisterFlagsAndApplyDefaults(prefix, f)
	c.Report.RegisterFlagsAndApplyDefaults(prefix, f)
}

func (c *config) Validate() error {
	return multierr.Combine(c.Sweep.Validate(), c.Report.Validate())
}

// loadConfig returns the defaults overlaid with the config file, if any.
func loadConfig(configFile string, expandEnv bool) (*config, error) {
	cfg := &config{}
	cfg.RegisterFlagsAndApplyDefaults("", &flag.FlagSet{})

	if configFile == "" {
		return cfg, nil
	}

	buff, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read configFile %s", configFile)
	}

	if expandEnv {
		s, err := envsubst.EvalEnv(string(buff))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to expand env vars from configFile %s", configFile)
		}
		buff = []byte(s)
	}

	dec := yaml.NewDecoder(bytes.NewReader(buff))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "failed to parse configFile %s", configFile)
	}

	return cfg, nil
}

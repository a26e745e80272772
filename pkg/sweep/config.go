package sweep

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/rolf/seedsweep/pkg/seed"
	"github.com/rolf/seedsweep/pkg/util"
)

const (
	DefaultTrials = 5
	DefaultSteps  = 25000
)

// DefaultAlphas is the alpha set of the reference run.
var DefaultAlphas = []float64{0.0, 0.25, 0.5, 0.75, 1.0}

// Config describes the parameter grid and how seeds are derived from it.
type Config struct {
	Alphas    []float64 `yaml:"alphas"`
	Trials    int       `yaml:"trials"`
	Steps     int       `yaml:"steps"`
	Algorithm string    `yaml:"algorithm"`
	Modulus   uint64    `yaml:"modulus"`
}

// RegisterFlagsAndApplyDefaults registers the flags.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	cfg.Alphas = append([]float64(nil), DefaultAlphas...)

	f.IntVar(&cfg.Trials, util.PrefixConfig(prefix, "trials"), DefaultTrials, "Number of trials per alpha.")
	f.IntVar(&cfg.Steps, util.PrefixConfig(prefix, "steps"), DefaultSteps, "Number of t values per trial.")
	f.StringVar(&cfg.Algorithm, util.PrefixConfig(prefix, "algorithm"), string(seed.DefaultAlgorithm), "Hash algorithm used to derive seeds.")
	f.Uint64Var(&cfg.Modulus, util.PrefixConfig(prefix, "modulus"), seed.DefaultModulus, "Modulus applied to the digest.")
}

// Validate reports every problem with the config at once.
func (cfg *Config) Validate() error {
	var errs error

	if len(cfg.Alphas) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("at least one alpha is required"))
	}
	seen := make(map[string]float64, len(cfg.Alphas))
	for _, a := range cfg.Alphas {
		s := seed.FormatAlpha(a)
		if prev, ok := seen[s]; ok {
			errs = multierr.Append(errs, fmt.Errorf("alphas %v and %v both format as %q", prev, a, s))
			continue
		}
		seen[s] = a
	}

	if cfg.Trials < 0 {
		errs = multierr.Append(errs, fmt.Errorf("trials must not be negative, got %d", cfg.Trials))
	}
	if cfg.Steps < 0 {
		errs = multierr.Append(errs, fmt.Errorf("steps must not be negative, got %d", cfg.Steps))
	}
	if _, err := seed.ParseAlgorithm(cfg.Algorithm); err != nil {
		errs = multierr.Append(errs, err)
	}
	if cfg.Modulus < 2 {
		errs = multierr.Append(errs, fmt.Errorf("modulus must be at least 2, got %d", cfg.Modulus))
	}

	return errs
}

// Generator builds the seed generator described by the config.
func (cfg *Config) Generator() (*seed.Generator, error) {
	a, err := seed.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return seed.New(a, cfg.Modulus)
}

// ParseAlphas parses a comma separated list of floats.
func ParseAlphas(s string) ([]float64, error) {
	var alphas []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid alpha %q: %w", part, err)
		}
		alphas = append(alphas, a)
	}
	return alphas, nil
}

package collision

import (
	"flag"
	"fmt"

	"github.com/rolf/seedsweep/pkg/util"
)

type Config struct {
	Workers            int     `yaml:"workers"`
	Bloom              bool    `yaml:"bloom"`
	BloomFalsePositive float64 `yaml:"bloom_false_positive"`
}

// RegisterFlagsAndApplyDefaults registers the flags.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.Workers, util.PrefixConfig(prefix, "workers"), 1, "Number of goroutines generating seeds.")
	f.BoolVar(&cfg.Bloom, util.PrefixConfig(prefix, "bloom"), false, "Find collision candidates with a bloom filter before counting.")
	f.Float64Var(&cfg.BloomFalsePositive, util.PrefixConfig(prefix, "bloom-false-positive"), .01, "Bloom filter false positive rate.")
}

func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Bloom && (cfg.BloomFalsePositive <= 0 || cfg.BloomFalsePositive >= 1) {
		return fmt.Errorf("bloom false positive rate must be in (0, 1), got %v", cfg.BloomFalsePositive)
	}
	return nil
}

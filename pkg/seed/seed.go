// Package seed derives deterministic random seeds from experiment parameters.
package seed

import (
	"fmt"
	"math/bits"
)

// DefaultModulus is 2^32-1, not 2^32. Seeds of earlier runs were reduced with
// this value.
const DefaultModulus uint64 = 1<<32 - 1

// Generator turns parameter triples into seeds.
type Generator struct {
	algorithm Algorithm
	digest    digestFunc
	modulus   uint64
}

// New returns a Generator hashing with algorithm and reducing modulo modulus.
func New(algorithm Algorithm, modulus uint64) (*Generator, error) {
	d, ok := digests[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if modulus < 2 {
		return nil, fmt.Errorf("modulus must be at least 2, got %d", modulus)
	}

	return &Generator{
		algorithm: algorithm,
		digest:    d,
		modulus:   modulus,
	}, nil
}

// NewDefault returns a SHA-256 generator reducing modulo DefaultModulus.
func NewDefault() *Generator {
	g, err := New(DefaultAlgorithm, DefaultModulus)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Generator) Algorithm() Algorithm { return g.algorithm }
func (g *Generator) Modulus() uint64      { return g.modulus }

// Digest hashes the UTF-8 bytes of key.
func (g *Generator) Digest(key string) []byte {
	return g.digest(key)
}

// Seed returns the seed for the triple (alpha, trial, t).
func (g *Generator) Seed(alpha float64, trial, t int) uint64 {
	return g.SeedKey(Key(alpha, trial, t))
}

// SeedKey returns the seed for an identifying string built by Key.
func (g *Generator) SeedKey(key string) uint64 {
	return Reduce(g.digest(key), g.modulus)
}

// Reduce interprets digest as a big-endian unsigned integer and returns it
// modulo m. m must be non-zero.
func Reduce(digest []byte, m uint64) uint64 {
	var r uint64
	for _, b := range digest {
		// r < m, so (r<<8 | b) fits in 128 bits split as hi:lo.
		r = bits.Rem64(r>>56, r<<8|uint64(b), m)
	}
	return r
}

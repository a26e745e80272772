package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rolf/seedsweep/pkg/seed"
)

func TestExpectedCollisions(t *testing.T) {
	tests := []struct {
		name     string
		n, m     uint64
		expected float64
	}{
		{"reference run", 625_000, seed.DefaultModulus, 45.47},
		{"saturated", 1000, 100, 99.95},
		{"two into two", 2, 2, 0.5},
		{"single bucket", 10, 1, 1},
		{"one draw", 1, 100, 0},
		{"no buckets", 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, ExpectedCollisions(tc.n, tc.m), 0.01)
		})
	}
}

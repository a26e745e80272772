package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixConfig(t *testing.T) {
	require.Equal(t, "trials", PrefixConfig("", "trials"))
	require.Equal(t, "sweep.trials", PrefixConfig("sweep", "trials"))
}

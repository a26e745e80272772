package collision

import (
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/rolf/seedsweep/pkg/seed"
	"github.com/rolf/seedsweep/pkg/sweep"
	"github.com/rolf/seedsweep/pkg/util/test"
)

func referenceSweep() sweep.Sweep {
	return sweep.Sweep{
		Alphas: sweep.DefaultAlphas,
		Trials: sweep.DefaultTrials,
		Steps:  sweep.DefaultSteps,
	}
}

func runReport(t *testing.T, cfg Config, gen *seed.Generator, s sweep.Sweep) *Report {
	t.Helper()

	r := New(cfg, gen, test.NewTestingLogger(t), nil)
	report, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	return report
}

func TestReferenceRun(t *testing.T) {
	report := runReport(t, Config{Workers: 1}, seed.NewDefault(), referenceSweep())

	require.Equal(t, "sha256", report.Algorithm)
	require.Equal(t, []string{"0.0", "0.25", "0.5", "0.75", "1.0"}, report.Alphas)
	require.Equal(t, seed.DefaultModulus, report.Modulus)
	require.Equal(t, uint64(625_000), report.Generated)
	require.Equal(t, uint64(624_943), report.Distinct)
	require.Len(t, report.Collisions, 57)
	require.Equal(t, []uint64{246499439, 435880023, 444368026, 489160284, 489350155}, report.Seeds()[:5])
	for _, c := range report.Collisions {
		require.Equal(t, uint32(2), c.Count)
	}
	require.InDelta(t, 45.47, report.Expected, 0.01)
}

func TestReportMatchesTable(t *testing.T) {
	gen, err := seed.New(seed.SHA256, 5000)
	require.NoError(t, err)
	s := sweep.Sweep{Alphas: []float64{0, 0.5}, Trials: 2, Steps: 1000}

	tbl := NewTable()
	require.NoError(t, s.Each(context.Background(), func(tr sweep.Triple) error {
		tbl.Add(gen.Seed(tr.Alpha, tr.Trial, tr.T))
		return nil
	}))

	report := runReport(t, Config{Workers: 1}, gen, s)
	require.Equal(t, tbl.Collisions(), report.Collisions)
	require.Equal(t, uint64(tbl.Len()), report.Distinct)
	require.NotEmpty(t, report.Collisions)
}

func TestRunTwiceIsIdentical(t *testing.T) {
	gen, err := seed.New(seed.MD5, 1<<20)
	require.NoError(t, err)
	s := sweep.Sweep{Alphas: []float64{0, 0.25, 0.5}, Trials: 3, Steps: 2000}

	first := runReport(t, Config{Workers: 1}, gen, s)
	second := runReport(t, Config{Workers: 1}, gen, s)

	require.True(t, first.Equal(second))
	if diff := cmp.Diff(first.Collisions, second.Collisions); diff != "" {
		t.Fatalf("reports differ (-first +second):\n%s", diff)
	}
}

func TestWorkersAndBloomMatchSingleWorker(t *testing.T) {
	gen, err := seed.New(seed.SHA256, 1<<22)
	require.NoError(t, err)
	s := sweep.Sweep{Alphas: []float64{0, 0.25, 0.5, 0.75, 1}, Trials: 5, Steps: 2000}

	want := runReport(t, Config{Workers: 1}, gen, s)
	require.NotEmpty(t, want.Collisions)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"workers", Config{Workers: 4}},
		{"more workers than rows", Config{Workers: 64}},
		{"bloom", Config{Workers: 1, Bloom: true, BloomFalsePositive: 0.01}},
		{"bloom with workers", Config{Workers: 3, Bloom: true, BloomFalsePositive: 0.2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runReport(t, tc.cfg, gen, s)
			if diff := cmp.Diff(want.Collisions, got.Collisions); diff != "" {
				t.Fatalf("collisions differ (-want +got):\n%s", diff)
			}
			require.Equal(t, want.Distinct, got.Distinct)
		})
	}
}

func TestLastStepIsCounted(t *testing.T) {
	// with two buckets every generated value ends up in a collision, so the
	// counts add up to the sweep size only if t=24999 was included
	gen, err := seed.New(seed.SHA256, 2)
	require.NoError(t, err)
	s := sweep.Sweep{Alphas: []float64{0}, Trials: 1, Steps: 25000}

	report := runReport(t, Config{Workers: 1}, gen, s)
	require.Equal(t, uint64(25000), report.Generated)

	var total uint32
	for _, c := range report.Collisions {
		total += c.Count
	}
	require.Equal(t, uint32(25000), total)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(Config{Workers: 2}, seed.NewDefault(), log.NewNopLogger(), nil)
	_, err := r.Run(ctx, referenceSweep())
	require.ErrorIs(t, err, context.Canceled)
}

func TestEmptySweep(t *testing.T) {
	report := runReport(t, Config{Workers: 4, Bloom: true, BloomFalsePositive: 0.01}, seed.NewDefault(), sweep.Sweep{})
	require.Zero(t, report.Generated)
	require.Empty(t, report.Collisions)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	gen, err := seed.New(seed.XXHash, 100)
	require.NoError(t, err)

	r := New(Config{Workers: 1}, gen, log.NewNopLogger(), NewMetrics(reg))
	report, err := r.Run(context.Background(), sweep.Sweep{Alphas: []float64{0}, Trials: 1, Steps: 500})
	require.NoError(t, err)

	generated, err := test.GetCounterVecValue(r.metrics.seedsGenerated, "xxhash")
	require.NoError(t, err)
	require.Equal(t, 500.0, generated)

	colliding, err := test.GetGaugeVecValue(r.metrics.collidingSeeds, "xxhash")
	require.NoError(t, err)
	require.Equal(t, float64(len(report.Collisions)), colliding)

	require.Equal(t, float64(report.Distinct), testutil.ToFloat64(r.metrics.distinctSeeds.WithLabelValues("xxhash")))

	n, err := testutil.GatherAndCount(reg, "seedsweep_seeds_generated_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

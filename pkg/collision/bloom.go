package collision

import (
	"context"
	"encoding/binary"

	"github.com/go-kit/log/level"
	"github.com/willf/bloom"

	"github.com/rolf/seedsweep/pkg/sweep"
)

// candidates runs every seed of s through a bloom filter and returns the
// values that tested positive before being added. A bloom filter has no false
// negatives, so the second occurrence of any recurring value is always caught.
func (r *Reporter) candidates(ctx context.Context, s sweep.Sweep) (map[uint64]struct{}, error) {
	filter := bloom.NewWithEstimates(uint(max(s.Size(), 1)), r.cfg.BloomFalsePositive)
	found := map[uint64]struct{}{}
	buf := make([]byte, 8)

	err := s.Each(ctx, func(tr sweep.Triple) error {
		binary.BigEndian.PutUint64(buf, r.gen.SeedKey(tr.Key()))
		if filter.Test(buf) {
			found[binary.BigEndian.Uint64(buf)] = struct{}{}
			return nil
		}
		filter.Add(buf)
		return nil
	})
	if err != nil {
		return nil, err
	}

	level.Debug(r.logger).Log("msg", "bloom pass done", "candidates", len(found), "bits", filter.Cap(), "hashes", filter.K())
	return found, nil
}

// countWithBloom counts only the values flagged by the bloom pass. Counts of
// recurring values are exact; everything else is dropped.
func (r *Reporter) countWithBloom(ctx context.Context, s sweep.Sweep) (*Table, error) {
	found, err := r.candidates(ctx, s)
	if err != nil {
		return nil, err
	}

	return r.count(ctx, s, func(v uint64) bool {
		_, ok := found[v]
		return ok
	})
}

package collision

import "time"

// Report is the outcome of one sweep. Alphas hold the text used in the keys.
type Report struct {
	Algorithm string        `json:"algorithm"`
	Modulus   uint64        `json:"modulus"`
	Alphas    []string      `json:"alphas"`
	Trials    int           `json:"trials"`
	Steps     int           `json:"steps"`
	Generated uint64        `json:"generated"`
	Distinct  uint64        `json:"distinct"`
	Expected  float64       `json:"expected_colliding"`
	Duration  time.Duration `json:"duration_ns"`

	Collisions []Collision `json:"collisions"`
}

// Seeds returns the colliding values, one per value.
func (r *Report) Seeds() []uint64 {
	out := make([]uint64, len(r.Collisions))
	for i, c := range r.Collisions {
		out[i] = c.Seed
	}
	return out
}

// Equal reports whether both reports flag the same values with the same
// counts.
func (r *Report) Equal(o *Report) bool {
	if len(r.Collisions) != len(o.Collisions) {
		return false
	}
	for i := range r.Collisions {
		if r.Collisions[i] != o.Collisions[i] {
			return false
		}
	}
	return true
}

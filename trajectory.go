package gammaprime

import (
	"github.com/benbjohnson/immutable"
)

// Step records one iteration of the accumulator.
type Step struct {
	N      int     // Index (1-based)
	Factor float64 // Factor(cfg, N)
	Delta  float64 // Ceiling * Factor
	Value  float64 // Accumulator after adding Delta
}

// Trajectory applies the recurrence for indices 1..m and records every step.
// Negative m yields an empty list. The last step's Value equals Accumulate(cfg, m).
func Trajectory(cfg Config, m int) *immutable.List[Step] {
	builder := immutable.NewListBuilder[Step]()
	if m < 0 {
		return builder.List()
	}

	acc := cfg.Base
	for n := 1; n <= m; n++ {
		f := Factor(cfg, n)
		d := cfg.Ceiling * f
		acc += d
		builder.Append(Step{N: n, Factor: f, Delta: d, Value: acc})
	}

	return builder.List()
}

// FinalValue returns the accumulator at the end of a trajectory,
// or base when the trajectory is empty.
func FinalValue(steps *immutable.List[Step], base float64) float64 {
	if steps.Len() == 0 {
		return base
	}
	return steps.Get(steps.Len() - 1).Value
}

// IsDecaying reports whether every delta is strictly smaller than the one before.
// Used to check the decay of the factor sequence.
func IsDecaying(steps *immutable.List[Step]) bool {
	prev := 0.0
	it := steps.Iterator()
	for !it.Done() {
		i, s := it.Next()
		if s.Delta <= 0 {
			return false
		}
		if i > 0 && s.Delta >= prev {
			return false
		}
		prev = s.Delta
	}
	return true
}

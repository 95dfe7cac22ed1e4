package gammaprime

import (
	"testing"

	"gotest.tools/v3/assert"
)

// TestTrajectory_MatchesAccumulate verifies the recorded steps agree with the loop.
func TestTrajectory_MatchesAccumulate(t *testing.T) {
	cfg := DefaultConfig()
	acfg := DefaultAssertionConfig()

	for _, m := range []int{1, 2, 3, 10, 100} {
		AssertTrajectoryConsistent(t, cfg, m, acfg)
	}
}

// TestTrajectory_Empty covers M=0 and negative M.
func TestTrajectory_Empty(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Trajectory(cfg, 0).Len(), 0)
	assert.Equal(t, Trajectory(cfg, -4).Len(), 0)
	assert.Equal(t, FinalValue(Trajectory(cfg, 0), cfg.Base), 2.0)
	assert.Assert(t, IsDecaying(Trajectory(cfg, 0)))
}

// TestTrajectory_Steps inspects the first steps of the series.
func TestTrajectory_Steps(t *testing.T) {
	cfg := DefaultConfig()
	steps := Trajectory(cfg, 3)

	for i := 0; i < steps.Len(); i++ {
		s := steps.Get(i)
		assert.Equal(t, s.N, i+1)
		assert.Equal(t, s.Factor, Factor(cfg, s.N))
		assert.Equal(t, s.Delta, Delta(cfg, s.N))
		t.Logf("  n=%d factor=%.8f delta=%.8f value=%.8f", s.N, s.Factor, s.Delta, s.Value)
	}

	assert.Equal(t, FinalValue(steps, cfg.Base), Accumulate(cfg, 3))
}

// TestTrajectory_Persistent verifies appending to a returned list leaves it intact.
func TestTrajectory_Persistent(t *testing.T) {
	cfg := DefaultConfig()
	steps := Trajectory(cfg, 2)

	extended := steps.Append(Step{N: 3})
	assert.Equal(t, steps.Len(), 2)
	assert.Equal(t, extended.Len(), 3)
	assert.Assert(t, IsDecaying(steps))
	assert.Assert(t, !IsDecaying(extended))
}

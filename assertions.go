package gammaprime

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains the ranges checked by the Assert helpers.
type AssertionConfig struct {
	// Largest index checked for factor decay
	MaxN int

	// Largest M checked for monotone predictions
	MaxM int

	// Absolute tolerance when comparing accumulators
	Tolerance float64
}

// DefaultAssertionConfig returns the ranges used by the package tests.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxN:      50,
		MaxM:      200,
		Tolerance: 1e-9,
	}
}

// AssertFactorDecay verifies Factor is strictly positive and strictly
// decreasing for n in [1, MaxN].
//
// Mathematical property:
//
//	Γ(ln n + 1 + Offset) increases in n once the argument passes ~1.4616
func AssertFactorDecay(t *testing.T, cfg Config, acfg AssertionConfig) {
	t.Helper()

	var failures []string
	prev := math.Inf(1)
	for n := 1; n <= acfg.MaxN; n++ {
		f := Factor(cfg, n)
		if f <= 0 {
			failures = append(failures, fmt.Sprintf("  n=%d: factor=%g (not positive)", n, f))
		}
		if f >= prev {
			failures = append(failures, fmt.Sprintf("  n=%d: factor=%g >= previous %g", n, f, prev))
		}
		prev = f
	}

	if len(failures) > 0 {
		t.Errorf("Factor does not decay on [1, %d]:\n%v", acfg.MaxN, failures)
		return
	}

	t.Logf("✓ Factor decays on [1, %d]: %.6g → %.6g", acfg.MaxN, Factor(cfg, 1), prev)
}

// AssertMonotone verifies Recompute never decreases for M in [0, MaxM].
func AssertMonotone(t *testing.T, cfg Config, acfg AssertionConfig) {
	t.Helper()

	prevRounded := Recompute(cfg, 0)
	prevAcc := Accumulate(cfg, 0)
	for m := 1; m <= acfg.MaxM; m++ {
		acc := Accumulate(cfg, m)
		rounded := Recompute(cfg, m)
		if acc < prevAcc {
			t.Errorf("Accumulator decreased: M=%d→%d: %.12f → %.12f", m-1, m, prevAcc, acc)
		}
		if rounded < prevRounded {
			t.Errorf("Prediction decreased: M=%d→%d: %g → %g", m-1, m, prevRounded, rounded)
		}
		prevAcc, prevRounded = acc, rounded
	}

	t.Logf("✓ Monotone on [0, %d]: final accumulator %.12f (rounded %g)", acfg.MaxM, prevAcc, prevRounded)
}

// AssertPrediction verifies Recompute(cfg, m) equals want.
func AssertPrediction(t *testing.T, cfg Config, m int, want float64) {
	t.Helper()

	got := Recompute(cfg, m)
	if got != want {
		t.Errorf("Recompute(%d) = %g, want %g (accumulator %.12f)", m, got, want, Accumulate(cfg, m))
		return
	}

	t.Logf("✓ P_%d = %g", m+1, got)
}

// AssertTrajectoryConsistent verifies a recorded trajectory agrees with Accumulate.
func AssertTrajectoryConsistent(t *testing.T, cfg Config, m int, acfg AssertionConfig) {
	t.Helper()

	steps := Trajectory(cfg, m)
	if steps.Len() != m {
		t.Fatalf("Trajectory(%d) has %d steps", m, steps.Len())
	}

	want := Accumulate(cfg, m)
	got := FinalValue(steps, cfg.Base)
	if math.Abs(got-want) > acfg.Tolerance {
		t.Errorf("Trajectory final value %.15f, Accumulate %.15f", got, want)
	}

	if m > 0 && !IsDecaying(steps) {
		t.Errorf("Trajectory deltas are not strictly decreasing")
	}
}

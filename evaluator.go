package gammaprime

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Sentinel is returned by Recompute and Accumulate for a negative index.
const Sentinel = -1.0

// MaxIndex is the largest accepted M; indices are 32-bit like the input format.
const MaxIndex = math.MaxInt32

// ErrInvalidInput reports an unparseable or negative index.
var ErrInvalidInput = errors.New("invalid input")

// Config holds the constants of the recurrence.
// Build it once with DefaultConfig (or configs.Load) and pass it by value.
type Config struct {
	Ceiling     float64 // Multiplier applied to every factor
	Scaler      float64 // Numerator of the Gamma reciprocal
	Offset      int     // Added to the Gamma argument: Γ(ln n + 1 + Offset)
	Base        float64 // Initial accumulator value (P_1)
	FractalBase float64 // Reported in the status footer only
	WarnAbove   int     // Indices above this print an accuracy warning
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		Ceiling:     18.0,
		Scaler:      0.11212121212121212,
		Offset:      3,
		Base:        2.0,
		FractalBase: 7.0,
		WarnAbove:   2,
	}
}

// Validate reports every field that would make the recurrence meaningless.
func (c Config) Validate() error {
	var err error
	if math.IsNaN(c.Ceiling) || math.IsInf(c.Ceiling, 0) {
		err = multierr.Append(err, fmt.Errorf("ceiling must be finite, got %v", c.Ceiling))
	}
	if math.IsNaN(c.Scaler) || math.IsInf(c.Scaler, 0) || c.Scaler <= 0 {
		err = multierr.Append(err, fmt.Errorf("scaler must be finite and positive, got %v", c.Scaler))
	}
	if c.Offset < 0 {
		err = multierr.Append(err, fmt.Errorf("offset must be non-negative, got %d", c.Offset))
	}
	if math.IsNaN(c.Base) || math.IsInf(c.Base, 0) {
		err = multierr.Append(err, fmt.Errorf("base must be finite, got %v", c.Base))
	}
	if c.WarnAbove < 0 {
		err = multierr.Append(err, fmt.Errorf("warn threshold must be non-negative, got %d", c.WarnAbove))
	}
	return err
}

// Factor returns the Gamma decay factor for index n:
//
//	Scaler / Γ(ln n + 1 + Offset)
//
// Non-positive n and Gamma poles or overflow contribute 0.
func Factor(cfg Config, n int) float64 {
	if n <= 0 {
		return 0.0
	}

	arg := math.Log(float64(n)) + 1.0 + float64(cfg.Offset)
	g := math.Gamma(arg)
	if g == 0 || math.IsInf(g, 0) || math.IsNaN(g) {
		return 0.0
	}

	return cfg.Scaler * (1.0 / g)
}

// Delta is the amount added to the accumulator at index n.
func Delta(cfg Config, n int) float64 {
	return cfg.Ceiling * Factor(cfg, n)
}

// Accumulate returns the unrounded accumulator after indices 1..m.
// Negative m yields Sentinel.
func Accumulate(cfg Config, m int) float64 {
	if m < 0 {
		return Sentinel
	}

	acc := cfg.Base
	for n := 1; n <= m; n++ {
		acc += Delta(cfg, n)
	}

	return acc
}

// Recompute returns the predicted value P_{m+1}, rounded half away from zero.
// Negative m yields Sentinel; callers must check with IsSentinel.
func Recompute(cfg Config, m int) float64 {
	if m < 0 {
		return Sentinel
	}
	return math.Round(Accumulate(cfg, m))
}

// IsSentinel reports whether v is the failure value of Recompute.
func IsSentinel(v float64) bool {
	return v == Sentinel
}

// Prediction is one evaluated index, ready for display.
type Prediction struct {
	M      int     // Number of iterations
	Target int     // Index of the predicted value (M+1)
	Value  float64 // Rounded prediction
	Warn   bool    // M exceeds the accuracy threshold
}

// Predict evaluates index m. It returns ErrInvalidInput for negative m.
func Predict(cfg Config, m int) (Prediction, error) {
	if m < 0 {
		return Prediction{}, fmt.Errorf("index %d: %w", m, ErrInvalidInput)
	}

	return Prediction{
		M:      m,
		Target: m + 1,
		Value:  Recompute(cfg, m),
		Warn:   m > cfg.WarnAbove,
	}, nil
}

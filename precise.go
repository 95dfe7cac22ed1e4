package gammaprime

import (
	"fmt"

	"github.com/ericlagergren/decimal"
)

// precision is the decimal context used for high-precision accumulation.
var precision = decimal.Context128

// AccumulatePrecise sums the deltas for indices 1..m in 128-bit decimal
// arithmetic. Each delta is still computed in float64; only the running sum
// avoids binary rounding.
func AccumulatePrecise(cfg Config, m int) (*decimal.Big, error) {
	if m < 0 {
		return nil, fmt.Errorf("index %d: %w", m, ErrInvalidInput)
	}

	acc := new(decimal.Big).SetFloat64(cfg.Base)
	acc.Context = precision
	delta := new(decimal.Big)
	for n := 1; n <= m; n++ {
		delta.SetFloat64(Delta(cfg, n))
		precision.Add(acc, acc, delta)
	}

	return acc, nil
}

// RecomputePrecise is Recompute over the decimal accumulator.
// Ties round half away from zero, as math.Round does.
func RecomputePrecise(cfg Config, m int) (float64, error) {
	acc, err := AccumulatePrecise(cfg, m)
	if err != nil {
		return Sentinel, err
	}

	acc.Context.RoundingMode = decimal.ToNearestAway
	acc.Quantize(0)

	v, ok := acc.Float64()
	if !ok {
		return Sentinel, fmt.Errorf("precise value %s does not fit in float64", acc)
	}
	return v, nil
}

// PredictPrecise is Predict with the value taken from RecomputePrecise.
func PredictPrecise(cfg Config, m int) (Prediction, error) {
	v, err := RecomputePrecise(cfg, m)
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		M:      m,
		Target: m + 1,
		Value:  v,
		Warn:   m > cfg.WarnAbove,
	}, nil
}

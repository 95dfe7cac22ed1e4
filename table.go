package gammaprime

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxTableRows bounds the number of predictions a single Table call returns.
const MaxTableRows = 100_000

// TableConfig selects the range and evaluation mode of Table.
type TableConfig struct {
	From    int  // First M
	To      int  // Last M (inclusive)
	Workers int  // Concurrent evaluations (<= 0 means no limit)
	Precise bool // Round the decimal accumulator instead of the float one
}

// DefaultTableConfig returns M in [0, 10] on four workers.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		From:    0,
		To:      10,
		Workers: 4,
	}
}

// Table evaluates every index in [From, To] and returns the predictions in
// index order. Evaluations share nothing, so they run concurrently.
// Both bounds must lie in [0, MaxIndex] and the range may hold at most
// MaxTableRows indices.
func Table(ctx context.Context, cfg Config, tcfg TableConfig) ([]Prediction, error) {
	from, to := tcfg.From, tcfg.To
	if from < 0 || to < from || to > MaxIndex {
		return nil, fmt.Errorf("range [%d, %d]: %w", from, to, ErrInvalidInput)
	}
	if rows := to - from + 1; rows > MaxTableRows {
		return nil, fmt.Errorf("range [%d, %d] has %d rows, max %d: %w",
			from, to, rows, MaxTableRows, ErrInvalidInput)
	}

	predict := Predict
	if tcfg.Precise {
		predict = PredictPrecise
	}

	results := make([]Prediction, to-from+1)
	g, ctx := errgroup.WithContext(ctx)
	if tcfg.Workers > 0 {
		g.SetLimit(tcfg.Workers)
	}

	for m := from; m <= to; m++ {
		m := m // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := predict(cfg, m)
			if err != nil {
				return err
			}
			results[m-from] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

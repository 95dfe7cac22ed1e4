// Package gammaprime evaluates a Gamma-function decay series and reports it
// as a "predicted prime".
//
// # Overview
//
// Starting from a base value of 2 (P_1), each index n adds a shrinking
// contribution derived from the reciprocal of the Gamma function:
//
//	Factor(n)  = Scaler / Γ(ln n + 1 + Offset)
//	P_{M+1}    = round(Base + Σ_{n=1..M} Ceiling · Factor(n))
//
// With the reference constants (Ceiling 18, Scaler 0.1121…, Offset 3) the
// accumulator converges to about 2.8032: M ≤ 2 predicts 2 and every M ≥ 3
// predicts 3. The command prints a warning for M > 2 and the package keeps
// the formula as it is.
//
// # Quick Start
//
//	cfg := gammaprime.DefaultConfig()
//
//	v := gammaprime.Recompute(cfg, 2)
//	if gammaprime.IsSentinel(v) {
//	    // negative M
//	}
//
//	p, err := gammaprime.Predict(cfg, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("P_%d = %d\n", p.Target, int64(p.Value))
//
// # Inspecting the Series
//
// Trajectory records every iteration in a persistent list:
//
//	steps := gammaprime.Trajectory(cfg, 10)
//	it := steps.Iterator()
//	for !it.Done() {
//	    _, s := it.Next()
//	    fmt.Println(s.N, s.Delta, s.Value)
//	}
//
// Table evaluates a range of M concurrently, and AccumulatePrecise keeps
// the running sum in 128-bit decimal arithmetic.
//
// # Testing
//
//	func TestMyConstants(t *testing.T) {
//	    cfg := gammaprime.DefaultConfig()
//	    cfg.Ceiling = 20
//
//	    gammaprime.AssertFactorDecay(t, cfg, gammaprime.DefaultAssertionConfig())
//	    gammaprime.AssertMonotone(t, cfg, gammaprime.DefaultAssertionConfig())
//	}
package gammaprime

package gammaprime

import (
	"fmt"
	"io"
	"strconv"

	"github.com/benbjohnson/immutable"
)

// Report renders the command's text interface.
// Every method writes complete lines except Prompt, which leaves the cursor
// on the prompt line for the user's answer.
type Report struct {
	w   io.Writer
	cfg Config
	err error
}

// NewReport returns a Report writing to w.
func NewReport(w io.Writer, cfg Config) *Report {
	return &Report{w: w, cfg: cfg}
}

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Banner writes the title and status lines.
func (r *Report) Banner() {
	r.printf("--- FAPD Deterministic Engine (V3.0: Definitive Final Lock) ---\n")
	r.printf("IP Status: All local constant variables and the LGO integer offset are securely embedded.\n")
}

// Prompt asks for M.
func (r *Report) Prompt() {
	r.printf("\nEnter the constant M (e.g., M=2 retrieves Prime 5): ")
}

// Warning writes the accuracy warning if p is past the threshold.
func (r *Report) Warning(p Prediction) {
	if !p.Warn {
		return
	}
	r.printf("Warning: Accuracy is not guaranteed for M > %d without proprietary HDA integration.\n", r.cfg.WarnAbove)
}

// Summary writes the target index and the value truncated to an integer.
func (r *Report) Summary(p Prediction) {
	r.printf("\n--- Calculation Summary ---\n")
	r.printf("Target Index: P_%d\n", p.Target)
	r.printf("Calculated Prime (Rounded): %d\n", int64(p.Value))
}

// Footer writes the static status block.
func (r *Report) Footer() {
	r.printf("\n--- Expansion Ports Status (SPL Architecture) ---\n")
	r.printf("LGO Fractal Base (%s) : Confirmed\n", strconv.FormatFloat(r.cfg.FractalBase, 'g', 6, 64))
	r.printf("High-Precision HDA Link : Available\n")
	r.printf("------------------------------------------------\n")
}

// Result writes everything that follows a valid answer.
func (r *Report) Result(p Prediction) {
	r.Warning(p)
	r.Summary(p)
	r.Footer()
}

// Trace writes one row per step.
func (r *Report) Trace(steps *immutable.List[Step]) {
	r.printf("%-6s %-22s %-22s %s\n", "n", "factor", "delta", "value")
	it := steps.Iterator()
	for !it.Done() {
		_, s := it.Next()
		r.printf("%-6d %-22.16g %-22.16g %.16g\n", s.N, s.Factor, s.Delta, s.Value)
	}
}

// Table writes one row per prediction.
func (r *Report) Table(ps []Prediction) {
	r.printf("%-8s %-8s %s\n", "M", "target", "value")
	for _, p := range ps {
		mark := ""
		if p.Warn {
			mark = " *"
		}
		r.printf("%-8d P_%-6d %d%s\n", p.M, p.Target, int64(p.Value), mark)
	}
}

// Err returns the first write error, if any.
func (r *Report) Err() error {
	return r.err
}

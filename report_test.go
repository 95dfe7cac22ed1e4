package gammaprime

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const footer = `
--- Expansion Ports Status (SPL Architecture) ---
LGO Fractal Base (7) : Confirmed
High-Precision HDA Link : Available
------------------------------------------------
`

func TestReport_Result(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	r := NewReport(&buf, cfg)

	p, err := Predict(cfg, 2)
	assert.NilError(t, err)
	r.Result(p)
	assert.NilError(t, r.Err())

	want := "\n--- Calculation Summary ---\n" +
		"Target Index: P_3\n" +
		"Calculated Prime (Rounded): 2\n" +
		footer
	assert.Equal(t, buf.String(), want)
}

func TestReport_Warning(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	r := NewReport(&buf, cfg)

	p, err := Predict(cfg, 3)
	assert.NilError(t, err)
	r.Result(p)

	assert.Assert(t, strings.HasPrefix(buf.String(),
		"Warning: Accuracy is not guaranteed for M > 2 without proprietary HDA integration.\n"))
	assert.Assert(t, is.Contains(buf.String(), "Target Index: P_4\n"))
	assert.Assert(t, is.Contains(buf.String(), "Calculated Prime (Rounded): 3\n"))
}

func TestReport_BannerPrompt(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport(&buf, DefaultConfig())
	r.Banner()
	r.Prompt()

	want := "--- FAPD Deterministic Engine (V3.0: Definitive Final Lock) ---\n" +
		"IP Status: All local constant variables and the LGO integer offset are securely embedded.\n" +
		"\nEnter the constant M (e.g., M=2 retrieves Prime 5): "
	assert.Equal(t, buf.String(), want)
}

func TestReport_FractalBaseFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FractalBase = 7.25
	var buf bytes.Buffer
	NewReport(&buf, cfg).Footer()

	assert.Assert(t, is.Contains(buf.String(), "LGO Fractal Base (7.25) : Confirmed\n"))
}

func TestReport_TraceAndTable(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	r := NewReport(&buf, cfg)

	r.Trace(Trajectory(cfg, 2))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 3)
	assert.Assert(t, strings.HasPrefix(lines[1], "1 "))

	buf.Reset()
	r.Table([]Prediction{{M: 2, Target: 3, Value: 2}, {M: 3, Target: 4, Value: 3, Warn: true}})
	assert.Assert(t, is.Contains(buf.String(), "P_3"))
	assert.Assert(t, is.Contains(buf.String(), "3 *\n"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestReport_WriteError(t *testing.T) {
	r := NewReport(failWriter{}, DefaultConfig())
	r.Banner()
	r.Footer()
	assert.Error(t, r.Err(), "closed")
}

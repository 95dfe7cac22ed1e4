package gammaprime

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadIndex reads the first whitespace-delimited token from r and parses it
// as a non-negative 32-bit integer. Missing, malformed, out-of-range and
// negative tokens all wrap ErrInvalidInput.
func ReadIndex(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read index: %v: %w", err, ErrInvalidInput)
		}
		return 0, fmt.Errorf("read index: no token: %w", ErrInvalidInput)
	}

	tok := sc.Text()
	m, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse index %q: %v: %w", tok, err, ErrInvalidInput)
	}
	if m < 0 {
		return 0, fmt.Errorf("index %d is negative: %w", m, ErrInvalidInput)
	}

	return int(m), nil
}

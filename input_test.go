package gammaprime

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestReadIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"2\n", 2},
		{"  17  ", 17},
		{"\n\t5 9", 5},
		{"+3", 3},
		{"2147483647", 2147483647},
	}
	for _, tc := range cases {
		got, err := ReadIndex(strings.NewReader(tc.in))
		assert.NilError(t, err, "input %q", tc.in)
		assert.Equal(t, got, tc.want, "input %q", tc.in)
	}
}

func TestReadIndex_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"   \n",
		"abc",
		"-1",
		"1.5",
		"2147483648",
		"0x10",
	} {
		_, err := ReadIndex(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}
}

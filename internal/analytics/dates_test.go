package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2026-03-05")
	assert.True(t, ok)
	assert.Equal(t, "2026-03-05", d.Format(DateLayout))

	_, ok = ParseDate("05/03/2026")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"150", 150},
		{"50.5", 50.5},
		{" 80 ", 80},
		{"120 MAD", 120},
		{"-10", -10},
		{"12.5.7", 12.5},
		{"abc", 0},
		{"", 0},
		{".", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePrice(tc.in), "input %q", tc.in)
	}
}

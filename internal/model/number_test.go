package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"6.5", 6.5, true},
		{"6.5 inches", 6.5, true},
		{"  34\"", 34, true},
		{".75", 0.75, true},
		{"-2", -2, true},
		{"1e2 units", 100, true},
		{"7.", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"approx. 6", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1995", 1995, true},
		{"2000.5", 2000, true},
		{" 1987 (registered)", 1987, true},
		{"", 0, false},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

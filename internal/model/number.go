package model

import (
	"regexp"
	"strconv"
)

// Leading numeric prefixes, e.g. "6.5 inches" or "34\"".
var (
	leadingFloat = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	leadingInt   = regexp.MustCompile(`^\s*([+-]?\d+)`)
)

// ParseLeadingFloat reads the number at the start of s, ignoring any
// trailing text. ok is false when s does not start with a number.
func ParseLeadingFloat(s string) (v float64, ok bool) {
	m := leadingFloat.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseLeadingInt reads the integer at the start of s, ignoring any
// trailing text ("1995 (registered)" reads as 1995, "2000.5" as 2000).
func ParseLeadingInt(s string) (v int, ok bool) {
	m := leadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Package numbering formats and parses human-readable estimate numbers.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
)

const EstimatePrefix = "EST-"

var estimateNumberPattern = regexp.MustCompile(`EST-(\d+)`)

// Format renders n as EST-NNNN. Numbers wider than four digits are kept
// whole.
func Format(n int) string {
	return fmt.Sprintf("%s%04d", EstimatePrefix, n)
}

// Parse extracts the numeric suffix of an estimate number.
func Parse(s string) (int, bool) {
	m := estimateNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Next returns the sequence value that follows the given estimate number, or
// 1 when there is none or it cannot be parsed.
func Next(latest string) int {
	n, ok := Parse(latest)
	if !ok {
		return 1
	}
	return n + 1
}

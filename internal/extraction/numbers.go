package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// Numeric approximation constants. These reproduce the calibration the
// benchmark tiers were tuned against; changing them shifts percentile
// assignment downstream.
const (
	// plusSuffixBias is added to open-ended counts so "50+" reads as 60,
	// biasing percentile lookups upward for above-range answers.
	plusSuffixBias = 10

	// underDivisor halves "under N" answers: "under 20" reads as 10.
	underDivisor = 2
)

var (
	underPattern = regexp.MustCompile(`(?:under|less than|fewer than|below)\s+\$?(\d+)`)
	rangePattern = regexp.MustCompile(`(\d+)\s*(?:-|–|\bto\b)\s*(\d+)`)
	plusPattern  = regexp.MustCompile(`(\d+)\s*\+`)
	barePattern  = regexp.MustCompile(`\d+`)

	dollarPattern = regexp.MustCompile(`\$\s*([\d,]+(?:\.\d+)?)\s*([km])?|([\d,]+(?:\.\d+)?)\s*([km])\b`)
)

// ApproxCount parses a free-text count expression into a single integer.
// Patterns are tried in order; the first match wins:
//
//	"under 20"  -> 10   (N / underDivisor)
//	"25-50"     -> 37   (range midpoint)
//	"50+"       -> 60   (N + plusSuffixBias)
//	"about 40"  -> 40   (first bare number)
func ApproxCount(text string) (int, bool) {
	if m := underPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n / underDivisor, true
		}
	}
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return (lo + hi) / 2, true
		}
	}
	if m := plusPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n + plusSuffixBias, true
		}
	}
	if m := barePattern.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// ApproxDollars parses a dollar amount with optional k/m suffix:
// "$450,000" -> 450000, "650k" -> 650000, "$1.2m" -> 1200000.
// A match requires either a dollar sign or a magnitude suffix so that bare
// counts ("47 deals") are not misread as money.
func ApproxDollars(text string) (float64, bool) {
	m := dollarPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	num, suffix := m[1], m[2]
	if num == "" {
		num, suffix = m[3], m[4]
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch suffix {
	case "k":
		v *= 1_000
	case "m":
		v *= 1_000_000
	}
	return v, true
}

// containsAny reports whether text contains any of the given keywords.
func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

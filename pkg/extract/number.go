package extract

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalPattern matches the decimal literal forms accepted by JavaScript's
// Number(): optional sign, digits with optional fraction, optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber converts a segment the way JavaScript's Number() does and
// reports whether the result is a number (false means NaN).
func parseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isJSSpace)

	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return math.Inf(1), true
				}
				return 0, false
			}
			return float64(n), true
		}
	}

	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// isJSSpace reports whether r is white space or a line terminator in the
// JavaScript sense.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// canonicalIndex returns the element index a segment addresses, or -1 when
// the segment is not the canonical decimal form of a non-negative integer.
// "2" addresses element 2; "02", "2.0" and " 2" address nothing.
func canonicalIndex(s string) int {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return -1
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

package query

import (
	"regexp"
	"strings"
)

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Compare orders two texts by the text-or-number rule. Both are trimmed of
// surrounding whitespace; if both are integers they compare numerically,
// otherwise as strings by code point. The result is negative, zero, or
// positive, like strings.Compare.
//
// Trimming follows strings.TrimSpace: Unicode white space, including NBSP,
// is removed, while other control characters such as NUL are kept.
func Compare(a, b string) int {
	return compareKeys(newSortKey(a), newSortKey(b), strings.Compare)
}

// sortKey is the precomputed comparison key of one element.
type sortKey struct {
	text    string
	numeric bool
}

func newSortKey(s string) sortKey {
	s = strings.TrimSpace(s)
	return sortKey{text: s, numeric: integerPattern.MatchString(s)}
}

func compareKeys(a, b sortKey, cmpText func(a, b string) int) int {
	if a.numeric && b.numeric {
		return compareIntegers(a.text, b.text)
	}
	return cmpText(a.text, b.text)
}

// compareIntegers compares two strings matching integerPattern without
// converting them, so values of any width compare correctly.
func compareIntegers(a, b string) int {
	aNeg, aMag := splitSign(a)
	bNeg, bMag := splitSign(b)

	// -0 and 0 are the same value
	if aMag == "" {
		aNeg = false
	}
	if bMag == "" {
		bNeg = false
	}

	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	}

	c := compareMagnitudes(aMag, bMag)
	if aNeg {
		return -c
	}
	return c
}

func splitSign(s string) (neg bool, mag string) {
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	return neg, strings.TrimLeft(s, "0")
}

func compareMagnitudes(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

package versioning

import "strings"

// CompareKeys orders version keys naturally: runs of digits compare as
// numbers, so "10.x" sorts after "9.x". It returns -1, 0 or +1.
func CompareKeys(a, b string) int {
	pa, pb := keyParts(a), keyParts(b)
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := comparePart(pa[i], pb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(pa) < len(pb):
		return -1
	case len(pa) > len(pb):
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// keyParts splits a key into alternating digit and non-digit runs.
func keyParts(key string) []string {
	var parts []string
	start := 0
	for i := 1; i <= len(key); i++ {
		if i == len(key) || isDigit(key[i]) != isDigit(key[start]) {
			parts = append(parts, key[start:i])
			start = i
		}
	}
	return parts
}

func comparePart(a, b string) int {
	if isDigit(a[0]) && isDigit(b[0]) {
		a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

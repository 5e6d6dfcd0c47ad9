// Small string-slice helpers shared by cycle detection.

package dfs

import (
	"strings"
)

// indexOf returns the first index of val in s, or -1 if not found. O(n).
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reverse returns a new slice with the elements of s in reverse order. O(n).
func reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compareSeq lexicographically compares two equal-length string slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b. O(n).
func compareSeq(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// joinSig concatenates the elements of c with commas into one signature.
func joinSig(c []string) string {
	return strings.Join(c, ",")
}

// rotateToMin returns the rotation of s that starts at its smallest
// element. For sequences of distinct elements (a simple cycle's vertices)
// this is the lexicographically minimal rotation. O(n).
func rotateToMin(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	at := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[at] {
			at = i
		}
	}
	out := make([]string, 0, len(s))
	out = append(out, s[at:]...)
	out = append(out, s[:at]...)

	return out
}

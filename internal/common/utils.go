package common

import "strings"

// ContainsAll returns true if s contains every one of the substrings.
func ContainsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

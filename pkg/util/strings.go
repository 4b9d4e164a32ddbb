// Package util provides shared utility functions for typeahead.
package util

import "unicode/utf8"

// MaxLogValueSize is the default maximum size of a logged value (1KB).
const MaxLogValueSize = 1024

// Truncate truncates a string to at most maxSize bytes, appending
// "...(truncated)" if truncated. The cut never splits a UTF-8 sequence.
// If maxSize <= 0, uses MaxLogValueSize.
func Truncate(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogValueSize
	}
	if len(data) <= maxSize {
		return data
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut] + "...(truncated)"
}

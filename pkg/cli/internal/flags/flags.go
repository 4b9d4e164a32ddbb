// Package flags provides reusable flag types for CLI commands.
package flags

import "strings"

// StringSlice implements pflag.Value for repeatable string flags.
//
// Unlike pflag's StringSlice it never splits a value on commas: a --set
// value such as "tags=a,b" or a template fragment carries commas of its
// own, so each occurrence of the flag is exactly one value.
type StringSlice []string

// String returns the string representation of the flag value.
func (s *StringSlice) String() string {
	return strings.Join(*s, ",")
}

// Set appends a value to the slice.
func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Type specifies the type label for Cobra flags.
func (s *StringSlice) Type() string {
	return "stringSlice"
}

// Package util provides shared helpers used across typeahead packages.
//
//   - Truncate: cap rendered output and error messages for safe logging
package util

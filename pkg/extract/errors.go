package extract

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is matched by every *InvalidPathError.
var ErrInvalidPath = errors.New("invalid path")

// InvalidPathError reports a path segment that cannot index a sequence.
type InvalidPathError struct {
	// Path is the full path being resolved.
	Path string
	// Segment is the offending segment.
	Segment string
	// Reason is a human-readable description including the segment.
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("extract: %s (path %q)", e.Reason, e.Path)
}

// Unwrap lets errors.Is(err, ErrInvalidPath) match.
func (e *InvalidPathError) Unwrap() error {
	return ErrInvalidPath
}

func notANumber(path, segment string) error {
	return &InvalidPathError{
		Path:    path,
		Segment: segment,
		Reason:  fmt.Sprintf("when data is a sequence, segment must be some kind of a number, but is %s", segment),
	}
}

func negativeIndex(path, segment string) error {
	return &InvalidPathError{
		Path:    path,
		Segment: segment,
		Reason:  fmt.Sprintf("index for a sequence must be greater than or equal to 0, is %s", segment),
	}
}

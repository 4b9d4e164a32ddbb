package template

import (
	"errors"
	"fmt"
)

// ErrMalformedTemplate is matched by every *MalformedTemplateError.
var ErrMalformedTemplate = errors.New("malformed template")

// MalformedTemplateError reports a template whose tags do not pair up.
type MalformedTemplateError struct {
	// Reason describes the problem.
	Reason string
	// Placeholder is the 1-based number of the opening tag at fault, or 0
	// when the template as a whole is at fault.
	Placeholder int
}

func (e *MalformedTemplateError) Error() string {
	if e.Placeholder > 0 {
		return fmt.Sprintf("template: %s (placeholder %d)", e.Reason, e.Placeholder)
	}
	return "template: " + e.Reason
}

// Unwrap lets errors.Is(err, ErrMalformedTemplate) match.
func (e *MalformedTemplateError) Unwrap() error {
	return ErrMalformedTemplate
}

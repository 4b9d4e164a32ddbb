package cli

import (
	"io"

	"github.com/typeahead-kit/typeahead/pkg/cli/internal/output"
)

// printResult outputs a single command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to w. textFn is called only in text mode.
func (o *rootOptions) printResult(w io.Writer, data any, textFn func() error) error {
	if o.jsonOutput {
		return output.JSON(w, data)
	}
	return textFn()
}

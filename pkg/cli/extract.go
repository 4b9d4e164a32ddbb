package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typeahead-kit/typeahead/internal/selector"
	"github.com/typeahead-kit/typeahead/pkg/cli/internal/output"
	"github.com/typeahead-kit/typeahead/pkg/extract"
	"github.com/typeahead-kit/typeahead/pkg/template"
)

type extractOptions struct {
	data   string
	strict bool
}

// ExtractOutput is the JSON output of the extract command.
type ExtractOutput struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	Value any    `json:"value"`
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <path>",
		Short: "Print the value at a dotted path",
		Long: `Extract walks a dotted path (a.b.0.c) into a JSON or YAML document and
prints what it finds. Sequence segments must be numbers. A path starting
with $ is evaluated as JSONPath instead.

Mappings and sequences are printed as JSON. A path that resolves to nothing
prints nothing unless --strict is set.`,
		Example: `  typeahead extract user.name -d user.json
  typeahead extract 'results.0' -d search.yaml
  typeahead extract '$.results[*].title' -d search.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.data, "data", "d", "-", "Data file, JSON or YAML (- for stdin)")
	f.BoolVar(&opts.strict, "strict", false, "Fail when the path resolves to nothing")

	return cmd
}

func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, path string) error {
	data, err := loadData(opts.data, "")
	if err != nil {
		return err
	}

	value, err := selector.Select(data, path)
	if err != nil {
		return err
	}

	found := !extract.IsMissing(value)
	root.logger.Debug("path extracted", "path", path, "found", found)
	if !found {
		if opts.strict {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		value = nil
	}

	w := cmd.OutOrStdout()
	return root.printResult(w, ExtractOutput{Path: path, Found: found, Value: value}, func() error {
		if !found {
			return nil
		}
		switch value.(type) {
		case map[string]any, []any:
			return output.JSON(w, value)
		}
		_, err := fmt.Fprintln(w, template.FormatValue(value))
		return err
	})
}

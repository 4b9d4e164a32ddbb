package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typeahead-kit/typeahead/internal/selector"
	"github.com/typeahead-kit/typeahead/pkg/dataset"
	"github.com/typeahead-kit/typeahead/pkg/results"
	"github.com/typeahead-kit/typeahead/pkg/util"
)

type resultsOptions struct {
	template      string
	data          string
	glob          string
	selectExpr    string
	errorTemplate string
	emptyTemplate string
	filter        string
	match         bool
	query         string
	schema        string
	html          bool
	sanitize      bool
}

// ResultsOutput is the JSON output of the results command.
type ResultsOutput struct {
	State     results.State `json:"state"`
	ListClass string        `json:"listClass"`
	ItemClass string        `json:"itemClass"`
	Items     []string      `json:"items"`
	HTML      string        `json:"html,omitempty"`
}

func newResultsCmd(root *rootOptions) *cobra.Command {
	opts := &resultsOptions{}

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Render a typeahead results list",
		Long: `Results renders the item template once per item of the data. When there
are no items the empty template is shown; when the data cannot be loaded,
selected or validated the error template is rendered with [[message]].

Items come from --data (narrowed with --select) or from every file matching
--glob. --filter keeps items for which an expression over item and query is
true; --match keeps items whose rendered text contains --query.`,
		Example: `  typeahead results -t '<b>[[name]]</b>' -d cities.json --select cities
  typeahead results -t '[[name]]' -d cities.yaml --query ber --match --html
  typeahead results -t '[[name]]' --glob 'data/**/*.json' --filter 'item.population > 1000000'
  typeahead results -t '[[name]]' -d cities.json --schema city.schema.json --error-template 'Bad data: [[message]]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResults(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "Item template text, or @file to read it from a file")
	f.StringVarP(&opts.data, "data", "d", "", "Data file, JSON or YAML (- for stdin)")
	f.StringVar(&opts.glob, "glob", "", "Load items from every file matching this pattern (** supported)")
	f.StringVar(&opts.selectExpr, "select", "", "Dotted path or $ JSONPath selecting the item list")
	f.StringVar(&opts.errorTemplate, "error-template", "", "Template rendered with [[message]] on errors (default from config)")
	f.StringVar(&opts.emptyTemplate, "empty-template", "", "Text shown when there are no items (default from config)")
	f.StringVar(&opts.filter, "filter", "", "Expression over item and query; items where it is false are dropped")
	f.BoolVar(&opts.match, "match", false, "Keep only items whose rendered text contains the query (case-insensitive)")
	f.StringVarP(&opts.query, "query", "q", "", "Query typed into the input")
	f.StringVar(&opts.schema, "schema", "", "JSON Schema every item must satisfy")
	f.BoolVar(&opts.html, "html", false, "Print the list markup")
	f.BoolVar(&opts.sanitize, "sanitize", false, "Strip scripts and event handlers from rendered entries")

	return cmd
}

func runResults(cmd *cobra.Command, root *rootOptions, opts *resultsOptions) error {
	if opts.template == "" {
		return ErrTemplateRequired
	}
	if opts.data == "" && opts.glob == "" {
		return ErrDataRequired
	}

	itemTemplate, err := readTemplate(opts.template)
	if err != nil {
		return err
	}
	errorTemplate, err := readTemplate(firstNonEmpty(opts.errorTemplate, root.cfg.ErrorTemplate))
	if err != nil {
		return err
	}

	renderer, err := results.New(results.Config{
		ItemTemplate:  itemTemplate,
		ErrorTemplate: errorTemplate,
		EmptyTemplate: firstNonEmpty(opts.emptyTemplate, root.cfg.EmptyTemplate),
		Filter:        opts.filter,
		Match:         opts.match,
		Sanitize:      opts.sanitize,
		Engine:        root.engine("", ""),
		Logger:        root.logger,
	})
	if err != nil {
		return err
	}

	var schema *dataset.Schema
	if opts.schema != "" {
		schema, err = dataset.LoadSchema(opts.schema)
		if err != nil {
			return err
		}
	}

	provider := func(_ context.Context, _ string) ([]any, error) {
		items, err := opts.loadItems()
		if err != nil {
			return nil, err
		}
		if schema != nil {
			for i, item := range items {
				if err := schema.Validate(item); err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
		}
		return items, nil
	}

	view, err := renderer.Push(cmd.Context(), provider, opts.query)
	if err != nil {
		return err
	}
	if view.State == results.StateError {
		root.logger.Warn("results rendered as error", "message", util.Truncate(view.String(), 0))
	}

	out := ResultsOutput{
		State:     view.State,
		ListClass: view.ListClass(),
		ItemClass: view.ItemClass(),
		Items:     view.Items,
	}
	if opts.html {
		out.HTML = view.HTML()
	}

	w := cmd.OutOrStdout()
	return root.printResult(w, out, func() error {
		text := view.String()
		if opts.html {
			text = out.HTML
		}
		_, err := fmt.Fprintln(w, text)
		return err
	})
}

func (o *resultsOptions) loadItems() ([]any, error) {
	if o.glob != "" {
		items, err := dataset.LoadItems(o.glob)
		if err != nil {
			return nil, err
		}
		if o.selectExpr == "" {
			return items, nil
		}
		selected := make([]any, 0, len(items))
		for _, item := range items {
			more, err := selector.Items(item, o.selectExpr)
			if err != nil {
				return nil, err
			}
			selected = append(selected, more...)
		}
		return selected, nil
	}

	data, err := dataset.Load(o.data)
	if err != nil {
		return nil, err
	}
	return selector.Items(data, o.selectExpr)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

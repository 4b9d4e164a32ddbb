package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/typeahead-kit/typeahead/pkg/cli/internal/flags"
	"github.com/typeahead-kit/typeahead/pkg/dataset"
	"github.com/typeahead-kit/typeahead/pkg/util"
)

type renderOptions struct {
	template   string
	data       string
	openTag    string
	closeTag   string
	selectExpr string
	tree       string
	sets       flags.StringSlice
}

// RenderOutput is the JSON output of the render command.
type RenderOutput struct {
	Output string   `json:"output"`
	Paths  []string `json:"paths,omitempty"`
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template against a data document",
		Long: `Render replaces every [[ path ]] placeholder in a template with the value
found at that dotted path in the data. Values that are not found render as
nothing; mappings render as JSON and sequences as comma-separated values.

With --tree, every string in a JSON or YAML document is rendered instead and
the document is printed back.`,
		Example: `  typeahead render -t 'Hello [[ user.name ]]' -d user.json
  typeahead render -t @card.tmpl -d search.yaml --select 'results.0'
  typeahead render -t '{{ name }}' --open '{{' --close '}}' --set name=Berlin
  typeahead render --tree widget.yaml -d search.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.template, "template", "t", "", "Template text, or @file to read it from a file")
	f.StringVarP(&opts.data, "data", "d", "", "Data file, JSON or YAML (- for stdin)")
	f.StringVar(&opts.openTag, "open", "", "Opening placeholder tag (default from config)")
	f.StringVar(&opts.closeTag, "close", "", "Closing placeholder tag (default from config)")
	f.StringVar(&opts.selectExpr, "select", "", "Dotted path or $ JSONPath selecting the data to render against")
	f.StringVar(&opts.tree, "tree", "", "Render every string of this JSON or YAML document")
	f.Var(&opts.sets, "set", "Set a top-level data value (key=value, repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	if opts.template == "" && opts.tree == "" {
		return ErrTemplateRequired
	}

	data, err := loadData(opts.data, opts.selectExpr)
	if err != nil {
		return err
	}
	data, err = applyAssignments(data, opts.sets)
	if err != nil {
		return err
	}

	engine := root.engine(opts.openTag, opts.closeTag)
	w := cmd.OutOrStdout()

	if opts.tree != "" {
		doc, err := dataset.Load(opts.tree)
		if err != nil {
			return err
		}
		rendered, err := engine.RenderTree(doc, data)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", opts.tree, err)
		}
		return root.printResult(w, rendered, func() error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(rendered); err != nil {
				return err
			}
			return enc.Close()
		})
	}

	text, err := readTemplate(opts.template)
	if err != nil {
		return err
	}
	tmpl, err := engine.Compile(text)
	if err != nil {
		return err
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return err
	}
	root.logger.Debug("template rendered", "placeholders", len(tmpl.Paths()), "output", util.Truncate(out, 0))

	return root.printResult(w, RenderOutput{Output: out, Paths: tmpl.Paths()}, func() error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}

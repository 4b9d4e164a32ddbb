// Package results turns typeahead data into rendered result lists.
//
// A Renderer is the one-way data push behind a results widget: it is handed
// either the items a data provider produced or the error it failed with,
// and returns a View. Items are rendered through the item template, errors
// through the error template (default "[[message]]") and an empty item list
// through the empty template, which is used verbatim.
package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"

	"github.com/typeahead-kit/typeahead/pkg/logging"
	"github.com/typeahead-kit/typeahead/pkg/template"
)

// DefaultErrorTemplate renders an error's message.
const DefaultErrorTemplate = "[[message]]"

// ErrNoItemTemplate is returned by New when Config.ItemTemplate is empty.
var ErrNoItemTemplate = errors.New("results: item template missing")

// Provider supplies the items for a query. It is called once per Push; the
// Renderer never retries it.
type Provider func(ctx context.Context, query string) ([]any, error)

// Config configures a Renderer.
type Config struct {
	// ItemTemplate is rendered once per item. Required.
	ItemTemplate string

	// ErrorTemplate is rendered against {"message": err.Error()}.
	// Defaults to DefaultErrorTemplate.
	ErrorTemplate string

	// EmptyTemplate is shown verbatim when there are no items.
	EmptyTemplate string

	// Filter is an optional expr-lang expression evaluated per item with
	// the variables item and query. Items for which it is false are
	// dropped before rendering.
	Filter string

	// Match drops items whose rendered text does not contain the query,
	// compared with Unicode case folding. Ignored for an empty query.
	Match bool

	// Sanitize passes every rendered item and error entry through an HTML
	// policy for user-generated content: inline markup such as <b> and
	// links survive, scripts and event handlers do not. The empty template
	// is trusted and left alone.
	Sanitize bool

	// Engine renders the templates. Defaults to template.New().
	Engine *template.Engine

	// Logger receives debug output. Defaults to logging.Nop().
	Logger *slog.Logger
}

// Renderer renders Views. It is immutable after New and safe for
// concurrent use.
type Renderer struct {
	item          *template.Template
	errorTmpl     *template.Template
	emptyTemplate string
	filter        *vm.Program
	match         bool
	policy        *bluemonday.Policy
	logger        *slog.Logger
}

// New compiles the configured templates and filter.
func New(cfg Config) (*Renderer, error) {
	if cfg.ItemTemplate == "" {
		return nil, ErrNoItemTemplate
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	engine := cfg.Engine
	if engine == nil {
		engine = template.New(template.WithLogger(logger))
	}

	item, err := engine.Compile(cfg.ItemTemplate)
	if err != nil {
		return nil, fmt.Errorf("item template: %w", err)
	}

	errorTemplate := cfg.ErrorTemplate
	if errorTemplate == "" {
		logger.Debug("no error template configured, using default", "template", DefaultErrorTemplate)
		errorTemplate = DefaultErrorTemplate
	}
	errorTmpl, err := engine.Compile(errorTemplate)
	if err != nil {
		return nil, fmt.Errorf("error template: %w", err)
	}

	r := &Renderer{
		item:          item,
		errorTmpl:     errorTmpl,
		emptyTemplate: cfg.EmptyTemplate,
		match:         cfg.Match,
		logger:        logger,
	}

	if cfg.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	}

	if cfg.Filter != "" {
		program, err := expr.Compile(cfg.Filter, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile filter %q: %w", cfg.Filter, err)
		}
		r.filter = program
	}

	return r, nil
}

// SetData renders items, or err when it is non-nil.
func (r *Renderer) SetData(items []any, err error) (View, error) {
	return r.render("", items, err)
}

// Push asks the provider for the query's items and renders the outcome.
// A provider error is rendered as an error View, not returned.
func (r *Renderer) Push(ctx context.Context, provider Provider, query string) (View, error) {
	items, err := provider(ctx, query)
	return r.render(query, items, err)
}

func (r *Renderer) render(query string, items []any, dataErr error) (View, error) {
	if dataErr != nil {
		content, err := r.errorTmpl.Execute(map[string]any{"message": dataErr.Error()})
		if err != nil {
			return View{}, fmt.Errorf("rendering error template: %w", err)
		}
		content = r.sanitize(content)
		r.logger.Debug("rendered error view", "error", dataErr)
		return View{State: StateError, Items: []string{content}}, nil
	}

	// A Caser is stateful, so each render gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	rendered := make([]string, 0, len(items))
	for i, item := range items {
		keep, err := r.keep(item, query)
		if err != nil {
			return View{}, fmt.Errorf("item %d: %w", i, err)
		}
		if !keep {
			continue
		}

		out, err := r.item.Execute(item)
		if err != nil {
			return View{}, fmt.Errorf("item %d: %w", i, err)
		}
		out = r.sanitize(out)
		if r.match && query != "" && !strings.Contains(fold.String(out), needle) {
			continue
		}
		rendered = append(rendered, out)
	}

	if len(rendered) == 0 {
		r.logger.Debug("rendered empty view", "items", len(items), "query", query)
		return View{State: StateEmpty, Items: []string{r.emptyTemplate}}, nil
	}

	r.logger.Debug("rendered results view", "items", len(rendered), "query", query)
	return View{State: StateData, Items: rendered}, nil
}

func (r *Renderer) sanitize(s string) string {
	if r.policy == nil {
		return s
	}
	return r.policy.Sanitize(s)
}

func (r *Renderer) keep(item any, query string) (bool, error) {
	if r.filter == nil {
		return true, nil
	}
	out, err := expr.Run(r.filter, map[string]any{"item": item, "query": query})
	if err != nil {
		return false, fmt.Errorf("filter: %w", err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, want bool", out)
	}
	return keep, nil
}

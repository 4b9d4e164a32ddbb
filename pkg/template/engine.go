package template

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/typeahead-kit/typeahead/pkg/extract"
	"github.com/typeahead-kit/typeahead/pkg/logging"
)

// Default tags.
const (
	DefaultOpeningTag = "[["
	DefaultClosingTag = "]]"
)

// Engine renders templates with a fixed pair of tags.
// An Engine is stateless after construction and fully thread-safe.
type Engine struct {
	openingTag string
	closingTag string
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelimiters sets the opening and closing tags. Empty tags are rejected
// when a template is compiled.
func WithDelimiters(opening, closing string) Option {
	return func(e *Engine) {
		e.openingTag = opening
		e.closingTag = closing
	}
}

// WithLogger sets the logger used for debug output. Nil keeps the no-op
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine using "[[" and "]]" unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		openingTag: DefaultOpeningTag,
		closingTag: DefaultClosingTag,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Delimiters returns the engine's opening and closing tags.
func (e *Engine) Delimiters() (opening, closing string) {
	return e.openingTag, e.closingTag
}

// Render compiles the template and executes it against data.
func (e *Engine) Render(template string, data any) (string, error) {
	t, err := e.Compile(template)
	if err != nil {
		return "", err
	}
	return t.Execute(data)
}

// Compile splits a template into literal text and placeholders.
//
// The whole template is checked before any data is looked at: tag counts
// must match, and every opening tag must be followed by exactly one closing
// tag before the next opening tag.
func (e *Engine) Compile(template string) (*Template, error) {
	if e.openingTag == "" || e.closingTag == "" {
		return nil, &MalformedTemplateError{Reason: "opening and closing tags must not be empty"}
	}

	opening := strings.Count(template, e.openingTag)
	closing := strings.Count(template, e.closingTag)
	if opening != closing {
		return nil, &MalformedTemplateError{
			Reason: fmt.Sprintf("template must have the same amount of opening and closing tags (%d opening, %d closing)", opening, closing),
		}
	}

	pieces := strings.Split(template, e.openingTag)
	t := &Template{
		source:    template,
		fragments: make([]fragment, 0, 2*len(pieces)),
		logger:    e.logger,
	}

	// Text before the first opening tag never contains a placeholder.
	if pieces[0] != "" {
		t.fragments = append(t.fragments, fragment{text: pieces[0]})
	}

	for i, piece := range pieces[1:] {
		parts := strings.Split(piece, e.closingTag)
		if len(parts) != 2 {
			return nil, &MalformedTemplateError{
				Reason:      "tag is not closed before new tag begins",
				Placeholder: i + 1,
			}
		}

		t.fragments = append(t.fragments, fragment{
			path:        extract.ParsePath(strings.TrimSpace(parts[0])),
			placeholder: true,
		})
		if parts[1] != "" {
			t.fragments = append(t.fragments, fragment{text: parts[1]})
		}
	}

	return t, nil
}

var defaultEngine = New()

// Render renders a template with the default "[[" and "]]" tags.
func Render(template string, data any) (string, error) {
	return defaultEngine.Render(template, data)
}

// RenderWith renders a template with custom tags.
func RenderWith(template string, data any, openingTag, closingTag string) (string, error) {
	return New(WithDelimiters(openingTag, closingTag)).Render(template, data)
}

package cli

import "errors"

// Common CLI errors
var (
	ErrTemplateRequired = errors.New("a template is required - pass --template (or --tree for render)")
	ErrDataRequired     = errors.New("no data source - pass --data or --glob")
	ErrNotFound         = errors.New("path resolved to nothing")
	ErrNotMapping       = errors.New("--set requires the data to be a mapping")
)

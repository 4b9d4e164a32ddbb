package config

import "github.com/typeahead-kit/typeahead/pkg/template"

// Defaults.
const (
	DefaultOpenTag   = template.DefaultOpeningTag
	DefaultCloseTag  = template.DefaultClosingTag
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		OpenTag:   DefaultOpenTag,
		CloseTag:  DefaultCloseTag,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	cfg.Sources["openTag"] = SourceDefault
	cfg.Sources["closeTag"] = SourceDefault
	cfg.Sources["logLevel"] = SourceDefault
	cfg.Sources["logFormat"] = SourceDefault

	return cfg
}

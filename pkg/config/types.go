package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the effective configuration of the CLI.
type Config struct {
	// Template tags
	OpenTag  string `yaml:"openTag" json:"openTag"`
	CloseTag string `yaml:"closeTag" json:"closeTag"`

	// Results templates
	ErrorTemplate string `yaml:"errorTemplate,omitempty" json:"errorTemplate,omitempty"`
	EmptyTemplate string `yaml:"emptyTemplate,omitempty" json:"emptyTemplate,omitempty"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty" json:"logFile,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// Config sources.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration and joins every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.OpenTag == "" {
		errs = append(errs, errors.New("openTag must not be empty"))
	}
	if c.CloseTag == "" {
		errs = append(errs, errors.New("closeTag must not be empty"))
	}
	if c.LogLevel != "" && !containsFold(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if c.LogFormat != "" && !containsFold(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}

	return errors.Join(errs...)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration file error.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

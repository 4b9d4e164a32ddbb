package config

import "os"

// Environment variable names
const (
	EnvConfig        = "TYPEAHEAD_CONFIG"
	EnvOpenTag       = "TYPEAHEAD_OPEN_TAG"
	EnvCloseTag      = "TYPEAHEAD_CLOSE_TAG"
	EnvErrorTemplate = "TYPEAHEAD_ERROR_TEMPLATE"
	EnvEmptyTemplate = "TYPEAHEAD_EMPTY_TEMPLATE"
	EnvLogLevel      = "TYPEAHEAD_LOG_LEVEL"
	EnvLogFormat     = "TYPEAHEAD_LOG_FORMAT"
	EnvLogFile       = "TYPEAHEAD_LOG_FILE"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) {
	env := &Config{
		OpenTag:       os.Getenv(EnvOpenTag),
		CloseTag:      os.Getenv(EnvCloseTag),
		ErrorTemplate: os.Getenv(EnvErrorTemplate),
		EmptyTemplate: os.Getenv(EnvEmptyTemplate),
		LogLevel:      os.Getenv(EnvLogLevel),
		LogFormat:     os.Getenv(EnvLogFormat),
		LogFile:       os.Getenv(EnvLogFile),
	}
	MergeConfig(cfg, env, SourceEnv)
}

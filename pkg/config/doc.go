// Package config provides configuration types and loading for the typeahead
// CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (TYPEAHEAD_* prefix)
//  3. File named by --config or TYPEAHEAD_CONFIG
//  4. Local config file (.typeahead.yaml in the current directory)
//  5. Global config file ($XDG_CONFIG_HOME/typeahead/config.yaml)
//  6. Default values
//
// The source of each value is tracked in Config.Sources so `typeahead
// config` can show where a setting came from.
package config

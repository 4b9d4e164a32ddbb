// Package cli provides the command-line interface for typeahead.
//
// The cli package implements the commands of the typeahead binary:
//   - render: Render a [[placeholder]] template against a JSON or YAML document
//   - extract: Resolve a dotted path (or a $ JSONPath) against a document
//   - results: Render a typeahead results list from an array of items
//   - config: Display effective configuration and where each value came from
//   - version: Show typeahead version
//
// Configuration is layered: flags override TYPEAHEAD_* environment
// variables, which override the --config file, .typeahead.yaml in the
// working directory and the global config file, in that order.
//
// Usage:
//
//	typeahead render -t 'Hello [[ user.name ]]' -d user.json
//	typeahead render -t @item.tmpl -d cities.yaml --select '$.cities[0]'
//	typeahead extract results.0.title -d search.json
//	typeahead results -t '<b>[[name]]</b>' -d cities.json --select cities --query ber --match
//	typeahead results -t '[[name]]' --glob 'data/**/*.yaml' --filter 'item.population > 1000000'
//	typeahead config --json
package cli

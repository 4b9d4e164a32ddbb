package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON Schema (draft 2020-12).
type Schema struct {
	source string
	schema *jsonschema.Schema
}

// FieldError is one schema violation.
type FieldError struct {
	// Field is the dotted location of the offending value, empty for the
	// document root.
	Field   string
	Message string
}

// SchemaError lists every violation found in a document.
type SchemaError struct {
	Source string
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("data does not match schema %s: %s", e.Source, strings.Join(parts, "; "))
}

// LoadSchema reads a JSON or YAML schema file and compiles it.
func LoadSchema(path string) (*Schema, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return CompileSchema(path, doc)
}

// CompileSchema compiles a decoded schema document. Name is used in error
// messages and as the resource URL.
func CompileSchema(name string, doc any) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("schema.json", strings.NewReader(oj.JSON(doc))); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return &Schema{source: name, schema: schema}, nil
}

// Validate checks data against the schema and returns a *SchemaError
// listing the violations.
func (s *Schema) Validate(data any) error {
	normalized, err := normalize(data)
	if err != nil {
		return err
	}

	err = s.schema.Validate(normalized)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	result := &SchemaError{Source: s.source}
	collectSchemaErrors(validationErr, result)
	return result
}

// normalize converts data to the value types the validator expects by a
// JSON round trip that keeps numbers as json.Number.
func normalize(data any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data for validation: %w", err)
	}
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding data for validation: %w", err)
	}
	return v, nil
}

func collectSchemaErrors(err *jsonschema.ValidationError, result *SchemaError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, result)
	}
}

// fieldFromPointer converts a JSON Pointer to a dotted path, the same
// notation placeholders use.
func fieldFromPointer(pointer string) string {
	if pointer == "" || pointer == "/" {
		return ""
	}
	pointer = strings.TrimPrefix(pointer, "/")
	return strings.ReplaceAll(pointer, "/", ".")
}

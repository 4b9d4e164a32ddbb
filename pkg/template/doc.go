// Package template renders bracket templates such as
// "<li>[[city.0.name]]</li>" against decoded data.
//
// # Placeholders
//
// A placeholder is the text between an opening and a closing tag, "[[" and
// "]]" by default. Its content, trimmed of surrounding white space, is a
// dotted path resolved with package extract:
//
//	out, err := template.Render("<li>[[city.0.name]]<br/>[[city.0.zip]]</li>",
//	    map[string]any{"city": []any{map[string]any{"name": "Winti", "zip": 8400}}})
//	// out == "<li>Winti<br/>8400</li>"
//
// Custom tags are set per engine or per call:
//
//	e := template.New(template.WithDelimiters("((", "))"))
//	out, err := e.Render("<li>((city.0.name))</li>", data)
//
// # Values
//
// Paths that address nothing, and null values, render as the empty string.
// Strings render verbatim, numbers in their shortest decimal form, booleans
// as true or false, sequences as their elements joined with "," and
// mappings as compact JSON.
//
// # Errors
//
// A template whose opening and closing tag counts differ, or in which a tag
// is opened before the previous one is closed, fails with a
// *MalformedTemplateError (errors.Is(err, ErrMalformedTemplate)). Path
// errors from package extract are returned unchanged.
//
// # Compiling
//
// Templates rendered once per item of a list can be compiled first:
//
//	t, err := e.Compile(itemTemplate)
//	for _, item := range items {
//	    out, err := t.Execute(item)
//	}
//
// Engines and compiled templates are immutable and safe for concurrent use.
package template

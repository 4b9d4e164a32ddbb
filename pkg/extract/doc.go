// Package extract resolves dotted paths like "city.0.name" against decoded
// data (maps, slices, structs and scalars).
//
// # Paths
//
// A path is a list of segments separated by ".". Segments cannot contain a
// literal dot; there is no escaping. Against a sequence a segment is an
// index, against a mapping it is a key:
//
//	data := map[string]any{"city": []any{map[string]any{"name": "Winti"}}}
//	v, err := extract.Extract(data, "city.0.name") // "Winti", nil
//
// # Missing values
//
// A path that addresses nothing (absent key, index out of range, a path that
// continues past a scalar or null) is not an error. Extract returns the
// Missing marker instead, which is distinct from a present nil:
//
//	v, _ := extract.Extract(map[string]any{"a": nil}, "a") // nil
//	v, _ = extract.Extract(map[string]any{}, "a")         // extract.Missing
//
// # Errors
//
// The only failure is a malformed index segment against a sequence: a
// segment that is not some kind of a number, or a negative one. Such errors
// are *InvalidPathError values and match ErrInvalidPath with errors.Is.
//
// Numeric checks follow JavaScript Number() conversion, so segments such as
// "1.5", " 2" or "0x1" pass the check but never address an element; they
// resolve to Missing.
package extract

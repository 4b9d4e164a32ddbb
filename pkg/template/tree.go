package template

import "fmt"

// RenderTree renders every string found in a nested structure of maps and
// slices, such as a decoded JSON or YAML document whose values are
// templates. Keys and non-string values are returned unchanged. The input
// is not modified.
func (e *Engine) RenderTree(tree any, data any) (any, error) {
	switch v := tree.(type) {
	case nil:
		return nil, nil
	case string:
		return e.Render(v, data)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			rendered, err := e.RenderTree(val, data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			result[key] = rendered
		}
		return result, nil
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			rendered, err := e.RenderTree(val, data)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			result[i] = rendered
		}
		return result, nil
	default:
		return tree, nil
	}
}

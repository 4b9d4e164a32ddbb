package results

import "strings"

// State is the kind of data a View shows.
type State string

// View states.
const (
	StateData  State = "data"
	StateEmpty State = "empty"
	StateError State = "error"
)

const (
	listClass     = "typeahead-results-list"
	listItemClass = "typeahead-results-list-item"
)

// View is the outcome of one push: the rendered entries and the state they
// represent. Empty and error views hold exactly one entry.
type View struct {
	State State
	Items []string
}

// ListClass returns the class names for the list element.
func (v View) ListClass() string {
	return classes(listClass, v.State)
}

// ItemClass returns the class names for each list entry.
func (v View) ItemClass() string {
	return classes(listItemClass, v.State)
}

func classes(base string, state State) string {
	switch state {
	case StateEmpty:
		return base + " -empty"
	case StateError:
		return base + " -error"
	default:
		return base
	}
}

// HTML returns the list markup for the view. Data views are wrapped in a
// selectable-list element so entries can be picked; empty and error views
// are not.
func (v View) HTML() string {
	var b strings.Builder
	if v.State == StateData {
		b.WriteString("<selectable-list>")
	}
	b.WriteString(`<ul class="` + v.ListClass() + `">`)
	for _, item := range v.Items {
		b.WriteString(`<li class="` + v.ItemClass() + `">`)
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	if v.State == StateData {
		b.WriteString("</selectable-list>")
	}
	return b.String()
}

// String joins the entries with newlines.
func (v View) String() string {
	return strings.Join(v.Items, "\n")
}

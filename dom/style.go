package dom

import "strings"

// Style returns the inline style declarations of the element. Names and
// values are lowercased, later declarations win and !important is dropped.
func (e *Element) Style() map[string]string {
	raw, ok := e.Attr("style")
	if !ok {
		return nil
	}
	return parseDeclarations(raw)
}

// ComputedDisplay returns the display value derived from the element's inline
// style. Without an inline display, the user agent rule [hidden]{display:none}
// applies; otherwise it returns "". Stylesheets are not consulted.
func (e *Element) ComputedDisplay() string {
	if display, ok := e.Style()["display"]; ok {
		return display
	}
	if e.HasAttribute("hidden") {
		return "none"
	}
	return ""
}

func parseDeclarations(raw string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if i := strings.Index(strings.ToLower(value), "!important"); i >= 0 {
			value = strings.TrimSpace(value[:i])
		}
		out[name] = strings.ToLower(value)
	}
	return out
}

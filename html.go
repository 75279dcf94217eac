package htmltools

import "html"

// HTML marks a string as pre-escaped markup, safe for direct insertion into
// a document's head without further escaping. Downstream consumers must
// not escape it again.
type HTML string

// String returns the markup as a plain string.
func (h HTML) String() string {
	return string(h)
}

// EscapeString escapes a string for embedding in HTML attribute values and
// text content, mapping at least '&', '<', '>', and '"' to their entity
// forms. It is applied to every user-supplied name, content value, and
// identifier before the renderer embeds it in a tag.
func EscapeString(s string) string {
	return html.EscapeString(s)
}

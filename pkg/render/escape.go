package render

import "strings"

// Escape escapes text for safe inclusion in HTML output.
// It applies the atomic substitution rule per rune, in order: & < > "
// become their entity forms and every other rune passes through
// unchanged. Element text and attribute values share this one rule.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		escapeRune(&buf, r)
	}

	return buf.String()
}

// EscapeRune returns the escaped form of a single rune.
func EscapeRune(r rune) string {
	var buf strings.Builder
	escapeRune(&buf, r)
	return buf.String()
}

// escapeRune writes the escaped form of r to buf.
func escapeRune(buf *strings.Builder, r rune) {
	switch r {
	case '&':
		buf.WriteString("&amp;")
	case '<':
		buf.WriteString("&lt;")
	case '>':
		buf.WriteString("&gt;")
	case '"':
		buf.WriteString("&quot;")
	default:
		buf.WriteRune(r)
	}
}

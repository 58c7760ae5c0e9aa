package utils

import "strings"

// htmlEscaper writes the entity forms browser-facing stores already hold
// for this data: &quot; and &#039; for the quote characters, not the
// shorter numeric forms html.EscapeString would emit.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// SanitizeText normalizes a free-text value received from a client before it
// is stored: trims surrounding whitespace, removes backslash-escaping
// artifacts a transport layer may have introduced, and escapes
// HTML-significant characters (& < > " ') so the value is safe to echo into
// an HTML context later. Queries must still bind values as parameters; this
// is not an injection defense.
func SanitizeText(s string) string {
	return htmlEscaper.Replace(stripSlashes(strings.TrimSpace(s)))
}

// stripSlashes removes one level of backslash quoting: `\x` becomes `x`,
// `\\` becomes `\`. A trailing lone backslash is dropped.
func stripSlashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

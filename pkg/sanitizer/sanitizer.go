// Package sanitizer cleans user-supplied message content before it is stored.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// MessageText strips all HTML/XML markup from chat message text, keeping only
// the text content. Messages are stored and rendered as plain text; markup in
// the input is treated as noise, not as formatting.
func MessageText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") && !strings.Contains(input, "&") {
		return input
	}
	cleaned := strict.Sanitize(input)
	// bluemonday escapes entities; stored text should hold the literal characters.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Language normalizes a language name: trimmed, with markup removed. Language
// names are used as map keys, so stray whitespace would split cache entries.
func Language(input string) string {
	return MessageText(input)
}

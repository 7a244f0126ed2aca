package merge

import "strings"

// Substitute replaces the first literal occurrence of label with content.
// A template without the label, or an empty label, is returned unchanged.
func Substitute(template, label, content string) string {
	if label == "" {
		return template
	}
	return strings.Replace(template, label, content, 1)
}

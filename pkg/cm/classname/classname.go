// Package classname normalises composed class strings.
package classname

import "strings"

// Normalize collapses every whitespace run to a single space and trims both ends.
// Tokens are never deduplicated or reordered.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Join drops empty parts and joins the rest with a single space.
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = Normalize(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

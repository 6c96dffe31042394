// Package extract reconstructs a structured resume document from the
// freeform text a generator produces. The generator is asked to follow a
// template with literal section headers and markers, but never guaranteed
// to, so everything in this package is heuristic and total: malformed input
// degrades to a smaller document, never to an error.
package extract

import "strings"

// NormalizeKey canonicalizes a free-text label (role title, project title)
// into a stable lookup key: lowercase, with every character outside [a-z0-9]
// removed. Two labels that differ only in case, punctuation, or whitespace
// normalize to the same key.
//
// The exact algorithm is a compatibility contract shared with the renderer,
// which joins generated content back to canonical profile entries by key
// equality. Any change here silently breaks that join.
func NormalizeKey(label string) string {
	lower := strings.ToLower(label)
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, lower)
}

// normalizeHeader reduces a line to lowercase ASCII letters only, for exact
// matching against the closed set of section header tokens. Narrower than
// NormalizeKey (digits are stripped too) because headers are pure words.
func normalizeHeader(line string) string {
	lower := strings.ToLower(line)
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, lower)
}

package parser

import "strings"

// collectSequence looks ahead from start for a run of dash items indented
// deeper than keyIndent. Blank lines inside the run are skipped. It returns
// the coerced items and the index of the first line not consumed.
//
// When no item is found the returned index is start, so the caller only
// advances past the key line itself.
func collectSequence(lines []string, start, keyIndent int) ([]Value, int) {
	var items []Value
	next := start

	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		indent, text, ok := matchItem(lines[i])
		if !ok || indent <= keyIndent {
			break
		}

		items = append(items, Coerce(text))
		next = i + 1
	}

	return items, next
}

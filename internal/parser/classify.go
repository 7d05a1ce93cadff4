package parser

import (
	"regexp"
	"strings"
)

var (
	// Section header: bare identifier at column 0 followed by a colon
	sectionHeaderRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):\s*$`)

	// Key line: indent, key (no colons), colon, raw value
	keyLineRe = regexp.MustCompile(`^(\s*)([^:]+):\s*(.*)$`)

	// Sequence item: indent, dash, item text
	itemRe = regexp.MustCompile(`^(\s*)-\s*(.*)$`)
)

// LineKind categorizes a physical line.
type LineKind int

const (
	LineBlank LineKind = iota // Empty or comment
	LineSection
	LineKey
	LineUnrecognized
)

// Line is the classification of one physical line.
type Line struct {
	Kind   LineKind
	Indent int    // Leading whitespace width (LineKey)
	Name   string // Section name (LineSection) or key (LineKey)
	Value  string // Trimmed raw value (LineKey)
}

// lineMatcher tries to classify a right-trimmed line.
type lineMatcher func(line string) (Line, bool)

// matchers are tried in order. The section check must run before the key
// check so that a column-0 identifier with an empty value is a header.
var matchers = []lineMatcher{
	matchBlank,
	matchSection,
	matchKey,
}

// Classify categorizes a single physical line. Trailing whitespace is
// ignored; leading whitespace is measured as indentation.
func Classify(raw string) Line {
	line := strings.TrimRight(raw, " \t\r\n")
	for _, match := range matchers {
		if l, ok := match(line); ok {
			return l
		}
	}
	return Line{Kind: LineUnrecognized}
}

func matchBlank(line string) (Line, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Line{Kind: LineBlank}, true
	}
	return Line{}, false
}

func matchSection(line string) (Line, bool) {
	matches := sectionHeaderRe.FindStringSubmatch(line)
	if matches == nil {
		return Line{}, false
	}
	return Line{Kind: LineSection, Name: matches[1]}, true
}

func matchKey(line string) (Line, bool) {
	matches := keyLineRe.FindStringSubmatch(line)
	if matches == nil {
		return Line{}, false
	}
	return Line{
		Kind:   LineKey,
		Indent: len(matches[1]),
		Name:   strings.TrimSpace(matches[2]),
		Value:  strings.TrimSpace(matches[3]),
	}, true
}

// matchItem recognizes a sequence item line during lookahead.
// Returns the indentation width and the trimmed item text.
func matchItem(line string) (int, string, bool) {
	matches := itemRe.FindStringSubmatch(strings.TrimRight(line, " \t\r\n"))
	if matches == nil {
		return 0, "", false
	}
	return len(matches[1]), strings.TrimSpace(matches[2]), true
}

// Package parser converts a restricted, indentation-based key/value markup
// into a typed Document.
//
// The supported subset is:
//
//	key: value
//	section:
//	  key: value
//	  list_key:
//	    - item1
//	    - item2
//
// Parsing never fails. Lines that match none of the recognized shapes are
// skipped.
package parser

import (
	"io"
	"strings"
)

// Parse parses text into a Document. Surrounding whitespace of the whole
// text is dropped first, so an indented first line starts at column 0.
// Each call is independent.
func Parse(text string) *Document {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	doc := newDocument()
	state := ParserState{}

	lineNum := 0
	for lineNum < len(lines) {
		line := Classify(lines[lineNum])

		switch line.Kind {
		case LineSection:
			state = enterSection(doc, state, line.Name)
			lineNum++

		case LineKey:
			if line.Value != "" {
				assign(doc, state, line.Name, Coerce(line.Value))
				lineNum++
				continue
			}

			items, next := collectSequence(lines, lineNum+1, line.Indent)
			if len(items) > 0 {
				assign(doc, state, line.Name, SequenceValue(items))
				lineNum = next
			} else {
				assign(doc, state, line.Name, Null())
				lineNum++
			}

		default:
			// Blank, comment and unrecognized lines
			lineNum++
		}
	}

	return doc
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(content)), nil
}

// enterSection makes name the current section, creating an empty section in
// doc unless one already exists there.
func enterSection(doc *Document, state ParserState, name string) ParserState {
	if existing, ok := doc.Get(name); !ok || existing.Kind != KindSection {
		doc.set(name, SectionValue(NewMap()))
	}
	state.CurrentSection = name
	state.InSection = true
	return state
}

// assign writes a resolved key into the current section, or into the root
// when no section header has been seen yet. Key indentation is not consulted.
func assign(doc *Document, state ParserState, key string, v Value) {
	if state.InSection {
		if section, ok := doc.Get(state.CurrentSection); ok && section.Kind == KindSection {
			section.Section.set(key, v)
			return
		}
	}
	doc.set(key, v)
}

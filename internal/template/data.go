package template

import (
	"fmt"

	"github.com/saltyorg/params/internal/parser"
)

// DocumentData returns the template data for a parsed document: a map of
// plain Go values, so templates can write {{ .par.input }}.
func DocumentData(doc *parser.Document) map[string]any {
	return doc.Native()
}

// TreeData returns the template data for a tree produced by the JSON loader.
// The root must be an object.
func TreeData(tree any) (map[string]any, error) {
	root, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parameters root must be an object, got %s", kindOf(tree))
	}
	return root, nil
}

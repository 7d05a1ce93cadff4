package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/saltyorg/params/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		// String functions
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"title":     titleCaser.String,
		"trimSpace": strings.TrimSpace,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"replace":   strings.ReplaceAll,
		"join":      join,
		"split":     strings.Split,

		// Formatting functions
		"indent":     indent,
		"shellQuote": shellQuote,
		"toJSON":     toJSON,
		"toYAML":     toYAML,

		// Value functions
		"kind":        kindOf,
		"keyword":     types.Keyword,
		"typeComment": func(v any) string { return types.TypeComment(kindOf(v)) },
		"default":     defaultValue,
		"isNull":      func(v any) bool { return v == nil },
	}
}

// indent adds n spaces of indentation to each line.
func indent(n int, s string) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// join joins the items of a sequence with sep. A scalar is formatted alone.
func join(sep string, v any) string {
	items, ok := v.([]any)
	if !ok {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(v any) string {
	s := ""
	if v != nil {
		s = fmt.Sprint(v)
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// kindOf returns the kind name of a plain Go value. Empty lists and dicts
// are marked as such; pass the result to keyword for the bare name.
func kindOf(v any) string {
	switch val := v.(type) {
	case nil:
		return types.Null
	case bool:
		return types.Bool
	case int, int64:
		return types.Int
	case float64:
		return types.Float
	case string:
		return types.String
	case []any:
		if len(val) == 0 {
			return types.EmptyList
		}
		return types.List
	case map[string]any:
		if len(val) == 0 {
			return types.EmptyDict
		}
		return types.Dict
	default:
		return fmt.Sprintf("%T", v)
	}
}

// defaultValue returns v, or def when v is nil or an empty string.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && s == "" {
		return def
	}
	return v
}

// Package types defines value kind names used throughout the application.
package types

// Kind name constants for consistent type representation.
const (
	// Scalar kinds
	Null   = "null"
	Bool   = "bool"
	Int    = "int"
	Float  = "float"
	String = "string"

	// Container kinds
	List = "list"
	Dict = "dict"

	// Empty container markers used in descriptions
	EmptyList = "list (empty)"
	EmptyDict = "dict (empty)"
)

// TypeComment returns a user-friendly type comment for descriptions.
func TypeComment(kind string) string {
	switch kind {
	case Null:
		return "# Type: null (empty value)"
	case Bool:
		return "# Type: bool (true/false)"
	case "":
		return ""
	default:
		return "# Type: " + kind
	}
}

// keywordOverrides maps specific kinds to their short keywords.
var keywordOverrides = map[string]string{
	EmptyList: List,
	EmptyDict: Dict,
}

// Keyword extracts just the kind keyword.
// For example "list (empty)" -> "list".
func Keyword(kind string) string {
	if kind == "" {
		return String
	}
	if keyword, ok := keywordOverrides[kind]; ok {
		return keyword
	}
	for i, ch := range kind {
		if ch == ' ' || ch == '(' {
			return kind[:i]
		}
	}
	return kind
}

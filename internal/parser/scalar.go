package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Numeric patterns for direct type detection
	intRe   = regexp.MustCompile(`^-?\d+$`)
	floatRe = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// Unescape replacements, applied in order as plain substitutions.
var (
	doubleQuoteUnescaper = []string{`\"`, `"`, `\n`, "\n", `\\`, `\`}
	singleQuoteUnescaper = []string{`\'`, `'`, `\n`, "\n", `\\`, `\`}
)

// Coerce converts a trimmed raw value into a typed scalar. Rules are applied
// in a fixed order and the first match wins; anything unmatched is returned
// as the string itself.
func Coerce(raw string) Value {
	switch raw {
	case "":
		// Only reachable for a bare "-" sequence item
		return Null()
	case "null":
		return Null()
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}

	if isWrapped(raw, '"') {
		return StringValue(unescape(raw[1:len(raw)-1], doubleQuoteUnescaper))
	}
	if isWrapped(raw, '\'') {
		return StringValue(unescape(raw[1:len(raw)-1], singleQuoteUnescaper))
	}

	if intRe.MatchString(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(n)
		}
		// Out of int64 range
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(raw)
	}

	if floatRe.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(raw)
	}

	return StringValue(raw)
}

// isWrapped reports whether s starts and ends with quote as two distinct
// characters.
func isWrapped(s string, quote byte) bool {
	return len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote
}

// unescape applies each old/new pair in sequence over the whole string.
func unescape(s string, pairs []string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		s = strings.ReplaceAll(s, pairs[i], pairs[i+1])
	}
	return s
}

package parser

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseSections(t *testing.T) {
	content := `
par:
  input: "/path/to/input.txt"
  number: 42
  flag: true
  empty_value: null
meta:
  name: "test_component"
  version: "1.0.0"
`
	doc := Parse(content)

	expected := map[string]any{
		"par": map[string]any{
			"input":       "/path/to/input.txt",
			"number":      int64(42),
			"flag":        true,
			"empty_value": nil,
		},
		"meta": map[string]any{
			"name":    "test_component",
			"version": "1.0.0",
		},
	}

	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse mismatch\ngot:  %#v\nwant: %#v", got, expected)
	}

	if keys := doc.Keys(); !reflect.DeepEqual(keys, []string{"par", "meta"}) {
		t.Errorf("Expected key order [par meta], got %v", keys)
	}
}

func TestParseSequences(t *testing.T) {
	content := `
par:
  files:
    - "file1.txt"
    - "file2.txt"
    - "file3.txt"
  numbers:
    - 1
    - 2
    - 3
`
	doc := Parse(content)

	tests := []struct {
		path     string
		expected []any
	}{
		{"par.files", []any{"file1.txt", "file2.txt", "file3.txt"}},
		{"par.numbers", []any{int64(1), int64(2), int64(3)}},
	}

	for _, tt := range tests {
		v, ok := doc.Lookup(tt.path)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.path)
			continue
		}
		if v.Kind != KindSequence {
			t.Errorf("Lookup(%q) kind = %v, want list", tt.path, v.Kind)
			continue
		}
		if got := v.Native(); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Lookup(%q) = %#v, want %#v", tt.path, got, tt.expected)
		}
	}
}

func TestParseQuotedStrings(t *testing.T) {
	content := `
par:
  quoted_string: "Hello \"World\""
  single_quoted: 'Single quotes'
  with_newline: "Line 1\nLine 2"
`
	doc := Parse(content)

	tests := []struct {
		path     string
		expected string
	}{
		{"par.quoted_string", `Hello "World"`},
		{"par.single_quoted", "Single quotes"},
		{"par.with_newline", "Line 1\nLine 2"},
	}

	for _, tt := range tests {
		v, ok := doc.Lookup(tt.path)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.path)
			continue
		}
		if v.Kind != KindString || v.Str != tt.expected {
			t.Errorf("Lookup(%q) = %#v, want string %q", tt.path, v, tt.expected)
		}
	}
}

func TestParseRootLevel(t *testing.T) {
	content := `
simple_key: simple_value
number_key: 789
bool_key: true
`
	doc := Parse(content)

	expected := map[string]any{
		"simple_key": "simple_value",
		"number_key": int64(789),
		"bool_key":   true,
	}

	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse mismatch\ngot:  %#v\nwant: %#v", got, expected)
	}
}

func TestParseEdgeCases(t *testing.T) {
	content := `
par:
  empty_string: ""
  zero: 0
  empty_array:
meta:
  empty_section:
`
	doc := Parse(content)

	expected := map[string]any{
		"par": map[string]any{
			"empty_string": "",
			"zero":         int64(0),
			"empty_array":  nil,
		},
		"meta": map[string]any{
			"empty_section": nil,
		},
	}

	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse mismatch\ngot:  %#v\nwant: %#v", got, expected)
	}
}

func TestParseSectionStickiness(t *testing.T) {
	// A column-0 key after a section header still belongs to that section.
	content := `
top: 1
meta:
  name: "x"
later: 2
other:
last: 3
`
	doc := Parse(content)

	expected := map[string]any{
		"top": int64(1),
		"meta": map[string]any{
			"name":  "x",
			"later": int64(2),
		},
		"other": map[string]any{
			"last": int64(3),
		},
	}

	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse mismatch\ngot:  %#v\nwant: %#v", got, expected)
	}
}

func TestParseSequenceRequiresDeeperIndent(t *testing.T) {
	content := "par:\n  items:\n  - a\n  - b\n"
	doc := Parse(content)

	v, ok := doc.Lookup("par.items")
	if !ok {
		t.Fatal("Expected par.items to exist")
	}
	if !v.IsNull() {
		t.Errorf("Expected par.items to be null, got %#v", v)
	}
}

func TestParseSequenceStopsAtNonItem(t *testing.T) {
	content := `
par:
  files:
    - one

    - two
    # comment ends the run
    - three
  after: x
`
	doc := Parse(content)

	v, _ := doc.Lookup("par.files")
	if got := v.Native(); !reflect.DeepEqual(got, []any{"one", "two"}) {
		t.Errorf("Expected [one two], got %#v", got)
	}

	// The dash line after the comment has no colon and is skipped.
	after, ok := doc.Lookup("par.after")
	if !ok || after.Str != "x" {
		t.Errorf("Expected par.after = x, got %#v (found=%v)", after, ok)
	}
}

func TestParseRootIdentifierIsSection(t *testing.T) {
	// A bare identifier with an empty value at column 0 is always a header,
	// so its dash lines are not collected.
	content := "files:\n  - a\n  - b\n"
	doc := Parse(content)

	v, ok := doc.Get("files")
	if !ok || v.Kind != KindSection || v.Section.Len() != 0 {
		t.Errorf("Expected files to be an empty section, got %#v", v)
	}
}

func TestParseRootSequenceWithNonIdentifierKey(t *testing.T) {
	content := "my-files:\n  - a\n  - 2.5\n"
	doc := Parse(content)

	v, ok := doc.Get("my-files")
	if !ok {
		t.Fatal("Expected my-files to exist")
	}
	if got := v.Native(); !reflect.DeepEqual(got, []any{"a", 2.5}) {
		t.Errorf("Expected [a 2.5], got %#v", got)
	}
}

func TestParseLastWriteWins(t *testing.T) {
	content := "a: 1\nb: 2\na: 3\n"
	doc := Parse(content)

	if v, _ := doc.Get("a"); v.Int != 3 {
		t.Errorf("Expected a = 3, got %#v", v)
	}
	if keys := doc.Keys(); !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("Expected key order [a b], got %v", keys)
	}
}

func TestParseSectionOverwritesScalar(t *testing.T) {
	content := "par: 1\npar:\n  x: 2\n"
	doc := Parse(content)

	v, _ := doc.Get("par")
	if v.Kind != KindSection {
		t.Fatalf("Expected par to be a section, got %v", v.Kind)
	}
	if got := v.Native(); !reflect.DeepEqual(got, map[string]any{"x": int64(2)}) {
		t.Errorf("Unexpected section content %#v", got)
	}
}

func TestParseRepeatedSectionMerges(t *testing.T) {
	content := "par:\n  a: 1\nmeta:\n  b: 2\npar:\n  c: 3\n"
	doc := Parse(content)

	v, _ := doc.Get("par")
	expected := map[string]any{"a": int64(1), "c": int64(3)}
	if got := v.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestParseSkipsUnrecognized(t *testing.T) {
	content := "just some text\n  - stray item\nkey: value\n"
	doc := Parse(content)

	expected := map[string]any{"key": "value"}
	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestParseCRLF(t *testing.T) {
	doc := Parse("par:\r\n  n: 5\r\n  list:\r\n    - x\r\n")

	expected := map[string]any{
		"par": map[string]any{
			"n":    int64(5),
			"list": []any{"x"},
		},
	}
	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestParseIdempotent(t *testing.T) {
	content := "par:\n  a: 1\n  l:\n    - x\nmeta:\n  b: 'y'\n"

	first := Parse(content)
	second := Parse(content)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical documents\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestParseIndentedFirstLine(t *testing.T) {
	doc := Parse("  par:\n    input: a\n    files:\n      - x\n")

	expected := map[string]any{
		"par": map[string]any{
			"input": "a",
			"files": []any{"x"},
		},
	}
	if got := doc.Native(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %#v, got %#v", expected, got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, content := range []string{"", "\n\n", "  \t\n", "# only a comment\n"} {
		if doc := Parse(content); doc.Len() != 0 {
			t.Errorf("Parse(%q) produced %d keys, want 0", content, doc.Len())
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("k: v\n"))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if v, _ := doc.Get("k"); v.Str != "v" {
		t.Errorf("Expected k = v, got %#v", v)
	}

	if _, err := ParseReader(failingReader{}); err == nil {
		t.Error("Expected read error to be returned")
	}
}

func TestDocumentMarshalJSON(t *testing.T) {
	doc := Parse("z: 1\npar:\n  b: \"s\"\n  a: 2.5\n  l:\n    - true\n    - null\n")

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"z":1,"par":{"b":"s","a":2.5,"l":[true,null]}}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, want %s", data, expected)
	}
}

func TestDocumentMarshalJSONIntegralFloat(t *testing.T) {
	doc := Parse("x: 3.0\ny: -0.0\nl:\n  - 10.0\n")

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"x":3.0,"y":-0.0,"l":[10.0]}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, want %s", data, expected)
	}

	// Floats must decode back as floats, not integers.
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var decoded map[string]any
	if err := dec.Decode(&decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, err := decoded["x"].(json.Number).Int64(); err == nil {
		t.Errorf("Expected x to stay a float, decoded as integer %v", decoded["x"])
	}
}

func TestDocumentMarshalYAML(t *testing.T) {
	doc := Parse("z: 1\npar:\n  b: \"true\"\n  a: 2.0\n  l:\n    - x\n")

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v\n%s", err, data)
	}

	expected := map[string]any{
		"z": 1,
		"par": map[string]any{
			"b": "true",
			"a": 2.0,
			"l": []any{"x"},
		},
	}
	if !reflect.DeepEqual(decoded, expected) {
		t.Errorf("Round trip mismatch\ngot:  %#v\nwant: %#v\n%s", decoded, expected, data)
	}

	if !strings.HasPrefix(string(data), "z: 1\npar:\n") {
		t.Errorf("Expected insertion order to be kept, got:\n%s", data)
	}
}

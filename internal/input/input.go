// Package input resolves the text handed to the parser: a literal argument,
// a file, or standard input.
package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source describes where parameter text comes from. Text is used whenever
// HasText is set, even if empty; otherwise File, then Stdin.
type Source struct {
	Text    string
	HasText bool
	File    string
	Stdin   io.Reader
}

// Read returns the decoded text for the source.
func (s Source) Read() (string, error) {
	if s.HasText {
		return s.Text, nil
	}

	if s.File != "" {
		file, err := os.Open(s.File)
		if err != nil {
			return "", fmt.Errorf("opening input file: %w", err)
		}
		defer file.Close()
		return Decode(file)
	}

	if s.Stdin == nil {
		return "", fmt.Errorf("no input provided")
	}
	return Decode(s.Stdin)
}

// Decode reads r as UTF-8, or as UTF-16 when a byte order mark says so.
// A leading UTF-8 BOM is dropped.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(content), nil
}

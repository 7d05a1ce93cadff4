package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saltyorg/params/internal/config"
	"github.com/saltyorg/params/internal/input"
	"github.com/saltyorg/params/internal/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inputFile    string
	outputFormat string
)

// addInputFlags registers the flags shared by commands that parse text.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read parameter text from file (default: argument or stdin)")
}

// addFormatFlag registers the output format flag.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputFormat, "format", "", "output format: json or yaml (default: from config)")
}

// readDocument parses the text in args[idx] when present, else --file, else
// stdin. An explicit empty argument parses as an empty document.
func readDocument(cmd *cobra.Command, args []string, idx int) (*parser.Document, error) {
	source := input.Source{
		File:  inputFile,
		Stdin: cmd.InOrStdin(),
	}
	if idx < len(args) {
		source.Text = args[idx]
		source.HasText = true
	}

	if IsVerbose() {
		switch {
		case source.HasText:
			fmt.Fprintln(os.Stderr, "Reading parameters from argument")
		case inputFile != "":
			fmt.Fprintf(os.Stderr, "Reading parameters from %s\n", inputFile)
		default:
			fmt.Fprintln(os.Stderr, "Reading parameters from stdin")
		}
	}

	content, err := source.Read()
	if err != nil {
		return nil, err
	}

	doc := parser.Parse(content)

	if IsVerbose() {
		fmt.Fprintf(os.Stderr, "Parsed %d top-level keys\n", doc.Len())
	}

	return doc, nil
}

// resolveFormat returns the --format flag value, or the configured format.
func resolveFormat(cfg *config.Config) (string, error) {
	format := cfg.Output.Format
	if outputFormat != "" {
		format = strings.ToLower(outputFormat)
	}
	switch format {
	case config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use %s or %s)", format, config.FormatJSON, config.FormatYAML)
	}
}

// writeValue encodes v to w in the given format.
func writeValue(w io.Writer, v any, format string, indent int) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

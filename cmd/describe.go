package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saltyorg/params/internal/parser"
	"github.com/saltyorg/params/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var describeCmd = &cobra.Command{
	Use:   "describe [TEXT]",
	Short: "List every parameter with its type",
	Long: `List every parameter path with its value and inferred type.

Output is grouped by section:

  # Par
  par.input: "/path/to/input.txt"  # Type: string
  par.number: 42  # Type: int`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args, 0)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), describe(doc))
		return err
	},
}

func init() {
	addInputFlags(describeCmd)
	rootCmd.AddCommand(describeCmd)
}

// describe renders one line per scalar, with a heading per section.
func describe(doc *parser.Document) string {
	titleCaser := cases.Title(language.English)
	var b strings.Builder
	lastGroup := ""

	doc.Walk(func(path string, v parser.Value) {
		group := ""
		if top, _, found := strings.Cut(path, "."); found {
			if section, ok := doc.Get(top); ok && section.Kind == parser.KindSection {
				group = top
			}
		}
		if group != lastGroup && group != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "# %s\n", titleCaser.String(strings.ReplaceAll(group, "_", " ")))
		}
		lastGroup = group

		fmt.Fprintf(&b, "%s: %s  %s\n", path, displayValue(v), types.TypeComment(describeKind(v)))
	})

	return b.String()
}

func describeKind(v parser.Value) string {
	switch {
	case v.Kind == parser.KindSection && v.Section.Len() == 0:
		return types.EmptyDict
	case v.Kind == parser.KindSequence && len(v.Items) == 0:
		return types.EmptyList
	default:
		return v.Kind.String()
	}
}

func displayValue(v parser.Value) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v.Native())
	}
	return string(data)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [TEXT]",
	Short: "Parse parameter text and print it",
	Long: `Parse parameter text and print the resulting document as JSON or YAML.

The text is taken from the argument, the --file flag, or stdin, in that order.

Supported format:
  key: value
  section:
    key: value
    list_key:
      - item1
      - item2

Once a section header is seen, every following key belongs to that section
until the next header, whatever its indentation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		format, err := resolveFormat(cfg)
		if err != nil {
			return err
		}

		doc, err := readDocument(cmd, args, 0)
		if err != nil {
			return err
		}

		return writeValue(cmd.OutOrStdout(), doc, format, cfg.Output.Indent)
	},
}

func init() {
	addInputFlags(parseCmd)
	addFormatFlag(parseCmd)
	rootCmd.AddCommand(parseCmd)
}

// argOrEmpty returns args[i], or "" when absent.
func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

package cmd

import (
	"fmt"

	"github.com/saltyorg/params/internal/parser"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get PATH [TEXT]",
	Short: "Print a single parameter",
	Long: `Print the value at a dotted path such as "par.input" or "par.files.0".

Strings are printed as-is, null as an empty line, and lists and sections
in the configured output format.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		format, err := resolveFormat(cfg)
		if err != nil {
			return err
		}

		doc, err := readDocument(cmd, args, 1)
		if err != nil {
			return err
		}

		v, ok := doc.Lookup(args[0])
		if !ok {
			return fmt.Errorf("parameter %q not found", args[0])
		}

		w := cmd.OutOrStdout()
		switch v.Kind {
		case parser.KindNull:
			_, err = fmt.Fprintln(w)
		case parser.KindString:
			_, err = fmt.Fprintln(w, v.Str)
		case parser.KindSequence, parser.KindSection:
			err = writeValue(w, v, format, cfg.Output.Indent)
		default:
			_, err = fmt.Fprintln(w, v.Native())
		}
		return err
	},
}

func init() {
	addInputFlags(getCmd)
	addFormatFlag(getCmd)
	rootCmd.AddCommand(getCmd)
}

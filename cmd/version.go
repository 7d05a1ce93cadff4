package cmd

import (
	"fmt"
	"strings"

	"github.com/saltyorg/params/internal/config"
	"github.com/saltyorg/params/internal/runtime"
	"github.com/spf13/cobra"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, git commit, and build time of params.

With --format json or --format yaml the same fields are printed as a
document, for use by scripts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFormat == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), runtime.VersionString())
			return err
		}

		format := strings.ToLower(versionFormat)
		switch format {
		case config.FormatJSON, config.FormatYAML:
		default:
			return fmt.Errorf("unsupported format %q (use %s or %s)", versionFormat, config.FormatJSON, config.FormatYAML)
		}
		return writeValue(cmd.OutOrStdout(), runtime.Current(), format, config.Default().Output.Indent)
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "", "print as json or yaml instead of plain text")
	rootCmd.AddCommand(versionCmd)
}

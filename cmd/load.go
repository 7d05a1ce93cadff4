package cmd

import (
	"fmt"
	"os"

	"github.com/saltyorg/params/internal/loader"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [PATH]",
	Short: "Load a JSON parameters file",
	Long: `Load a JSON parameters file and print the decoded tree.

When PATH is omitted the file named by the configured environment variable
(params_env, default VIASH_WORK_PARAMS) is used.`,
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

		tree, err := loadTree(argOrEmpty(args, 0), cfg.ParamsEnv)
		if err != nil {
			return err
		}

		return writeValue(cmd.OutOrStdout(), tree, format, cfg.Output.Indent)
	},
}

func init() {
	addFormatFlag(loadCmd)
	rootCmd.AddCommand(loadCmd)
}

// loadTree runs the JSON loader. Loader errors are returned unwrapped so
// their kind stays visible to the user.
func loadTree(path, envVar string) (any, error) {
	if IsVerbose() {
		if path != "" {
			fmt.Fprintf(os.Stderr, "Loading parameters from %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Loading parameters from $%s\n", envVar)
		}
	}

	return loader.LoadWith(path, envVar)
}

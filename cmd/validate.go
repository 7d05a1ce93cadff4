package cmd

import (
	"fmt"

	"github.com/saltyorg/params/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  "Validate configuration files.",
}

var validateConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate params.yml",
	Long:  "Validate the configuration file for required fields and correct format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load() calls Validate() automatically
		_, err := config.Load(GetConfigPath())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Config is valid")
		return nil
	},
}

func init() {
	validateCmd.AddCommand(validateConfigCmd)
	rootCmd.AddCommand(validateCmd)
}

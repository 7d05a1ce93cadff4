package cmd

import (
	"fmt"
	"os"

	"github.com/saltyorg/params/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "params.yml"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "params",
	Short: "Component parameter parsing tool",
	Long: `params reads the parameters handed to generated component scripts.

It performs the following core functions:
  - Parsing the simple indentation-based parameter format
  - Loading JSON parameter files from a path or environment variable
  - Looking up and describing individual parameters
  - Rendering templates against parsed parameters`,
	SilenceUsage: true, // Don't print usage on errors unrelated to flags
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// GetConfigPath returns the configured config file path.
func GetConfigPath() string {
	return cfgFile
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// loadConfig loads the config file. The default file is optional; an
// explicitly given one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(GetConfigPath())
	} else {
		cfg, err = config.LoadOptional(GetConfigPath())
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

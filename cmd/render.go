package cmd

import (
	"fmt"
	"os"

	"github.com/saltyorg/params/internal/template"
	"github.com/spf13/cobra"
)

var (
	renderParamsJSON string
	renderUseEnv     bool
	renderOutput     string
)

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE [TEXT]",
	Short: "Render a template against parameters",
	Long: `Render a Go text/template file with the parameters as data.

Parameters come from parameter text (argument, --file, or stdin), or from a
JSON parameters file with --params-json PATH or --env. Templates address
values as {{ .par.input }}.

Available functions include lower, upper, title, join, indent, shellQuote,
toJSON, toYAML, kind, typeComment, default and isNull.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var data map[string]any
		if renderParamsJSON != "" || renderUseEnv {
			tree, err := loadTree(renderParamsJSON, cfg.ParamsEnv)
			if err != nil {
				return err
			}
			data, err = template.TreeData(tree)
			if err != nil {
				return err
			}
		} else {
			doc, err := readDocument(cmd, args, 1)
			if err != nil {
				return err
			}
			data = template.DocumentData(doc)
		}

		engine := template.New(cfg.Template.MissingKey)
		if err := engine.LoadFile("main", args[0]); err != nil {
			return fmt.Errorf("loading template: %w", err)
		}

		content, err := engine.Render("main", data)
		if err != nil {
			return err
		}

		if renderOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		}

		if err := os.WriteFile(renderOutput, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if IsVerbose() {
			fmt.Fprintf(os.Stderr, "Rendered %s to %s\n", args[0], renderOutput)
		}
		return nil
	},
}

func init() {
	addInputFlags(renderCmd)
	renderCmd.Flags().StringVar(&renderParamsJSON, "params-json", "", "load parameters from a JSON file")
	renderCmd.Flags().BoolVar(&renderUseEnv, "env", false, "load JSON parameters from the configured environment variable")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the result to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

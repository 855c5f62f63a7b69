package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/labjack/ljmcheck/internal"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective ljmcheck configuration",
	Long: `This command prints the merged ljmcheck configuration: built-in defaults, then
ljmcheck.hcl in the base directory, then ljmcheck.hcl in the current directory.
The output is itself a valid ljmcheck.hcl.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBaseDir()
		if err != nil {
			return err
		}
		settings, err := loadSettings(cmd.Flags(), base)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# Base dir: %s\n", base)
		fmt.Fprintln(out, "# Merged config:")
		fmt.Fprint(out, string(convertSettingsToHCL(settings)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func convertSettingsToHCL(s internal.Settings) []byte {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	// Top-level attributes
	body.SetAttributeValue("log_level", cty.StringVal(s.LogLevel))
	body.SetAttributeValue("debug", cty.BoolVal(s.Debug))

	// Paths
	body.AppendNewline()
	paths := body.AppendNewBlock("paths", nil).Body()
	paths.SetAttributeValue("header", cty.StringVal(s.HeaderPath))
	paths.SetAttributeValue("manifest", cty.StringVal(s.ManifestPath))
	paths.SetAttributeValue("ignore", cty.StringVal(s.IgnorePath))

	// Errors
	body.AppendNewline()
	errs := body.AppendNewBlock("errors", nil).Body()
	errs.SetAttributeValue("macro", cty.StringVal(s.ErrorMacro))
	errs.SetAttributeValue("prefix", cty.StringVal(s.ErrorPrefix))

	// Registers
	body.AppendNewline()
	regs := body.AppendNewBlock("registers", nil).Body()
	if len(s.RegisterSets) == 0 {
		regs.SetAttributeValue("sets", cty.ListValEmpty(cty.String))
	} else {
		vals := make([]cty.Value, len(s.RegisterSets))
		for i, v := range s.RegisterSets {
			vals[i] = cty.StringVal(v)
		}
		regs.SetAttributeValue("sets", cty.ListVal(vals))
	}

	return file.Bytes()
}

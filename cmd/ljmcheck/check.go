package main

import (
	"github.com/labjack/ljmcheck"
	"github.com/labjack/ljmcheck/internal"
	"github.com/labjack/ljmcheck/internal/check"
	"github.com/labjack/ljmcheck/internal/report"
	"github.com/spf13/cobra"
)

var (
	headerPath   string
	manifestPath string
	ignorePath   string
	errorMacro   string
	errorPrefix  string
	registerSets []string
)

func init() {
	checkCmd.Flags().StringVar(&headerPath, "header", internal.DefaultHeaderPath, "Header file, relative to --base-dir")
	checkCmd.Flags().StringVar(&manifestPath, "manifest", internal.DefaultManifestPath, "Constants manifest, relative to --base-dir")
	checkCmd.Flags().StringVar(&ignorePath, "ignore", internal.DefaultIgnorePath, "Error names to ignore, one per line, relative to the current directory")
	checkCmd.Flags().StringVar(&errorMacro, "macro", check.DefaultErrorMacro, "Macro token that introduces an error code in the header")
	checkCmd.Flags().StringVar(&errorPrefix, "prefix", check.DefaultErrorPrefix, "Prefix every error name is expected to carry")
	checkCmd.Flags().StringSliceVar(&registerSets, "register-set", nil, "Manifest register arrays to check (default: registers,registers_beta)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the header and manifest for drift",
	Long: `Extract error codes from the header and the manifest, reconcile them in both
directions and check the manifest's register names. Diagnostics are printed
grouped by check.`,
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
		ctx, logger, err := newLogger(cmd.Context(), logFormat, settings.LogLevel)
		if err != nil {
			return err
		}

		opts := runOptions(settings, base)
		opts.Logger = logger
		internal.Debugf("header %s, manifest %s, ignore list %s", opts.HeaderPath, opts.ManifestPath, opts.IgnorePath)

		result, err := ljmcheck.Run(ctx, opts)
		if err != nil {
			return err
		}
		report.NewPrinter(cmd.OutOrStdout(), noColorFlag).Print(resultSections(result)...)
		return nil
	},
}

// resultSections groups a result the way it is printed: weird names, both
// reconciliation directions, then register names.
func resultSections(r *ljmcheck.Result) []report.Section {
	return []report.Section{
		report.NewSection("%d weird error names in %s", r.WeirdNames, r.HeaderPath),
		report.NewSection("%d errorcode match errors/warnings in %s", r.HeaderPrimary, r.HeaderPath),
		report.NewSection("%d errorcode match errors/warnings in %s", r.ManifestPrimary, r.ManifestPath),
		report.NewSection("%d register name warnings", r.Registers),
	}
}

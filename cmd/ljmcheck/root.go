package main

import (
	"os"

	"github.com/labjack/ljmcheck/internal/report"
	"github.com/spf13/cobra"
)

var (
	baseDir     string
	debugFlag   bool
	logLevel    string
	logFormat   string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "ljmcheck",
	Short: "ljmcheck reports drift between LabJackM.h and ljm_constants.json.",
	Long: `ljmcheck cross-checks the error codes declared in the LJM header against the
constants manifest, in both directions, and checks the manifest's register names.

Findings are advisory: the exit status is 0 whenever the inputs could be read and
have the expected structure, however many findings are printed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "Directory the header and manifest paths are relative to (default: directory of the ljmcheck executable)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable ljmcheck debug output (even if config fails to load)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: silent, error, warn, info, debug (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format on stderr: text or json")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.NewPrinter(os.Stderr, noColorFlag).Fatal(err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labjack/ljmcheck"
	"github.com/labjack/ljmcheck/internal"
	"github.com/spf13/pflag"
)

// resolveBaseDir returns --base-dir, or the directory holding the executable.
func resolveBaseDir() (string, error) {
	if baseDir != "" {
		return filepath.Abs(baseDir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// loadSettings layers the base directory config, the working directory config
// and the command line flags, then validates the result.
func loadSettings(flags *pflag.FlagSet, base string) (internal.Settings, error) {
	if debugFlag {
		internal.EnableDebugForce()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return internal.Settings{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	fileCfg, err := internal.LoadConfig(internal.OSFS{}, []string{base, cwd})
	if err != nil {
		return internal.Settings{}, &ljmcheck.Error{Err: err, Stage: ljmcheck.StageConfig}
	}
	s := internal.Merge(fileCfg, flagConfig(flags)).Settings()

	errs, warnings := internal.Validate(s)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return internal.Settings{}, &ljmcheck.Error{
			Err:   fmt.Errorf("config validation failed (%d error(s))", len(errs)),
			Stage: ljmcheck.StageConfig,
		}
	}
	return s, nil
}

// flagConfig turns the flags the user actually set into a config layer.
func flagConfig(flags *pflag.FlagSet) *internal.Config {
	cfg := &internal.Config{}
	if flags.Changed("log-level") {
		cfg.LogLevel = &logLevel
	}
	if flags.Changed("debug") {
		cfg.Debug = &debugFlag
	}
	if flags.Changed("header") || flags.Changed("manifest") || flags.Changed("ignore") {
		cfg.Paths = &internal.Paths{}
		if flags.Changed("header") {
			cfg.Paths.Header = &headerPath
		}
		if flags.Changed("manifest") {
			cfg.Paths.Manifest = &manifestPath
		}
		if flags.Changed("ignore") {
			cfg.Paths.Ignore = &ignorePath
		}
	}
	if flags.Changed("macro") || flags.Changed("prefix") {
		cfg.Errors = &internal.Errors{}
		if flags.Changed("macro") {
			cfg.Errors.Macro = &errorMacro
		}
		if flags.Changed("prefix") {
			cfg.Errors.Prefix = &errorPrefix
		}
	}
	if flags.Changed("register-set") {
		cfg.Registers = &internal.Registers{Sets: registerSets}
	}
	return cfg
}

// runOptions resolves header and manifest paths against base. The ignore list
// stays relative to the working directory.
func runOptions(s internal.Settings, base string) ljmcheck.Options {
	return ljmcheck.Options{
		FS:           ljmcheck.NewOSFS(),
		HeaderPath:   resolveAgainst(base, s.HeaderPath),
		ManifestPath: resolveAgainst(base, s.ManifestPath),
		IgnorePath:   s.IgnorePath,
		ErrorMacro:   s.ErrorMacro,
		ErrorPrefix:  s.ErrorPrefix,
		RegisterSets: s.RegisterSets,
	}
}

func resolveAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// newLogger builds the user-facing logger selected by --log-format.
func newLogger(ctx context.Context, format, level string) (context.Context, ljmcheck.Logger, error) {
	lvl := ljmcheck.ParseLevel(level)
	switch format {
	case "text":
		return ctx, ljmcheck.NewHCLogger(os.Stderr, lvl), nil
	case "json":
		return ljmcheck.WithTFLog(ctx, lvl), ljmcheck.TFLogLogger{}, nil
	default:
		return ctx, nil, fmt.Errorf("--log-format must be 'text' or 'json' (got %q)", format)
	}
}

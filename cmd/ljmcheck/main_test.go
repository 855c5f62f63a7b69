package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labjack/ljmcheck"
	"github.com/labjack/ljmcheck/internal"
	"github.com/labjack/ljmcheck/internal/check"
	"github.com/spf13/pflag"
)

func TestConvertSettingsToHCL_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings internal.Settings
	}{
		{
			name:     "defaults",
			settings: (&internal.Config{}).Settings(),
		},
		{
			name: "custom values and no register sets",
			settings: internal.Settings{
				LogLevel:     "debug",
				Debug:        true,
				HeaderPath:   "include/LabJackM.h",
				ManifestPath: "/abs/ljm_constants.json",
				IgnorePath:   "ignore.txt",
				ErrorMacro:   "MY_ERROR",
				ErrorPrefix:  "MYE_",
				RegisterSets: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := convertSettingsToHCL(tt.settings)
			cfg, err := internal.ParseConfig(src, "generated.hcl")
			if err != nil {
				t.Fatalf("generated HCL does not parse: %v\n%s", err, src)
			}
			if diff := cmp.Diff(tt.settings, cfg.Settings()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAgainst(t *testing.T) {
	base := filepath.FromSlash("/opt/ljm/tools")
	tests := []struct {
		path     string
		expected string
	}{
		{"../header_files/api/LabJackM.h", filepath.FromSlash("/opt/ljm/header_files/api/LabJackM.h")},
		{"ljm_constants.json", filepath.FromSlash("/opt/ljm/tools/ljm_constants.json")},
		{filepath.FromSlash("/etc/ljm/../ljm.json"), filepath.FromSlash("/etc/ljm.json")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := resolveAgainst(base, tt.path); got != tt.expected {
				t.Errorf("resolveAgainst() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRunOptions_IgnoreStaysRelative(t *testing.T) {
	s := (&internal.Config{}).Settings()
	opts := runOptions(s, filepath.FromSlash("/opt/ljm/tools"))

	if opts.IgnorePath != internal.DefaultIgnorePath {
		t.Errorf("expected ignore path to stay relative, got %q", opts.IgnorePath)
	}
	if !filepath.IsAbs(opts.HeaderPath) || !filepath.IsAbs(opts.ManifestPath) {
		t.Errorf("expected absolute header and manifest paths, got %q and %q", opts.HeaderPath, opts.ManifestPath)
	}
}

func TestFlagConfig_OnlyChangedFlags(t *testing.T) {
	savedPrefix, savedHeader := errorPrefix, headerPath
	t.Cleanup(func() { errorPrefix, headerPath = savedPrefix, savedHeader })

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&errorPrefix, "prefix", "LJME_", "")
	flags.StringVar(&headerPath, "header", internal.DefaultHeaderPath, "")
	if err := flags.Parse([]string{"--prefix", "MYE_"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := flagConfig(flags)
	if cfg.Errors == nil || cfg.Errors.Prefix == nil || *cfg.Errors.Prefix != "MYE_" {
		t.Errorf("expected prefix override, got %+v", cfg.Errors)
	}
	if cfg.Errors != nil && cfg.Errors.Macro != nil {
		t.Errorf("expected macro to stay unset, got %q", *cfg.Errors.Macro)
	}
	if cfg.Paths != nil {
		t.Errorf("expected no path overrides, got %+v", cfg.Paths)
	}
	if cfg.LogLevel != nil || cfg.Registers != nil {
		t.Errorf("expected unset flags to stay unset, got %+v", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()
	if _, logger, err := newLogger(ctx, "text", "info"); err != nil || logger == nil {
		t.Errorf("text logger: %v", err)
	}
	if _, logger, err := newLogger(ctx, "json", "warn"); err != nil {
		t.Errorf("json logger: %v", err)
	} else if _, ok := logger.(ljmcheck.TFLogLogger); !ok {
		t.Errorf("expected TFLogLogger, got %T", logger)
	}
	if _, _, err := newLogger(ctx, "yaml", "warn"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestResultSections(t *testing.T) {
	result := &ljmcheck.Result{
		HeaderPath:   "LabJackM.h",
		ManifestPath: "ljm_constants.json",
		HeaderPrimary: []ljmcheck.Diagnostic{
			{Kind: check.UnmatchedEntry, Entry: ljmcheck.ErrorEntry{Code: 5, Name: "LJME_FOO"}},
		},
	}

	sections := resultSections(result)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}
	if sections[1].Title != "1 errorcode match errors/warnings in LabJackM.h" {
		t.Errorf("unexpected title %q", sections[1].Title)
	}
	if !strings.HasSuffix(sections[2].Title, "ljm_constants.json") || len(sections[2].Diags) != 0 {
		t.Errorf("unexpected manifest section %+v", sections[2])
	}
}

func TestCheckFlagDefaults(t *testing.T) {
	tests := []struct {
		flag     string
		expected string
	}{
		{"macro", check.DefaultErrorMacro},
		{"prefix", check.DefaultErrorPrefix},
		{"header", internal.DefaultHeaderPath},
		{"manifest", internal.DefaultManifestPath},
		{"ignore", internal.DefaultIgnorePath},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := checkCmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not registered", tt.flag)
			}
			if f.DefValue != tt.expected {
				t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.expected)
			}
		})
	}
}

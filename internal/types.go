// types.go
// Core HCL struct definitions for ljmcheck
package internal

import (
	"slices"

	"github.com/labjack/ljmcheck/internal/check"
)

const (
	// ConfigFileName is the name of the configuration file
	// that contains the configuration for ljmcheck.
	ConfigFileName = "ljmcheck.hcl"

	DefaultHeaderPath   = "../header_files/api/LabJackM.h"
	DefaultManifestPath = "../../ljm_constants/LabJack/LJM/ljm_constants.json"
	DefaultIgnorePath   = "error_codes_to_ignore.txt"
	DefaultLogLevel     = "warn"
)

// Config represents the top-level configuration for ljmcheck. Every field is
// optional so that layered files only override what they set.
type Config struct {
	LogLevel  *string    `hcl:"log_level,optional"` // "silent", "error", "warn", "info", "debug"
	Debug     *bool      `hcl:"debug,optional"`
	Paths     *Paths     `hcl:"paths,block"`
	Errors    *Errors    `hcl:"errors,block"`
	Registers *Registers `hcl:"registers,block"`
}

// Paths locates the three inputs. Header and manifest are relative to the base
// directory, the ignore list to the working directory.
type Paths struct {
	Header   *string `hcl:"header,optional"`
	Manifest *string `hcl:"manifest,optional"`
	Ignore   *string `hcl:"ignore,optional"`
}

// Errors describes how error codes are declared.
type Errors struct {
	Macro  *string `hcl:"macro,optional"`
	Prefix *string `hcl:"prefix,optional"`
}

// Registers lists the manifest register arrays to check.
type Registers struct {
	Sets []string `hcl:"sets,optional"`
}

// Settings is the fully resolved configuration used for a run.
type Settings struct {
	LogLevel     string
	Debug        bool
	HeaderPath   string
	ManifestPath string
	IgnorePath   string
	ErrorMacro   string
	ErrorPrefix  string
	RegisterSets []string
}

// DefaultConfig returns a Config with every field set to its built-in value.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: ptr(DefaultLogLevel),
		Debug:    ptr(false),
		Paths: &Paths{
			Header:   ptr(DefaultHeaderPath),
			Manifest: ptr(DefaultManifestPath),
			Ignore:   ptr(DefaultIgnorePath),
		},
		Errors: &Errors{
			Macro:  ptr(check.DefaultErrorMacro),
			Prefix: ptr(check.DefaultErrorPrefix),
		},
		Registers: &Registers{
			Sets: slices.Clone(check.DefaultRegisterSets),
		},
	}
}

// Settings resolves cfg on top of the defaults.
func (cfg *Config) Settings() Settings {
	merged := mergeConfigs([]*Config{DefaultConfig(), cfg})
	return Settings{
		LogLevel:     *merged.LogLevel,
		Debug:        *merged.Debug,
		HeaderPath:   *merged.Paths.Header,
		ManifestPath: *merged.Paths.Manifest,
		IgnorePath:   *merged.Paths.Ignore,
		ErrorMacro:   *merged.Errors.Macro,
		ErrorPrefix:  *merged.Errors.Prefix,
		RegisterSets: merged.Registers.Sets,
	}
}

func ptr[T any](v T) *T {
	return &v
}

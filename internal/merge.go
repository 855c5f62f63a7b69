// merge.go
// Config merging logic for ljmcheck
package internal

import "slices"

// mergeConfigs merges a slice of Configs, from least to most specific, into a
// new Config. Nil entries are skipped and the inputs are not modified.
func mergeConfigs(configs []*Config) *Config {
	merged := &Config{}
	for _, cfg := range configs {
		if cfg != nil {
			mergeConfigsPair(merged, cfg)
		}
	}
	return merged
}

// mergeConfigsPair merges two Config objects: add takes precedence over base.
//
// 1. Top-level attributes are overwritten by add if set.
// 2. Blocks are merged attribute by attribute.
// 3. Register sets are replaced as a whole, not appended.
func mergeConfigsPair(base *Config, add *Config) {
	if add.LogLevel != nil {
		base.LogLevel = ptr(*add.LogLevel)
	}
	if add.Debug != nil {
		base.Debug = ptr(*add.Debug)
	}

	if add.Paths != nil {
		if base.Paths == nil {
			base.Paths = &Paths{}
		}
		overwrite(&base.Paths.Header, add.Paths.Header)
		overwrite(&base.Paths.Manifest, add.Paths.Manifest)
		overwrite(&base.Paths.Ignore, add.Paths.Ignore)
	}

	if add.Errors != nil {
		if base.Errors == nil {
			base.Errors = &Errors{}
		}
		overwrite(&base.Errors.Macro, add.Errors.Macro)
		overwrite(&base.Errors.Prefix, add.Errors.Prefix)
	}

	// A registers block without a sets attribute decodes to a nil slice and
	// leaves base alone; an explicit empty list clears it.
	if add.Registers != nil && add.Registers.Sets != nil {
		base.Registers = &Registers{Sets: slices.Clone(add.Registers.Sets)}
	}
}

func overwrite(dst **string, src *string) {
	if src != nil {
		*dst = ptr(*src)
	}
}

// Merge merges configs from least to most specific, see mergeConfigs.
func Merge(configs ...*Config) *Config {
	return mergeConfigs(configs)
}

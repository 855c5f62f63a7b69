package internal

import (
	"fmt"
	"regexp"
)

var (
	validLogLevels = []string{"silent", "error", "warn", "info", "debug"}
	identifier     = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// Validate checks resolved settings before a run. Errors make the run
// meaningless; warnings are worth printing but do not stop it.
func Validate(s Settings) (errs []error, warnings []string) {
	if !isValidLogLevel(s.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of %q (got %q)", validLogLevels, s.LogLevel))
	}
	if !identifier.MatchString(s.ErrorMacro) {
		errs = append(errs, fmt.Errorf("errors.macro must be a C identifier (got %q)", s.ErrorMacro))
	}
	if s.ErrorPrefix == "" {
		errs = append(errs, fmt.Errorf("errors.prefix must not be empty"))
	}
	for _, p := range []struct{ name, value string }{
		{"paths.header", s.HeaderPath},
		{"paths.manifest", s.ManifestPath},
		{"paths.ignore", s.IgnorePath},
	} {
		if p.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", p.name))
		}
	}

	seen := map[string]bool{}
	for _, set := range s.RegisterSets {
		if set == "" {
			errs = append(errs, fmt.Errorf("registers.sets contains an empty name"))
			continue
		}
		if seen[set] {
			errs = append(errs, fmt.Errorf("registers.sets lists %q more than once", set))
		}
		seen[set] = true
	}
	if len(s.RegisterSets) == 0 {
		warnings = append(warnings, "registers.sets is empty, register names will not be checked")
	}
	return
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}

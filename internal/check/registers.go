package check

import (
	"regexp"
	"strings"
	"unicode"
)

// rangedRegisterName matches a #(low:high) range preceded by a name that
// starts with a letter. It is unanchored: one well-formed range anywhere in
// the name is enough.
var rangedRegisterName = regexp.MustCompile(`[a-zA-Z]+\w*#\(\d+:\d+\)\w*`)

// ValidRangeNotation reports whether a name containing '#' contains a
// well-formed ranged register. Names without '#' are always valid.
func ValidRangeNotation(name string) bool {
	if !strings.Contains(name, "#") {
		return true
	}
	return rangedRegisterName.MatchString(name)
}

// HasSpace reports whether name contains any whitespace.
func HasSpace(name string) bool {
	return strings.ContainsFunc(name, unicode.IsSpace)
}

// ValidateRegisterNames checks one register set. All space findings come
// before all range notation findings.
func ValidateRegisterNames(set string, regs []RegisterEntry) []Diagnostic {
	var diags []Diagnostic
	for _, r := range regs {
		if HasSpace(r.Name) {
			diags = append(diags, Diagnostic{Kind: SpaceInName, Source: set, Register: r.Name})
		}
	}
	for _, r := range regs {
		if !ValidRangeNotation(r.Name) {
			diags = append(diags, Diagnostic{Kind: InvalidRangeNotation, Source: set, Register: r.Name})
		}
	}
	return diags
}

// ValidateRegisterSets runs ValidateRegisterNames over every set in order.
func ValidateRegisterSets(sets []RegisterSet) []Diagnostic {
	var diags []Diagnostic
	for _, s := range sets {
		diags = append(diags, ValidateRegisterNames(s.Name, s.Registers)...)
	}
	return diags
}

package check

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultErrorMacro is the token that introduces an error code in LabJackM.h.
	DefaultErrorMacro = "LJM_ERROR_CODE"
	// DefaultErrorPrefix is the prefix every well-formed error name carries.
	DefaultErrorPrefix = "LJME_"
)

// Assignment is one `<MACRO> <NAME> = <CODE>;` statement found in header text.
type Assignment struct {
	Name string
	Code int
	Line string
}

// MacroPattern builds the assignment pattern for an error macro token. The first
// submatch is the name and the second the decimal code.
func MacroPattern(macro string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(macro) + `\s*(\w+)\s*=\s*(\d+)\s*;`)
}

// ExtractAssignments scans text line by line and returns every match of pattern
// in source order.
func ExtractAssignments(text string, pattern *regexp.Regexp) ([]Assignment, error) {
	var out []Assignment
	for _, line := range strings.SplitAfter(text, "\n") {
		for _, m := range pattern.FindAllStringSubmatch(line, -1) {
			code, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("error code %s for %s: %w", m[2], m[1], err)
			}
			out = append(out, Assignment{Name: m[1], Code: code, Line: line})
		}
	}
	return out, nil
}

// HeaderOptions controls header extraction.
type HeaderOptions struct {
	Macro  string // DefaultErrorMacro when empty
	Prefix string // DefaultErrorPrefix when empty
	Ignore IgnoreSet
}

func (o HeaderOptions) macro() string {
	if o.Macro == "" {
		return DefaultErrorMacro
	}
	return o.Macro
}

func (o HeaderOptions) prefix() string {
	if o.Prefix == "" {
		return DefaultErrorPrefix
	}
	return o.Prefix
}

// ExtractHeaderErrors turns comment-stripped header text into error entries.
// Names without the expected prefix produce a WeirdName diagnostic but are kept.
// Entries with code zero or an ignored name are dropped.
func ExtractHeaderErrors(stripped string, opts HeaderOptions) ([]ErrorEntry, []Diagnostic, error) {
	assignments, err := ExtractAssignments(stripped, MacroPattern(opts.macro()))
	if err != nil {
		return nil, nil, err
	}

	var (
		entries []ErrorEntry
		diags   []Diagnostic
	)
	for _, a := range assignments {
		entry := ErrorEntry{Code: a.Code, Name: a.Name}
		if !strings.HasPrefix(a.Name, opts.prefix()) {
			diags = append(diags, Diagnostic{
				Kind:  WeirdName,
				Entry: entry,
				Line:  strings.TrimRight(a.Line, "\r\n"),
			})
		}
		if a.Code == 0 || opts.Ignore.Contains(a.Name) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, diags, nil
}

// ParseHeader strips comments from raw header source and extracts its errors.
func ParseHeader(raw string, opts HeaderOptions) ([]ErrorEntry, []Diagnostic, error) {
	return ExtractHeaderErrors(StripComments(raw), opts)
}

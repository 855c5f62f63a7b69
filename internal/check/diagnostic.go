// Package check holds the drift checks between the LJM header and the constants
// manifest: comment stripping, error extraction, reconciliation and register
// name validation.
package check

import "fmt"

// Kind identifies the class of a Diagnostic.
type Kind int

const (
	UnmatchedEntry Kind = iota + 1
	CodeMismatch
	NameMismatch
	WeirdName
	SpaceInName
	InvalidRangeNotation
)

func (k Kind) String() string {
	switch k {
	case UnmatchedEntry:
		return "UnmatchedEntry"
	case CodeMismatch:
		return "CodeMismatch"
	case NameMismatch:
		return "NameMismatch"
	case WeirdName:
		return "WeirdName"
	case SpaceInName:
		return "SpaceInName"
	case InvalidRangeNotation:
		return "InvalidRangeNotation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrorEntry is one declared (code, name) error pair.
type ErrorEntry struct {
	Code int
	Name string
}

func (e ErrorEntry) String() string {
	return fmt.Sprintf("%d - %s", e.Code, e.Name)
}

// RegisterEntry is the part of a manifest register definition that is checked.
type RegisterEntry struct {
	Name string
}

// Diagnostic is an advisory finding. Which fields are set depends on Kind:
// reconciliation kinds carry Entry (and Counterpart for mismatches), WeirdName
// carries Entry and Line, register kinds carry Register.
type Diagnostic struct {
	Kind        Kind
	Source      string // collection or register set the diagnostic was found in
	Entry       ErrorEntry
	Counterpart *ErrorEntry
	Register    string
	Line        string
}

// Message renders the diagnostic as a single human readable line.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case UnmatchedEntry:
		return fmt.Sprintf("unmatched: %s", d.Entry)
	case CodeMismatch:
		return fmt.Sprintf("errorcode match, but not error name: %s (b is %s)", d.Entry, d.counterpart())
	case NameMismatch:
		return fmt.Sprintf("error name match, but not errorcode: %s (b is %s)", d.Entry, d.counterpart())
	case WeirdName:
		return fmt.Sprintf("Weird errorname: %s. line: %s", d.Entry.Name, d.Line)
	case SpaceInName:
		return fmt.Sprintf("Register has a space in name: %s", d.Register)
	case InvalidRangeNotation:
		return fmt.Sprintf("Register name has invalid range notation: %s", d.Register)
	default:
		return d.Kind.String()
	}
}

func (d Diagnostic) counterpart() string {
	if d.Counterpart == nil {
		return "<none>"
	}
	return d.Counterpart.String()
}

package check

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultRegisterSets are the manifest arrays whose register names are checked.
var DefaultRegisterSets = []string{"registers", "registers_beta"}

// MissingFieldError reports a manifest element that lacks a required field.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s has no %q element", e.Element, e.Field)
}

// RegisterSet is one named array of register definitions.
type RegisterSet struct {
	Name      string
	Registers []RegisterEntry
}

// Manifest is the validated subset of ljm_constants.json the checks need.
type Manifest struct {
	Errors       []ErrorEntry
	RegisterSets []RegisterSet
}

type manifestError struct {
	Error  *int    `json:"error"`
	String *string `json:"string"`
}

type manifestRegister struct {
	Name *string `json:"name"`
}

// ParseManifest decodes data and validates every field the checks rely on:
// the top-level "errors" array with "string" and "error" on each element, and
// each named register set with "name" on each element.
func ParseManifest(data []byte, registerSets []string) (*Manifest, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	rawErrors, ok := top["errors"]
	if !ok {
		return nil, &MissingFieldError{Element: "manifest", Field: "errors"}
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(rawErrors, &elements); err != nil {
		return nil, fmt.Errorf("decoding manifest errors: %w", err)
	}

	m := &Manifest{}
	for i, raw := range elements {
		var e manifestError
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", describe("errors", i, raw), err)
		}
		if e.String == nil {
			return nil, &MissingFieldError{Element: describe("errors", i, raw), Field: "string"}
		}
		if e.Error == nil {
			return nil, &MissingFieldError{Element: describe("errors", i, raw), Field: "error"}
		}
		m.Errors = append(m.Errors, ErrorEntry{Code: *e.Error, Name: *e.String})
	}

	for _, set := range registerSets {
		regs, err := decodeRegisterSet(top, set)
		if err != nil {
			return nil, err
		}
		m.RegisterSets = append(m.RegisterSets, RegisterSet{Name: set, Registers: regs})
	}
	return m, nil
}

func decodeRegisterSet(top map[string]json.RawMessage, set string) ([]RegisterEntry, error) {
	rawSet, ok := top[set]
	if !ok {
		return nil, &MissingFieldError{Element: "manifest", Field: set}
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(rawSet, &elements); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", set, err)
	}
	regs := make([]RegisterEntry, 0, len(elements))
	for i, raw := range elements {
		var r manifestRegister
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", describe(set, i, raw), err)
		}
		if r.Name == nil {
			return nil, &MissingFieldError{Element: describe(set, i, raw), Field: "name"}
		}
		regs = append(regs, RegisterEntry{Name: *r.Name})
	}
	return regs, nil
}

// ErrorEntries returns the manifest errors whose names start with prefix, in
// manifest order. No other filtering is applied.
func (m *Manifest) ErrorEntries(prefix string) []ErrorEntry {
	if prefix == "" {
		prefix = DefaultErrorPrefix
	}
	var out []ErrorEntry
	for _, e := range m.Errors {
		if strings.HasPrefix(e.Name, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// describe names an array element for error messages, e.g. `errors[3] {"error":1}`.
func describe(array string, index int, raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fmt.Sprintf("%s[%d]", array, index)
	}
	return fmt.Sprintf("%s[%d] %s", array, index, buf.String())
}

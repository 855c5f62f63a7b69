package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	sdkdiag "github.com/hashicorp/terraform-plugin-sdk/v2/diag"

	"github.com/labjack/ljmcheck/internal/check"
)

func TestNewSection(t *testing.T) {
	findings := []check.Diagnostic{
		{Kind: check.UnmatchedEntry, Entry: check.ErrorEntry{Code: 5, Name: "LJME_FOO"}},
		{Kind: check.SpaceInName, Register: "MY REGISTER"},
	}
	s := NewSection("%d errorcode match errors/warnings in %s", findings, "LabJackM.h")

	if s.Title != "2 errorcode match errors/warnings in LabJackM.h" {
		t.Errorf("unexpected title %q", s.Title)
	}
	if s.Diags.WarningsCount() != 2 {
		t.Fatalf("expected 2 warnings, got %d", s.Diags.WarningsCount())
	}
	if got := s.Diags[0].Summary(); got != "UnmatchedEntry" {
		t.Errorf("expected kind as summary, got %q", got)
	}
	if got := s.Diags[1].Detail(); got != "Register has a space in name: MY REGISTER" {
		t.Errorf("expected message as detail, got %q", got)
	}
}

func TestPrinter_Print(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, true)

	p.Print(
		NewSection("%d errorcode match errors/warnings in LabJackM.h", []check.Diagnostic{
			{Kind: check.UnmatchedEntry, Entry: check.ErrorEntry{Code: 5, Name: "LJME_FOO"}},
		}),
		NewSection("%d errorcode match errors/warnings in ljm_constants.json", nil),
	)

	want := "1 errorcode match errors/warnings in LabJackM.h\n    unmatched: 5 - LJME_FOO\n"
	if got := buf.String(); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestFatalDiagnostics(t *testing.T) {
	missing := fmt.Errorf("manifest x.json: %w", &check.MissingFieldError{Element: "errors[0] {}", Field: "string"})

	diags := FatalDiagnostics(missing)
	if !diags.HasError() || len(diags) != 1 {
		t.Fatalf("expected one error diagnostic, got %v", diags)
	}
	if diags[0].Summary != `manifest element is missing "string"` {
		t.Errorf("unexpected summary %q", diags[0].Summary)
	}

	plain := FatalDiagnostics(errors.New("open LabJackM.h: no such file"))
	if len(plain) != 1 || plain[0].Severity != sdkdiag.Error || plain[0].Summary != "open LabJackM.h: no such file" {
		t.Errorf("unexpected diagnostics %v", plain)
	}
}

func TestPrinter_Fatal(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf, true).Fatal(&check.MissingFieldError{Element: "manifest", Field: "errors"})

	want := "Error: manifest element is missing \"errors\"\n    manifest has no \"errors\" element\n"
	if got := buf.String(); got != want {
		t.Errorf("Fatal() = %q, want %q", got, want)
	}
}

// Package report renders check results for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	fwdiag "github.com/hashicorp/terraform-plugin-framework/diag"
	sdkdiag "github.com/hashicorp/terraform-plugin-sdk/v2/diag"

	"github.com/labjack/ljmcheck/internal/check"
)

// Section is a titled group of findings printed together.
type Section struct {
	Title string
	Diags fwdiag.Diagnostics
}

// AppendFW adds each finding to diags as a warning whose summary is the
// finding kind and whose detail is its message.
func AppendFW(diags fwdiag.Diagnostics, findings []check.Diagnostic) fwdiag.Diagnostics {
	for _, f := range findings {
		diags.AddWarning(f.Kind.String(), f.Message())
	}
	return diags
}

// NewSection builds a section from findings. The title is rendered from format
// with the number of findings as the first argument, followed by args.
func NewSection(format string, findings []check.Diagnostic, args ...any) Section {
	return Section{
		Title: fmt.Sprintf(format, append([]any{len(findings)}, args...)...),
		Diags: AppendFW(nil, findings),
	}
}

// Printer writes sections and fatal errors.
type Printer struct {
	out     io.Writer
	heading *color.Color
	fatal   *color.Color
}

// NewPrinter returns a Printer writing to w. Color follows fatih/color's
// terminal detection unless noColor is set.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:     w,
		heading: color.New(color.FgYellow, color.Bold),
		fatal:   color.New(color.FgRed, color.Bold),
	}
	if noColor {
		p.heading.DisableColor()
		p.fatal.DisableColor()
	}
	return p
}

// Print writes every non-empty section: its title, then one indented line per
// diagnostic. Empty sections print nothing.
func (p *Printer) Print(sections ...Section) {
	for _, s := range sections {
		if len(s.Diags) == 0 {
			continue
		}
		p.heading.Fprintln(p.out, s.Title)
		for _, d := range s.Diags {
			fmt.Fprintf(p.out, "    %s\n", d.Detail())
		}
	}
}

// FatalDiagnostics converts a fatal run error into SDK error diagnostics.
// Missing manifest fields get a dedicated summary naming the element.
func FatalDiagnostics(err error) sdkdiag.Diagnostics {
	var missing *check.MissingFieldError
	if errors.As(err, &missing) {
		return sdkdiag.Diagnostics{{
			Severity: sdkdiag.Error,
			Summary:  fmt.Sprintf("manifest element is missing %q", missing.Field),
			Detail:   err.Error(),
		}}
	}
	return sdkdiag.FromErr(err)
}

// Fatal prints err as error diagnostics.
func (p *Printer) Fatal(err error) {
	for _, d := range FatalDiagnostics(err) {
		p.fatal.Fprint(p.out, "Error: ")
		fmt.Fprintln(p.out, d.Summary)
		if d.Detail != "" {
			fmt.Fprintf(p.out, "    %s\n", d.Detail)
		}
	}
}

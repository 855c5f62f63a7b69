package check

// Reconcile compares a against b and returns a diagnostic for each entry of a
// that b does not confirm. The scan over b always runs to the end, so an entry
// can collect mismatch diagnostics from several elements of b, but only until
// an exact match has been seen. Call it twice with the arguments swapped to
// cover both directions.
func Reconcile(source string, a, b []ErrorEntry) []Diagnostic {
	var diags []Diagnostic
	for _, ea := range a {
		found := false
		for _, eb := range b {
			if ea.Code == eb.Code && ea.Name == eb.Name {
				found = true
			}
			if !found && ea.Code == eb.Code {
				diags = append(diags, mismatch(CodeMismatch, source, ea, eb))
			}
			if !found && ea.Name == eb.Name {
				diags = append(diags, mismatch(NameMismatch, source, ea, eb))
			}
		}
		if !found {
			diags = append(diags, Diagnostic{Kind: UnmatchedEntry, Source: source, Entry: ea})
		}
	}
	return diags
}

func mismatch(kind Kind, source string, a, b ErrorEntry) Diagnostic {
	return Diagnostic{Kind: kind, Source: source, Entry: a, Counterpart: &b}
}

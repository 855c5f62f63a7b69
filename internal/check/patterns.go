package check

import "regexp"

// Pattern represents a single text rewrite rule.
type Pattern struct {
	Name        string
	Description string
	Regex       *regexp.Regexp
	Template    string // replacement, may be empty to delete the match
}

// PatternGroup represents an ordered set of related rewrite rules.
type PatternGroup struct {
	Name     string
	Patterns []Pattern
}

// Apply runs every pattern of the group over content, in declaration order.
func (g PatternGroup) Apply(content string) string {
	for _, p := range g.Patterns {
		if p.Regex == nil {
			continue
		}
		content = p.Regex.ReplaceAllString(content, p.Template)
	}
	return content
}

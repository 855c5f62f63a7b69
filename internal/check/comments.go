package check

import "regexp"

// CreateCommentPatterns returns the rules that remove C comments. Block comments
// go first so a "//" inside a block comment cannot eat the closing marker.
func CreateCommentPatterns() PatternGroup {
	return PatternGroup{
		Name: "Comments",
		Patterns: []Pattern{
			{
				Name:        "BlockComment",
				Description: "/* ... */, possibly spanning lines",
				Regex:       regexp.MustCompile(`(?s)/\*.*?\*/`),
			},
			{
				Name:        "LineComment",
				Description: "// to end of line",
				Regex:       regexp.MustCompile(`//[^\n]*`),
			},
		},
	}
}

var commentPatterns = CreateCommentPatterns()

// StripComments removes every block and line comment from header source.
// Comments are replaced by nothing, so tokens around a removed comment can join.
func StripComments(text string) string {
	return commentPatterns.Apply(text)
}

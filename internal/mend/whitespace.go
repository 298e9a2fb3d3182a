package mend

import "regexp"

// Four or more consecutive newlines are runaway vertical whitespace; three
// newlines (two blank lines) and below are legitimate block spacing.
var blankRun = regexp.MustCompile(`\n{4,}`)

// CollapseBlankLines bounds runaway blank-line runs to exactly two blank
// lines. It runs after the structural passes, and its threshold sits above
// the single blank line the table pass inserts, so that padding survives.
func CollapseBlankLines(s string) string {
	return blankRun.ReplaceAllString(s, "\n\n\n")
}

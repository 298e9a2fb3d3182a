package mend

import "strings"

// isFenceDelimiter reports whether line opens or closes a fenced code block:
// optional leading indentation followed by at least three backticks.
func isFenceDelimiter(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```")
}

// mapLines applies fn to every line outside fenced code blocks and rejoins
// the document. Fence delimiters and fence contents pass through verbatim so
// no repair heuristic ever rewrites code.
func mapLines(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	inFence := false
	for i, line := range lines {
		if isFenceDelimiter(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

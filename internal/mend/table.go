package mend

import "strings"

// isTableRow reports whether line is pipe-delimited table content: it starts
// and ends with a pipe and has at least one interior pipe.
func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") &&
		strings.HasSuffix(trimmed, "|") &&
		strings.Count(trimmed, "|") >= 3
}

// isSeparatorRow reports whether line is a header-separator row: pipes,
// hyphens, colons and whitespace only, with at least one hyphen.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") || !strings.Contains(trimmed, "-") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// RebuildTables is a line-oriented state machine with two states, outside a
// table and inside one. Contiguous pipe-delimited rows are buffered; when the
// run ends the block is flushed with a synthesized separator row if the
// second row is not already one, padded by exactly one blank line on each
// side. Fenced code blocks pass through unclassified.
func RebuildTables(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+2)
	var buf []string

	inFence := false
	// Set after a flush so the blank line the input already carried after
	// the table is not emitted on top of the one the flush just wrote.
	skipBlank := false

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) != "" {
			out = append(out, "")
		}
		out = append(out, withSeparatorRow(buf)...)
		out = append(out, "")
		buf = buf[:0]
		skipBlank = true
	}

	for _, line := range lines {
		if inFence {
			out = append(out, line)
			if isFenceDelimiter(line) {
				inFence = false
			}
			continue
		}
		if isFenceDelimiter(line) {
			flush()
			skipBlank = false
			out = append(out, line)
			inFence = true
			continue
		}

		switch {
		case isTableRow(line) && !isSeparatorRow(line):
			buf = append(buf, line)
		case isSeparatorRow(line) && len(buf) > 0:
			buf = append(buf, line)
		default:
			flush()
			if skipBlank && strings.TrimSpace(line) == "" {
				skipBlank = false
				continue
			}
			skipBlank = false
			out = append(out, line)
		}
	}
	flush()

	return strings.Join(out, "\n")
}

// withSeparatorRow returns the block with a valid separator as its second
// row, synthesizing one sized to the header's column count when missing.
// Single-row blocks pass through: there is no body to separate from.
func withSeparatorRow(rows []string) []string {
	if len(rows) < 2 || isSeparatorRow(rows[1]) {
		return rows
	}
	cols := strings.Count(rows[0], "|") - 1
	sep := "|" + strings.Repeat(" --- |", cols)

	block := make([]string, 0, len(rows)+1)
	block = append(block, rows[0], sep)
	return append(block, rows[1:]...)
}

package mend

import (
	"regexp"
	"strings"
)

var (
	// Triple-or-more asterisk runs around a span collapse to standard strong
	// emphasis: ***text*** and the lopsided ***text:** both become **text:**
	// style spans with the inner text intact.
	tripleStarBoth  = regexp.MustCompile(`\*{3,}([^*]+?)\*{3,}`)
	tripleStarOpen  = regexp.MustCompile(`\*{3,}([^*]+?)\*\*`)
	tripleStarClose = regexp.MustCompile(`\*\*([^*]+?)\*{3,}`)

	// A complete strong span, used to trim stray interior padding
	// ("** text**", "**text **").
	strongSpan = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// Text butted directly against a complete strong span on either side.
	strongAfterText  = regexp.MustCompile(`([0-9A-Za-z])(\*\*[^*]+\*\*)`)
	strongBeforeText = regexp.MustCompile(`(\*\*[^*]+\*\*)([0-9A-Za-z])`)

	// Pseudo-LaTeX fragments. \text{...} unwraps to its argument; the
	// two-argument constructs render as plain "(a/b)"; single-argument
	// uses pass through untouched. Dollar delimiters are dropped, leaving the
	// inner text as prose. Best-effort plain-text fallback, not a math
	// renderer.
	latexText    = regexp.MustCompile(`\\text\{([^{}]*)\}`)
	latexTwoArg  = regexp.MustCompile(`\\(?:frac|sqrt|sum|int)\{([^{}]*)\}\{([^{}]*)\}`)
	latexDisplay = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	latexInline  = regexp.MustCompile(`\$([^$\s](?:[^$\n]*[^$\s])?)\$`)

	// An enumerated list run together with a preceding colon: "Notes:1.First".
	colonInlineList = regexp.MustCompile(`:(\d+)\.(\S)`)
	// A colon glued to an uppercase continuation: "Output:A".
	colonUpper = regexp.MustCompile(`:([A-Z])`)
)

// RepairInline normalizes emphasis markers and strips pseudo-math notation so
// the later passes see clean inline runs. It operates line by line with no
// cross-line state and never touches fenced code blocks.
func RepairInline(s string) string {
	return mapLines(s, repairInlineLine)
}

func repairInlineLine(line string) string {
	line = stripMathNotation(line)
	line = collapseTripleStars(line)

	// An odd number of ** markers means an unterminated strong run; closing
	// it at end of line keeps the fix from bleeding across paragraphs.
	if strings.Count(line, "**")%2 == 1 {
		line += "**"
	}

	line = trimStrongSpans(line)
	line = spaceAroundStrongSpans(line)

	line = colonInlineList.ReplaceAllString(line, ":\n$1. $2")
	line = colonUpper.ReplaceAllString(line, ": $1")
	return line
}

func stripMathNotation(line string) string {
	line = latexText.ReplaceAllString(line, "$1")
	line = latexTwoArg.ReplaceAllString(line, "($1/$2)")
	line = latexDisplay.ReplaceAllString(line, "$1")
	line = latexInline.ReplaceAllString(line, "$1")
	return line
}

func collapseTripleStars(line string) string {
	line = tripleStarBoth.ReplaceAllString(line, "**$1**")
	line = tripleStarOpen.ReplaceAllString(line, "**$1**")
	line = tripleStarClose.ReplaceAllString(line, "**$1**")
	return line
}

// trimStrongSpans normalizes interior whitespace so "** text**" and
// "**text **" both render as **text**.
func trimStrongSpans(line string) string {
	return strongSpan.ReplaceAllStringFunc(line, func(span string) string {
		inner := strings.TrimSpace(span[2 : len(span)-2])
		return "**" + inner + "**"
	})
}

func spaceAroundStrongSpans(line string) string {
	line = strongAfterText.ReplaceAllString(line, "$1 $2")
	line = strongBeforeText.ReplaceAllString(line, "$1 $2")
	return line
}

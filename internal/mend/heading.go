package mend

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxHeadingTitleLen bounds how long a numbered line can be and still read as
// a section title rather than a sentence.
const maxHeadingTitleLen = 80

var (
	// Shape of an enumerated section title emitted as a plain list item:
	// optional strong markers, a decimal number and period, whitespace, the
	// title, optional strong markers, optional trailing colon.
	numberedTitle = regexp.MustCompile(`^\*{0,2}(\d+)\.\s+(.+?)\*{0,2}:?$`)

	// A period followed by a lowercase continuation marks ordinary prose:
	// "1. this is not a title. it continues."
	midSentence = regexp.MustCompile(`\.\s+[a-z]`)
)

// PromoteHeadings reclassifies lines that look like enumerated section titles
// into level-2 headings. The gate is lexical and deliberately approximate: a
// short capitalized numbered sentence can be misread as a title, and that
// false-positive risk is accepted. Fenced code blocks are left alone.
func PromoteHeadings(s string) string {
	return mapLines(s, promoteHeadingLine)
}

func promoteHeadingLine(line string) string {
	m := numberedTitle.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return line
	}

	title := strings.ReplaceAll(m[2], "**", "")
	title = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(title), ":"))
	if title == "" {
		return line
	}

	first, _ := utf8.DecodeRuneInString(title)
	if !unicode.IsUpper(first) {
		return line
	}
	if utf8.RuneCountInString(title) > maxHeadingTitleLen {
		return line
	}
	if midSentence.MatchString(title) {
		return line
	}

	return "## " + m[1] + ". " + title
}

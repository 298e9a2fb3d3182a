// Package mend repairs free-form markdown produced by language models so a
// CommonMark+GFM renderer sees a well-formed document.
//
// LLM output routinely violates markdown's syntactic assumptions: unbalanced
// emphasis markers, tables without separator rows, pseudo-LaTeX fragments,
// section titles emitted as plain numbered list items. Normalize rewrites
// these into the renderable subset in four ordered passes. Every heuristic is
// conservative: a line that does not match a known malformed shape passes
// through unchanged, and the engine never errors or drops content.
package mend

// Options selects which repair passes run. The zero value disables
// everything; use DefaultOptions as a starting point.
type Options struct {
	Inline     bool // emphasis balancing and pseudo-math stripping
	Headings   bool // numbered section title promotion
	Tables     bool // separator synthesis and blank-line padding
	Whitespace bool // blank-line run collapse
}

// DefaultOptions enables all four passes.
func DefaultOptions() Options {
	return Options{Inline: true, Headings: true, Tables: true, Whitespace: true}
}

// Normalize rewrites markdown from an unreliable producer into a well-formed
// document. It is a pure function: no state survives between calls, so it is
// safe to invoke concurrently on independent inputs.
func Normalize(s string) string {
	return NormalizeWithOptions(s, DefaultOptions())
}

// NormalizeWithOptions runs the enabled passes in their fixed order. Each
// pass consumes the output of the previous one: inline repair and heading
// promotion are per-line maps, table reconstruction is a line-oriented state
// machine, and the whitespace collapse runs last so it never disturbs the
// single-blank-line padding the table pass establishes.
func NormalizeWithOptions(s string, opts Options) string {
	if s == "" {
		return s
	}
	if opts.Inline {
		s = RepairInline(s)
	}
	if opts.Headings {
		s = PromoteHeadings(s)
	}
	if opts.Tables {
		s = RebuildTables(s)
	}
	if opts.Whitespace {
		s = CollapseBlankLines(s)
	}
	return s
}

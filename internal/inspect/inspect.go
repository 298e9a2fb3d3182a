// Package inspect parses markdown with a GFM parser and reports its block
// structure. The check command uses it to show what a renderer would see
// before and after repair, in particular pipe-shaped paragraphs that failed
// to parse as tables.
package inspect

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Report summarizes the block structure of a markdown document.
type Report struct {
	Headings    int
	Paragraphs  int
	Lists       int
	CodeBlocks  int
	Blockquotes int
	Tables      int

	// BrokenTables counts paragraphs whose every line is pipe-delimited:
	// table content the parser rejected, usually for a missing separator row.
	BrokenTables int
}

var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Scan parses source as GFM markdown and counts its block structure.
func Scan(source []byte) Report {
	root := gfm.Parser().Parse(text.NewReader(source))

	var rep Report
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			rep.Headings++
		case *ast.Paragraph:
			rep.Paragraphs++
			if looksLikeTable(v, source) {
				rep.BrokenTables++
			}
		case *ast.List:
			rep.Lists++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			rep.CodeBlocks++
		case *ast.Blockquote:
			rep.Blockquotes++
		case *east.Table:
			rep.Tables++
		}
		return ast.WalkContinue, nil
	})
	return rep
}

// looksLikeTable reports whether every line of the paragraph starts and ends
// with a pipe, i.e. the author meant a table but the parser saw prose.
func looksLikeTable(p *ast.Paragraph, source []byte) bool {
	lines := p.Lines()
	if lines.Len() < 2 {
		return false
	}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimSpace(string(seg.Value(source)))
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			return false
		}
	}
	return true
}

// Package mdhtml locates raw HTML blocks inside Markdown documents.
package mdhtml

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/isich/stripblock/internal/block"
)

// Ranges returns the 1-based inclusive line ranges of every raw HTML block
// in source. Fenced code blocks are not reported, so block markers quoted
// inside code samples are kept out of reach of the scanner.
func Ranges(source []byte) ([]block.Range, error) {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	var ranges []block.Range

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		html := asHTMLBlock(node, entering)
		if html == nil {
			return ast.WalkContinue, nil
		}

		if r, ok := blockRange(html, source); ok {
			ranges = append(ranges, r)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return ranges, nil
}

func asHTMLBlock(node ast.Node, entering bool) *ast.HTMLBlock {
	if entering || node.Kind() != ast.KindHTMLBlock {
		return nil
	}

	if html, ok := node.(*ast.HTMLBlock); ok {
		return html
	}

	return nil
}

func blockRange(html *ast.HTMLBlock, source []byte) (block.Range, bool) {
	lines := html.Lines()
	if lines.Len() == 0 {
		return block.Range{}, false
	}

	start := lineAt(source, lines.At(0).Start)

	stop := lines.At(lines.Len() - 1).Stop
	if html.HasClosure() {
		stop = html.ClosureLine.Stop
	}

	if stop > 0 {
		stop--
	}

	return block.Range{Start: start, End: lineAt(source, stop)}, true
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

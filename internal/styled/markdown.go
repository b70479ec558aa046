package styled

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Styles applied by the markdown renderer. Inline code gets a distinct
// foreground/background pairing so it reads differently from prose.
var (
	headingStyle = Style{Bold: true, Foreground: ColorCyan}
	codeStyle    = Style{Foreground: ColorYellow, Background: ColorDarkGray}
	linkStyle    = Style{Foreground: ColorBlue, Underline: true}
	quoteStyle   = Style{Dim: true}
	ruleStyle    = Style{Dim: true}
)

// ParseMarkdown renders lightweight markup into styled lines. Headers, bold,
// italic, inline code, fenced code blocks, lists, block quotes and thematic
// breaks are mapped onto span styles; anything else degrades to its literal
// text. The parse never fails: goldmark accepts arbitrary input.
func ParseMarkdown(input string) []Line {
	source := []byte(input)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	r := &mdRenderer{source: source}
	first := true
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if !first {
			r.lines = append(r.lines, Line{})
		}
		r.block(block, "", Style{})
		first = false
	}
	r.commit()
	return r.lines
}

type mdRenderer struct {
	source []byte
	lines  []Line
	spans  []Span
	open   bool // a line is being accumulated (may still be empty)
}

func (r *mdRenderer) commit() {
	if r.open || len(r.spans) > 0 {
		r.lines = append(r.lines, Line{Spans: r.spans})
		r.spans = nil
		r.open = false
	}
}

func (r *mdRenderer) write(textContent string, st Style) {
	if textContent == "" {
		return
	}
	r.open = true
	r.spans = append(r.spans, Span{Text: textContent, Style: st})
}

// block renders one block-level node. prefix is prepended to every emitted
// line (list markers, quote bars); base is the inherited style.
func (r *mdRenderer) block(n ast.Node, prefix string, base Style) {
	switch node := n.(type) {
	case *ast.Heading:
		r.write(prefix+strings.Repeat("#", node.Level)+" ", headingStyle)
		r.inline(node, headingStyle)
		r.commit()
	case *ast.Paragraph, *ast.TextBlock:
		if prefix != "" {
			r.write(prefix, base)
		}
		r.inline(n, base)
		r.commit()
	case *ast.FencedCodeBlock:
		r.codeLines(node.Lines(), prefix)
	case *ast.CodeBlock:
		r.codeLines(node.Lines(), prefix)
	case *ast.List:
		index := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := prefix + "- "
			if node.IsOrdered() {
				marker = prefix + fmt.Sprintf("%d. ", index)
				index++
			}
			childPrefix := prefix + strings.Repeat(" ", len(marker)-len(prefix))
			firstChild := true
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if firstChild {
					r.block(c, marker, base)
					firstChild = false
				} else {
					r.block(c, childPrefix, base)
				}
			}
		}
	case *ast.Blockquote:
		st := base
		st.Dim = quoteStyle.Dim
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, prefix+"│ ", st)
		}
	case *ast.ThematicBreak:
		r.write(prefix+strings.Repeat("─", 3), ruleStyle)
		r.commit()
	default:
		if n.Type() == ast.TypeBlock {
			if prefix != "" {
				r.write(prefix, base)
			}
			r.inline(n, base)
			r.commit()
		}
	}
}

func (r *mdRenderer) codeLines(segments *text.Segments, prefix string) {
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lineText := strings.TrimRight(string(seg.Value(r.source)), "\n")
		if prefix != "" {
			r.write(prefix, Style{})
		}
		r.write(lineText, codeStyle)
		r.commit()
	}
}

// inline renders the inline children of n with the running style.
func (r *mdRenderer) inline(n ast.Node, st Style) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			r.write(string(node.Segment.Value(r.source)), st)
			if node.SoftLineBreak() || node.HardLineBreak() {
				r.commit()
			}
		case *ast.String:
			r.write(string(node.Value), st)
		case *ast.Emphasis:
			next := st
			if node.Level >= 2 {
				next.Bold = true
			} else {
				next.Italic = true
			}
			r.inline(node, next)
		case *ast.CodeSpan:
			next := st
			next.Foreground = codeStyle.Foreground
			next.Background = codeStyle.Background
			r.inline(node, next)
		case *ast.Link:
			next := st
			next.Foreground = linkStyle.Foreground
			next.Underline = linkStyle.Underline
			r.inline(node, next)
		case *ast.AutoLink:
			r.write(string(node.URL(r.source)), linkStyle)
		default:
			if c.HasChildren() {
				r.inline(c, st)
			}
		}
	}
}

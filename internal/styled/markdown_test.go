package styled

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// findSpan returns the first span whose text contains the wanted substring.
func findSpan(t *testing.T, lines []Line, want string) Span {
	t.Helper()
	for _, l := range lines {
		for _, sp := range l.Spans {
			if strings.Contains(sp.Text, want) {
				return sp
			}
		}
	}
	t.Fatalf("no span containing %q in %+v", want, lines)
	return Span{}
}

func TestMarkdownBold(t *testing.T) {
	lines := ParseMarkdown("**important**\n")
	require.Len(t, lines, 1)
	sp := findSpan(t, lines, "important")
	require.True(t, sp.Style.Bold)
}

func TestMarkdownItalic(t *testing.T) {
	lines := ParseMarkdown("*emphasized*\n")
	sp := findSpan(t, lines, "emphasized")
	require.True(t, sp.Style.Italic)
}

func TestMarkdownInlineCodeDistinctStyle(t *testing.T) {
	lines := ParseMarkdown("`code`\n")
	sp := findSpan(t, lines, "code")
	require.True(t, sp.Style.Foreground != "" || sp.Style.Background != "")
}

func TestMarkdownHeaderKeepsContent(t *testing.T) {
	lines := ParseMarkdown("## Section Title\n")
	sp := findSpan(t, lines, "Section Title")
	require.True(t, sp.Style.Bold)
}

func TestMarkdownMixedInline(t *testing.T) {
	lines := ParseMarkdown("Normal **bold** and *italic* text\n")
	require.Len(t, lines, 1)
	require.Equal(t, "Normal bold and italic text", lines[0].Text())
	require.True(t, findSpan(t, lines, "bold").Style.Bold)
	require.True(t, findSpan(t, lines, "italic").Style.Italic)
	require.False(t, findSpan(t, lines, "Normal").Style.Bold)
}

func TestMarkdownSoftBreaksSplitLines(t *testing.T) {
	lines := ParseMarkdown("line1\nline2\nline3\n")
	require.Len(t, lines, 3)
	require.Equal(t, "line1", lines[0].Text())
	require.Equal(t, "line2", lines[1].Text())
	require.Equal(t, "line3", lines[2].Text())
}

func TestMarkdownFencedCodeBlock(t *testing.T) {
	lines := ParseMarkdown("```\nfmt.Println(\"hi\")\n```\n")
	sp := findSpan(t, lines, "fmt.Println")
	require.Equal(t, codeStyle.Foreground, sp.Style.Foreground)
}

func TestMarkdownUnorderedList(t *testing.T) {
	lines := ParseMarkdown("- first\n- second\n")
	var texts []string
	for _, l := range lines {
		if l.Text() != "" {
			texts = append(texts, l.Text())
		}
	}
	require.Contains(t, texts, "- first")
	require.Contains(t, texts, "- second")
}

func TestMarkdownOrderedList(t *testing.T) {
	lines := ParseMarkdown("1. one\n2. two\n")
	var joined []string
	for _, l := range lines {
		joined = append(joined, l.Text())
	}
	require.Contains(t, joined, "1. one")
	require.Contains(t, joined, "2. two")
}

func TestMarkdownBlockquoteDimmed(t *testing.T) {
	lines := ParseMarkdown("> quoted words\n")
	sp := findSpan(t, lines, "quoted words")
	require.True(t, sp.Style.Dim)
}

func TestMarkdownNoLineBreaksInsideSpans(t *testing.T) {
	lines := ParseMarkdown("# Head\n\npara one\npara two\n\n- item\n")
	for _, l := range lines {
		for _, sp := range l.Spans {
			require.NotContains(t, sp.Text, "\n")
		}
	}
}

func TestMarkdownUnclosedEmphasisDoesNotPanic(t *testing.T) {
	lines := ParseMarkdown("**unclosed bold")
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0].Text(), "unclosed bold")
}

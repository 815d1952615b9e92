// Package markdown turns AI-generated Markdown into display nodes, sanitized
// HTML, or plain text. It never touches the network.
package markdown

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type NodeKind string

const (
	Heading   NodeKind = "heading"
	ListItem  NodeKind = "list_item"
	Paragraph NodeKind = "paragraph"
	Code      NodeKind = "code"
)

type Span struct {
	Text   string `json:"text"`
	Strong bool   `json:"strong,omitempty"`
}

type Node struct {
	Kind  NodeKind `json:"kind"`
	Level int      `json:"level,omitempty"`
	Spans []Span   `json:"spans"`
}

// Text concatenates the node's spans.
func (n Node) Text() string {
	var b strings.Builder
	for _, s := range n.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

var (
	md        = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// Parse converts Markdown into a flat list of display nodes.
func Parse(src string) []Node {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	nodes := []Node{}
	for b := doc.FirstChild(); b != nil; b = b.NextSibling() {
		nodes = appendBlock(nodes, b, source)
	}
	return nodes
}

func appendBlock(nodes []Node, n ast.Node, source []byte) []Node {
	switch v := n.(type) {
	case *ast.Heading:
		return append(nodes, Node{Kind: Heading, Level: v.Level, Spans: inlineSpans(v, source, false)})
	case *ast.List:
		for item := v.FirstChild(); item != nil; item = item.NextSibling() {
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if _, nested := c.(*ast.List); nested {
					nodes = appendBlock(nodes, c, source)
					continue
				}
				nodes = append(nodes, Node{Kind: ListItem, Spans: inlineSpans(c, source, false)})
			}
		}
		return nodes
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return append(nodes, Node{Kind: Code, Spans: []Span{{Text: rawLines(n, source)}}})
	case *ast.Blockquote:
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			nodes = appendBlock(nodes, c, source)
		}
		return nodes
	case *ast.ThematicBreak:
		return nodes
	default:
		spans := inlineSpans(n, source, false)
		if len(spans) == 0 {
			return nodes
		}
		return append(nodes, Node{Kind: Paragraph, Spans: spans})
	}
}

func inlineSpans(n ast.Node, source []byte, strong bool) []Span {
	var spans []Span
	add := func(s string, strong bool) {
		if s == "" {
			return
		}
		if last := len(spans) - 1; last >= 0 && spans[last].Strong == strong {
			spans[last].Text += s
			return
		}
		spans = append(spans, Span{Text: s, Strong: strong})
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			add(string(v.Segment.Value(source)), strong)
			if v.SoftLineBreak() || v.HardLineBreak() {
				add(" ", strong)
			}
		case *ast.String:
			add(string(v.Value), strong)
		case *ast.Emphasis:
			for _, s := range inlineSpans(v, source, strong || v.Level >= 2) {
				add(s.Text, s.Strong)
			}
		default:
			for _, s := range inlineSpans(c, source, strong) {
				add(s.Text, s.Strong)
			}
		}
	}
	if last := len(spans) - 1; last >= 0 {
		spans[last].Text = strings.TrimRight(spans[last].Text, " ")
	}
	return spans
}

func rawLines(n ast.Node, source []byte) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// HTML renders Markdown to HTML with a user-generated-content policy applied.
func HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// PlainText strips formatting, one node per line.
func PlainText(src string) string {
	nodes := Parse(src)
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = n.Text()
	}
	return strings.Join(lines, "\n")
}

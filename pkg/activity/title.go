package activity

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Title returns the text of the first level-1 heading of the lesson plan
// at path, or "" when it has none.
func Title(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading lesson plan: %w", err)
	}
	return TitleOf(content), nil
}

// TitleOf is Title for an in-memory document.
func TitleOf(content []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(string(nodeText(heading, content)))
		return ast.WalkStop, nil
	})
	return title
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.Write(nodeText(c, source))
		}
	}
	return buf.Bytes()
}

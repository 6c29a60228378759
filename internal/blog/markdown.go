// markdown.go - Markdown to HTML conversion
package blog

import (
	"bytes"
	"fmt"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
	mermaid "go.abhg.dev/goldmark/mermaid"
)

// postMeta is the decoded metadata block of one document. Title and date are
// required; everything else in the block is ignored.
type postMeta struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// convert renders one Markdown document to HTML and extracts its metadata
// block. Each call builds its own parser state, so nothing leaks between
// documents: footnote anchors are prefixed with the slug to stay unique
// across pages, and metadata never carries over.
func convert(source []byte, slug string) (string, *postMeta, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.NewFootnote(
				extension.WithFootnoteIDPrefix([]byte(footnotePrefix(slug))),
			),
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
			mathjax.MathJax,
			&mermaid.Extender{},
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, root); err != nil {
		return "", nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	data := frontmatter.Get(ctx)
	if data == nil {
		return buf.String(), nil, nil
	}

	var meta postMeta
	if err := data.Decode(&meta); err != nil {
		return "", nil, fmt.Errorf("%w: malformed metadata block: %v", ErrMissingMetadata, err)
	}
	return buf.String(), &meta, nil
}

// footnotePrefix keeps footnote anchor IDs unique per document.
func footnotePrefix(slug string) string {
	if slug == "" {
		return ""
	}
	safe := make([]byte, 0, len(slug)+1)
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-' || c == '_':
			safe = append(safe, c)
		default:
			safe = append(safe, '-')
		}
	}
	return string(append(safe, '-'))
}

// parser.go - One content file in, one Post out
package blog

import (
	"fmt"
	"os"
	"time"
)

// Parser turns content files into Posts. It holds the content root (for slug
// derivation) and the reference timezone; conversion itself is stateless per
// document.
type Parser struct {
	root string
	loc  *time.Location
}

func NewParser(root string, loc *time.Location) *Parser {
	return &Parser{root: root, loc: loc}
}

// ParseFile reads, converts and validates one content file. Any failure is
// fatal for the whole build; the returned error names the offending file.
func (p *Parser) ParseFile(path string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	slug, err := SlugFor(path, p.root)
	if err != nil {
		return nil, fmt.Errorf("deriving slug for %s: %w", path, err)
	}

	source := rewriteMarkdownLinks(normalizeFrontMatter(raw))
	body, meta, err := convert(source, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: %s: no metadata block", ErrMissingMetadata, path)
	}

	title := unquote(meta.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: %s: title", ErrMissingMetadata, path)
	}
	rawDate := unquote(meta.Date)
	if rawDate == "" {
		return nil, fmt.Errorf("%w: %s: date", ErrMissingMetadata, path)
	}

	date, err := ParseDate(rawDate, p.loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Post{
		SourcePath: path,
		Slug:       slug,
		Title:      title,
		Date:       date,
		RawSource:  raw,
		HTML:       body,
	}, nil
}

// post.go - The in-memory representation of a parsed post
package blog

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/ewanmcnab/plume/internal/config"
)

// Post is one parsed content file. Every field is set at construction and
// never mutated afterwards; feed-specific HTML is derived on demand.
type Post struct {
	// SourcePath is the path of the original content file. Identity key.
	SourcePath string

	// Slug is the path of the content file relative to the content root
	// with the extension stripped, always slash-separated.
	Slug string

	// Title comes from the metadata block, surrounding quotes stripped.
	Title string

	// Date is timezone-aware and comparable across all posts of a build.
	Date time.Time

	// RawSource is the original Markdown text.
	RawSource []byte

	// HTML is the rendered body with site-relative links intact.
	HTML string
}

// SlugFor derives the slug for a content file. It is a pure function of the
// path and the content root: same inputs, same slug.
func SlugFor(sourcePath, contentRoot string) (string, error) {
	rel, err := filepath.Rel(contentRoot, sourcePath)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, path.Ext(rel)), nil
}

// Permalink is the absolute URL of the rendered post page.
func (p *Post) Permalink(cfg config.Config) string {
	return cfg.AbsoluteBase() + path.Join("/", cfg.URLPrefix, p.Slug+".html")
}

// FeedHTML returns the body with every occurrence of the site-relative URL
// prefix rewritten to an absolute URL. Feed consumers need fully-qualified
// links; pages keep the relative form. The value is derived, the stored
// HTML is never touched.
func (p *Post) FeedHTML(cfg config.Config) string {
	prefix := cfg.URLPrefix
	if prefix == "" {
		return p.HTML
	}
	return strings.ReplaceAll(p.HTML, prefix, cfg.AbsoluteBase()+prefix)
}

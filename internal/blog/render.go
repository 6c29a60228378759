// render.go - Binding posts and configuration into templates
package blog

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ewanmcnab/plume/internal/config"
)

// Site is the configuration surface exposed to every template.
type Site struct {
	Title       string
	Description string
	BaseURL     string
	URLPrefix   string
}

func siteFor(cfg config.Config) Site {
	title := cfg.SiteTitle
	if title == "" {
		title = inferSiteTitle(cfg.ContentDir)
	}
	desc := cfg.SiteDescription
	if desc == "" {
		desc = "Latest posts and updates"
	}
	return Site{
		Title:       title,
		Description: desc,
		BaseURL:     cfg.AbsoluteBase(),
		URLPrefix:   cfg.URLPrefix,
	}
}

// inferSiteTitle falls back to a readable form of the content directory name
// when no site title is configured.
func inferSiteTitle(contentDir string) string {
	dirName := filepath.Base(contentDir)
	if dirName == "." || dirName == string(filepath.Separator) {
		return "Blog"
	}
	dirName = strings.ReplaceAll(dirName, "-", " ")
	dirName = strings.ReplaceAll(dirName, "_", " ")
	return cases.Title(language.Und).String(dirName)
}

// postView is one post as templates see it.
type postView struct {
	Title     string
	Slug      string
	Permalink string
	Date      time.Time
	HTML      template.HTML
}

func viewOf(p *Post, cfg config.Config) postView {
	return postView{
		Title:     p.Title,
		Slug:      p.Slug,
		Permalink: p.Permalink(cfg),
		Date:      p.Date,
		HTML:      template.HTML(p.HTML),
	}
}

// feedItem is one post prepared for syndication: the body carries absolute
// links.
type feedItem struct {
	Title     string
	Permalink string
	Date      time.Time
	HTML      string
}

// Renderer applies the template set to posts and collections.
type Renderer struct {
	cfg  config.Config
	ts   *TemplateSet
	site Site
}

func NewRenderer(cfg config.Config, ts *TemplateSet) *Renderer {
	return &Renderer{cfg: cfg, ts: ts, site: siteFor(cfg)}
}

// RenderPost produces the HTML page for a single post.
func (r *Renderer) RenderPost(p *Post) ([]byte, error) {
	data := struct {
		Site Site
		Post postView
	}{r.site, viewOf(p, r.cfg)}
	return r.renderPage(tmplPost, data)
}

// RenderIndex produces the front page listing the full ordered collection.
func (r *Renderer) RenderIndex(c *Collection) ([]byte, error) {
	data := struct {
		Site  Site
		Posts []postView
		Years []*YearGroup
	}{r.site, r.views(c.Posts), c.Years}
	return r.renderPage(tmplIndex, data)
}

// RenderArchive produces one archive page for a year or year/month group.
func (r *Renderer) RenderArchive(label string, posts []*Post) ([]byte, error) {
	data := struct {
		Site  Site
		Label string
		Posts []postView
	}{r.site, label, r.views(posts)}
	return r.renderPage(tmplArchive, data)
}

// RenderRSS produces the RSS 2.0 feed document.
func (r *Renderer) RenderRSS(c *Collection, now time.Time) ([]byte, error) {
	return r.renderFeed(tmplRSS, c, now)
}

// RenderJSONFeed produces the JSON Feed document.
func (r *Renderer) RenderJSONFeed(c *Collection, now time.Time) ([]byte, error) {
	return r.renderFeed(tmplJSON, c, now)
}

func (r *Renderer) renderPage(name string, data any) ([]byte, error) {
	tmpl, ok := r.ts.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not loaded", ErrTemplate, name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderFeed(name string, c *Collection, now time.Time) ([]byte, error) {
	tmpl, ok := r.ts.feeds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not loaded", ErrTemplate, name)
	}

	posts := c.Posts
	if max := r.cfg.FeedMaxItems; max > 0 && len(posts) > max {
		posts = posts[:max]
	}
	items := make([]feedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, feedItem{
			Title:     p.Title,
			Permalink: p.Permalink(r.cfg),
			Date:      p.Date,
			HTML:      p.FeedHTML(r.cfg),
		})
	}

	data := struct {
		Site      Site
		BuildTime time.Time
		Items     []feedItem
		FeedURL   string
	}{r.site, now, items, r.cfg.AbsoluteBase() + "/" + name}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) views(posts []*Post) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, viewOf(p, r.cfg))
	}
	return out
}

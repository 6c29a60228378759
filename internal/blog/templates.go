// templates.go - Template loading
package blog

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*.html templates/rss.xml templates/feed.json templates/style.css
var EmbeddedFiles embed.FS

// Page template names, resolved against the template dir or the embedded
// defaults.
const (
	tmplPost    = "post.html"
	tmplIndex   = "index.html"
	tmplArchive = "archive.html"
	tmplRSS     = "rss.xml"
	tmplJSON    = "feed.json"
)

// TemplateSet holds the parsed templates for one build. Pages go through
// html/template; feeds are plain text formats (XML, JSON) and go through
// text/template with explicit escaping helpers.
type TemplateSet struct {
	pages map[string]*template.Template
	feeds map[string]*texttemplate.Template
}

var feedFuncs = texttemplate.FuncMap{
	"xml":      escapeXML,
	"jsonstr":  jsonString,
	"rfc1123z": func(t time.Time) string { return t.Format(time.RFC1123Z) },
	"rfc3339":  func(t time.Time) string { return t.Format(time.RFC3339) },
}

// LoadTemplates parses the full template set. A file of the same name under
// dir overrides the embedded default; any missing or malformed template is
// ErrTemplate and aborts the build.
func LoadTemplates(dir string) (*TemplateSet, error) {
	ts := &TemplateSet{
		pages: make(map[string]*template.Template),
		feeds: make(map[string]*texttemplate.Template),
	}

	for _, name := range []string{tmplPost, tmplIndex, tmplArchive} {
		src, err := readTemplate(dir, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
		}
		ts.pages[name] = tmpl
	}

	for _, name := range []string{tmplRSS, tmplJSON} {
		src, err := readTemplate(dir, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := texttemplate.New(name).Funcs(feedFuncs).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
		}
		ts.feeds[name] = tmpl
	}

	return ts, nil
}

func readTemplate(dir, name string) (string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s: %v", ErrTemplate, path, err)
		}
	}
	data, err := EmbeddedFiles.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return string(data), nil
}

// escapeXML escapes special XML characters in a string
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// jsonString renders a value as a JSON string literal, quotes included.
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// links.go - Markdown link rewriting
package blog

import (
	"regexp"
	"strings"
)

var mdLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*\.(?:md|markdown))\)`)

// rewriteMarkdownLinks replaces links to .md/.markdown files with .html in
// markdown content, so cross-post links keep working in the generated site.
func rewriteMarkdownLinks(content []byte) []byte {
	s := string(content)
	s = mdLinkRe.ReplaceAllStringFunc(s, func(match string) string {
		return strings.ReplaceAll(strings.ReplaceAll(match, ".md)", ".html)"), ".markdown)", ".html)")
	})
	return []byte(s)
}

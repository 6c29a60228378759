// meta.go - Metadata block normalization and value cleanup
package blog

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var (
	yamlFence = []byte("---\n")
	tomlFence = []byte("+++\n")
)

// normalizeFrontMatter makes both accepted metadata styles look the same to
// the converter. Documents may open with regular delimited front-matter, or
// with a bare block of "key: value" lines terminated by a blank line (the
// classic Markdown-meta form). Bare blocks get wrapped in YAML fences so a
// single extraction path handles everything. Documents with no recognizable
// metadata pass through untouched.
func normalizeFrontMatter(src []byte) []byte {
	if bytes.HasPrefix(src, yamlFence) || bytes.HasPrefix(src, tomlFence) {
		return src
	}

	header, rest, ok := splitBareHeader(src)
	if !ok {
		return src
	}

	var buf bytes.Buffer
	buf.Grow(len(src) + 2*len(yamlFence))
	buf.Write(yamlFence)
	buf.Write(header)
	buf.Write(yamlFence)
	buf.Write(rest)
	return buf.Bytes()
}

// splitBareHeader splits a leading key: value block from the body. The block
// must start on the first line, every line must parse as YAML mapping
// entries, and a blank line ends it. Returns ok=false when the document does
// not open with such a block.
func splitBareHeader(src []byte) (header, rest []byte, ok bool) {
	idx := bytes.Index(src, []byte("\n\n"))
	var candidate []byte
	if idx == -1 {
		// Whole document could be a header with no body.
		candidate = src
		rest = nil
	} else {
		candidate = src[:idx+1]
		rest = src[idx+2:]
	}

	var m map[string]any
	if err := yaml.Unmarshal(candidate, &m); err != nil || len(m) == 0 {
		return nil, nil, false
	}
	// A lone paragraph can parse as YAML (e.g. a plain scalar); require
	// every top-level entry to be a mapping line.
	if !bytes.Contains(bytes.SplitN(candidate, []byte("\n"), 2)[0], []byte(":")) {
		return nil, nil, false
	}

	if !bytes.HasSuffix(candidate, []byte("\n")) {
		candidate = append(append([]byte{}, candidate...), '\n')
	}
	return candidate, rest, true
}

// unquote strips matching pairs of surrounding quote characters (' or ")
// from a string. Metadata parsers hand quoted values through verbatim, so
// `"My Title"` and `'"x"'` become `My Title` and `x`. Unquoting an already
// bare string returns it unchanged.
func unquote(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			s = s[1 : len(s)-1]
			continue
		}
		break
	}
	return s
}

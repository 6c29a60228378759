package blog

import (
	"strings"
	"testing"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"My Title"`, "My Title"},
		{`'My Title'`, "My Title"},
		{`'"x"'`, "x"},
		{`plain`, "plain"},
		{`"mismatched'`, `"mismatched'`},
		{`""`, ""},
		{`'`, `'`},
		{``, ``},
	}
	for _, tc := range tests {
		if got := unquote(tc.in); got != tc.want {
			t.Errorf("unquote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnquote_Idempotent(t *testing.T) {
	for _, in := range []string{`"My Title"`, `'"x"'`, `plain`, `""`} {
		once := unquote(in)
		if twice := unquote(once); twice != once {
			t.Errorf("unquote not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeFrontMatter_BareBlock(t *testing.T) {
	src := "title: Hello\ndate: 2020-03-01\n\n# Body\n"
	out := string(normalizeFrontMatter([]byte(src)))
	if !strings.HasPrefix(out, "---\ntitle: Hello\ndate: 2020-03-01\n---\n") {
		t.Errorf("bare block not wrapped, got:\n%s", out)
	}
	if !strings.Contains(out, "# Body") {
		t.Errorf("body lost during normalization:\n%s", out)
	}
}

func TestNormalizeFrontMatter_DelimitedUntouched(t *testing.T) {
	src := "---\ntitle: Hello\ndate: 2020-03-01\n---\n# Body\n"
	if out := string(normalizeFrontMatter([]byte(src))); out != src {
		t.Errorf("delimited front-matter modified:\n%s", out)
	}
}

func TestNormalizeFrontMatter_NoMetadata(t *testing.T) {
	for _, src := range []string{
		"# Just a heading\n\nBody text.\n",
		"Plain paragraph with no header.\n\nMore.\n",
		"",
	} {
		if out := string(normalizeFrontMatter([]byte(src))); out != src {
			t.Errorf("document without metadata modified: %q -> %q", src, out)
		}
	}
}

func TestNormalizeFrontMatter_HeaderOnly(t *testing.T) {
	src := "title: Hello\ndate: 2020-03-01\n"
	out := string(normalizeFrontMatter([]byte(src)))
	if !strings.HasPrefix(out, "---\n") || !strings.Contains(out, "title: Hello") {
		t.Errorf("header-only document not wrapped:\n%s", out)
	}
}

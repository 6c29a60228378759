package blog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const postA = "title: \"A\"\ndate: \"2020-01-01\"\n\nAlpha body with a [link](/blog/b.html).\n"
const postB = "title: \"B\"\ndate: \"2021-06-15\"\n\nBeta body.\n"

// bumpMtime pushes a file's mtime forward past the cache's one-second
// resolution.
func bumpMtime(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	newTime := info.ModTime().Add(2 * time.Second)
	if err := os.Chtimes(path, newTime, newTime); err != nil {
		t.Fatal(err)
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "a.md", postA)
	writePost(t, root, "b.md", postB)

	cfg := testConfig(root)
	if err := Build(cfg); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Per-post pages sit next to their sources.
	for _, f := range []string{"a.html", "b.html"} {
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			t.Errorf("expected %s next to its source: %v", f, err)
		}
	}

	// The index lists the newer post first.
	index, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("expected index.html at content root: %v", err)
	}
	bi := strings.Index(string(index), ">B<")
	ai := strings.Index(string(index), ">A<")
	if bi == -1 || ai == -1 {
		t.Fatalf("index missing post titles:\n%s", index)
	}
	if bi > ai {
		t.Error("index lists A before B")
	}

	// Year and month archives.
	for _, f := range []string{
		"2020/index.html",
		"2020/01/index.html",
		"2021/index.html",
		"2021/06/index.html",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("expected archive %s: %v", f, err)
		}
	}

	// Feeds exist, contain both posts, and carry no bare relative links.
	for _, f := range []string{"rss.xml", "feed.json"} {
		data, err := os.ReadFile(filepath.Join(root, f))
		if err != nil {
			t.Fatalf("expected feed %s: %v", f, err)
		}
		s := string(data)
		if !strings.Contains(s, "A") || !strings.Contains(s, "B") {
			t.Errorf("%s missing post content", f)
		}
		if strings.Contains(s, `&quot;/blog/`) || strings.Contains(s, `\"/blog/`) || strings.Contains(s, `"/blog/`) {
			t.Errorf("%s contains bare relative links:\n%s", f, s)
		}
		if !strings.Contains(s, "https://example.org/blog/") {
			t.Errorf("%s missing absolute links", f)
		}
	}
}

func TestBuild_NoContentIsFatal(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "notes.txt", "not markdown")

	err := Build(testConfig(root))
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("error = %v, want ErrNoContent", err)
	}
}

func TestBuild_BadPostAbortsWholeBuild(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "good.md", postA)
	writePost(t, root, "bad.md", "title: Bad\n\nNo date here.\n")

	err := Build(testConfig(root))
	if !errors.Is(err, ErrMissingMetadata) {
		t.Fatalf("error = %v, want ErrMissingMetadata", err)
	}
	if !strings.Contains(err.Error(), "bad.md") {
		t.Errorf("error should identify the offending file: %v", err)
	}
	// No index artifact on the error path.
	if _, err := os.Stat(filepath.Join(root, "index.html")); err == nil {
		t.Error("index.html written despite fatal parse error")
	}
}

func TestBuild_SeparateOutputDir(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writePost(t, root, "sub/a.md", postA)
	writePost(t, root, "sub/asset.txt", "asset data")
	writePost(t, root, "b.md", postB)

	cfg := testConfig(root)
	cfg.OutputDir = out
	if err := Build(cfg); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for _, f := range []string{"sub/a.html", "b.html", "index.html", "rss.xml", "feed.json", "sub/asset.txt"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); err != nil {
			t.Errorf("expected %s under output dir: %v", f, err)
		}
	}
	// Sources stay untouched.
	if _, err := os.Stat(filepath.Join(root, "b.html")); err == nil {
		t.Error("artifact written into content root despite separate output dir")
	}
}

func TestBuild_Incremental(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writePost(t, root, "a.md", postA)

	cfg := testConfig(root)
	cfg.OutputDir = out
	cfg.Incremental = true

	if err := Build(cfg); err != nil {
		t.Fatalf("initial build failed: %v", err)
	}
	if _, err := os.Stat(getCachePath(out)); err != nil {
		t.Fatalf("expected cache file after incremental build: %v", err)
	}

	aPath := filepath.Join(out, "a.html")
	first, err := os.ReadFile(aPath)
	if err != nil {
		t.Fatal(err)
	}

	// Unchanged source: rebuild succeeds and the page survives.
	if err := Build(cfg); err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	if _, err := os.Stat(aPath); err != nil {
		t.Error("post page missing after incremental rebuild")
	}

	// Changed source gets re-rendered.
	writePost(t, root, "a.md", "title: \"A2\"\ndate: \"2020-01-01\"\n\nChanged.\n")
	bumpMtime(t, filepath.Join(root, "a.md"))
	if err := Build(cfg); err != nil {
		t.Fatalf("third build failed: %v", err)
	}
	second, err := os.ReadFile(aPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) == string(second) {
		t.Error("changed post not re-rendered")
	}
	if !strings.Contains(string(second), "A2") {
		t.Errorf("rebuilt page missing new title:\n%s", second)
	}
}

func TestBuild_CleanRemovesOrphans(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writePost(t, root, "a.md", postA)
	writePost(t, root, "b.md", postB)

	cfg := testConfig(root)
	cfg.OutputDir = out
	if err := Build(cfg); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if err := os.Remove(filepath.Join(root, "b.md")); err != nil {
		t.Fatal(err)
	}
	cfg.Clean = true
	if err := Build(cfg); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "b.html")); err == nil {
		t.Error("orphaned b.html not removed")
	}
	if _, err := os.Stat(filepath.Join(out, "a.html")); err != nil {
		t.Error("live artifact removed by cleanup")
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); err != nil {
		t.Error("index removed by cleanup")
	}
}

func TestBuild_BadTimezoneIsFatal(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "a.md", postA)

	cfg := testConfig(root)
	cfg.Timezone = "Not/AZone"
	if err := Build(cfg); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

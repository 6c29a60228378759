// writer.go - Artifact paths and output writing
package blog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArtifactPaths computes where every build artifact lands, relative to the
// output root. Paths are deterministic: per-post pages sit next to their
// slug, the index at the root, archives under year/ and year/month/
// directories, feeds at the root.
type ArtifactPaths struct {
	root string
}

func NewArtifactPaths(outputRoot string) *ArtifactPaths {
	return &ArtifactPaths{root: outputRoot}
}

func (a *ArtifactPaths) Post(p *Post) string {
	return filepath.Join(a.root, filepath.FromSlash(p.Slug)+".html")
}

func (a *ArtifactPaths) Index() string {
	return filepath.Join(a.root, "index.html")
}

func (a *ArtifactPaths) YearArchive(year int) string {
	return filepath.Join(a.root, fmt.Sprintf("%d", year), "index.html")
}

func (a *ArtifactPaths) MonthArchive(year, month int) string {
	return filepath.Join(a.root, fmt.Sprintf("%d", year), fmt.Sprintf("%02d", month), "index.html")
}

func (a *ArtifactPaths) RSS() string {
	return filepath.Join(a.root, "rss.xml")
}

func (a *ArtifactPaths) JSONFeed() string {
	return filepath.Join(a.root, "feed.json")
}

func (a *ArtifactPaths) Stylesheet() string {
	return filepath.Join(a.root, "style.css")
}

// WriteArtifact writes rendered text to its output path, creating missing
// parent directories. Filesystem failures wrap ErrWrite and are fatal.
func WriteArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// copyFilePreserveDirs copies a file from src to dst, creating parent directories as needed.
func copyFilePreserveDirs(src, dst string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, in)
	return err
}

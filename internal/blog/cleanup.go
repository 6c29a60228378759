// cleanup.go - Orphaned artifact removal
package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputCleaner removes generated artifacts whose source no longer exists.
// Only meaningful when building into a separate output directory, where
// everything under the root is generator-owned.
type OutputCleaner struct {
	outputRoot string
}

func NewOutputCleaner(outputRoot string) *OutputCleaner {
	return &OutputCleaner{outputRoot: outputRoot}
}

// CleanupOrphanedFiles walks the output root and removes files that no
// current source or artifact accounts for.
func (oc *OutputCleaner) CleanupOrphanedFiles(fileSet *FileSet) error {
	return filepath.Walk(oc.outputRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		relPath, err := filepath.Rel(oc.outputRoot, path)
		if err != nil || relPath == "." {
			return nil
		}
		if relPath == ".plume-cache" || strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if !oc.isExpectedFile(relPath, fileSet) {
			fmt.Printf("[Clean] Removing orphaned output: %s\n", path)
			os.Remove(path)
		}
		return nil
	})
}

func (oc *OutputCleaner) isExpectedFile(relPath string, fileSet *FileSet) bool {
	for _, f := range fileSet.PostFiles {
		out := f[:len(f)-len(filepath.Ext(f))] + ".html"
		if relPath == out {
			return true
		}
	}

	for _, f := range fileSet.AssetFiles {
		if relPath == f {
			return true
		}
	}

	// Collection-level artifacts are always expected.
	switch relPath {
	case "index.html", "rss.xml", "feed.json", "style.css":
		return true
	}

	// Archive pages: <year>/index.html and <year>/<month>/index.html.
	if filepath.Base(relPath) == "index.html" {
		dir := filepath.ToSlash(filepath.Dir(relPath))
		parts := strings.Split(dir, "/")
		if len(parts) <= 2 && allDigits(parts) {
			return true
		}
	}

	return false
}

func allDigits(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return false
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// discovery.go - File discovery and classification
package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSet holds the classified contents of one content tree. Paths are
// relative to the root.
type FileSet struct {
	PostFiles  []string
	AssetFiles []string
}

// DiscoverFiles walks the content root and classifies every file as a post
// source (extension in exts, case-insensitive, no leading dot) or an asset.
// Hidden files and directories are skipped. Zero post sources is fatal for
// the whole build and surfaces ErrNoContent.
func DiscoverFiles(root string, exts []string) (*FileSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("content directory does not exist: %s", root)
		}
		return nil, fmt.Errorf("error checking content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path is not a directory: %s", root)
	}

	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	var postFiles []string
	var assetFiles []string

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if isHiddenFile(relPath) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if matchesExtension(info.Name(), extSet) {
			postFiles = append(postFiles, relPath)
		} else {
			assetFiles = append(assetFiles, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking content directory: %w", err)
	}

	if len(postFiles) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoContent, root)
	}

	return &FileSet{
		PostFiles:  postFiles,
		AssetFiles: assetFiles,
	}, nil
}

// isHiddenFile checks if a file or directory should be skipped based on hidden file rules
func isHiddenFile(relPath string) bool {
	if relPath == "." {
		return false
	}
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// matchesExtension reports whether a file name carries one of the recognized
// source extensions, case-insensitively.
func matchesExtension(name string, extSet map[string]bool) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	return extSet[ext]
}

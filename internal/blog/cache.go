// cache.go - Incremental build cache management
package blog

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// The cache maps relative source paths to the mtime seen at the previous
// build and the artifact written for them. Posts whose mtime is unchanged
// skip re-rendering; the index, archives and feeds always rebuild because
// they depend on the whole collection.
type cacheFile struct {
	Version int                       `json:"version"`
	Files   map[string]cacheFileEntry `json:"files"`
}

type cacheFileEntry struct {
	Mtime  int64  `json:"mtime"`
	Output string `json:"output"`
}

func loadCache(path string) (*cacheFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c cacheFile
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	if c.Files == nil {
		c.Files = make(map[string]cacheFileEntry)
	}
	return &c, nil
}

func saveCache(path string, c *cacheFile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

func newCache() *cacheFile {
	return &cacheFile{
		Version: 1,
		Files:   make(map[string]cacheFileEntry),
	}
}

func getCachePath(outputRoot string) string {
	return filepath.Join(outputRoot, ".plume-cache")
}

func getMtime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().Unix()
}

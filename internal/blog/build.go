// build.go - The one-shot build pipeline: discover, parse, organize, render, write
package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ewanmcnab/plume/internal/config"
)

// pageWeightThreshold is the gzip size above which a rendered page gets a
// weight warning.
const pageWeightThreshold = 14 * 1024

// Build runs the whole pipeline once. Every step is sequential and every
// error is fatal; artifacts already written stay on disk (no rollback).
func Build(cfg config.Config) error {
	startTime := time.Now()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	fmt.Printf("[Build] Starting blog build from '%s'...\n", cfg.ContentDir)

	fileSet, err := DiscoverFiles(cfg.ContentDir, cfg.Extensions)
	if err != nil {
		return err
	}
	fmt.Printf("[Build] Found %d post files and %d asset files.\n",
		len(fileSet.PostFiles), len(fileSet.AssetFiles))

	outputRoot := cfg.OutputRoot()
	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, outputRoot, err)
	}

	// Copy assets only when mirroring into a separate directory; in-place
	// builds leave them where they are.
	if !cfg.InPlace() {
		for _, relPath := range fileSet.AssetFiles {
			src := filepath.Join(cfg.ContentDir, relPath)
			dst := filepath.Join(outputRoot, relPath)
			fmt.Printf("[Copy]   %s -> %s\n", relPath, dst)
			if err := copyFilePreserveDirs(src, dst); err != nil {
				return fmt.Errorf("%w: asset %s: %v", ErrWrite, relPath, err)
			}
		}
	}

	// Parse everything before rendering anything: sorting, grouping and the
	// feeds need the full collection.
	parser := NewParser(cfg.ContentDir, loc)
	posts := make([]*Post, 0, len(fileSet.PostFiles))
	for _, relPath := range fileSet.PostFiles {
		post, err := parser.ParseFile(filepath.Join(cfg.ContentDir, relPath))
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	collection := Organize(posts)

	ts, err := LoadTemplates(cfg.TemplateDir)
	if err != nil {
		return err
	}
	renderer := NewRenderer(cfg, ts)
	paths := NewArtifactPaths(outputRoot)

	var cache, nextCache *cacheFile
	if cfg.Incremental {
		cache, err = loadCache(getCachePath(outputRoot))
		if err != nil {
			cache = newCache()
		}
		nextCache = newCache()
	}

	for _, post := range collection.Posts {
		relSrc, err := filepath.Rel(cfg.ContentDir, post.SourcePath)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", post.SourcePath, err)
		}
		dst := paths.Post(post)

		if cfg.Incremental {
			mtime := getMtime(post.SourcePath)
			relOut, _ := filepath.Rel(outputRoot, dst)
			nextCache.Files[relSrc] = cacheFileEntry{Mtime: mtime, Output: relOut}
			if prev, ok := cache.Files[relSrc]; ok && prev.Mtime == mtime {
				if _, statErr := os.Stat(dst); statErr == nil {
					fmt.Printf("[Build]  %s unchanged, skipping\n", relSrc)
					continue
				}
			}
		}

		fmt.Printf("[Build]  %s -> %s\n", relSrc, dst)
		page, err := renderer.RenderPost(post)
		if err != nil {
			return err
		}
		if err := WriteArtifact(dst, page); err != nil {
			return err
		}
		if warn := checkPageWeight(dst, page, pageWeightThreshold); warn != "" {
			fmt.Fprint(os.Stderr, warn)
		}
	}

	fmt.Printf("[Build]  index.html (%d posts)\n", len(collection.Posts))
	index, err := renderer.RenderIndex(collection)
	if err != nil {
		return err
	}
	if err := WriteArtifact(paths.Index(), index); err != nil {
		return err
	}

	for _, yg := range collection.Years {
		page, err := renderer.RenderArchive(fmt.Sprintf("%d", yg.Year), yg.Posts)
		if err != nil {
			return err
		}
		if err := WriteArtifact(paths.YearArchive(yg.Year), page); err != nil {
			return err
		}
		for _, mg := range yg.Months {
			page, err := renderer.RenderArchive(mg.Label, mg.Posts)
			if err != nil {
				return err
			}
			if err := WriteArtifact(paths.MonthArchive(mg.Year, int(mg.Month)), page); err != nil {
				return err
			}
		}
	}
	fmt.Printf("[Build]  %d year archive(s)\n", len(collection.Years))

	// Feeds render last: they are the only artifacts built from the
	// absolutized post bodies.
	buildTime := time.Now()
	fmt.Printf("[Feed]   rss.xml, feed.json\n")
	rss, err := renderer.RenderRSS(collection, buildTime)
	if err != nil {
		return err
	}
	if err := WriteArtifact(paths.RSS(), rss); err != nil {
		return err
	}
	jsonFeed, err := renderer.RenderJSONFeed(collection, buildTime)
	if err != nil {
		return err
	}
	if err := WriteArtifact(paths.JSONFeed(), jsonFeed); err != nil {
		return err
	}

	css, err := EmbeddedFiles.ReadFile("templates/style.css")
	if err == nil {
		if err := WriteArtifact(paths.Stylesheet(), css); err != nil {
			return err
		}
	}

	if cfg.Clean {
		if cfg.InPlace() {
			fmt.Println("[Clean] Skipped: cleanup requires a separate output directory.")
		} else {
			cleaner := NewOutputCleaner(outputRoot)
			if err := cleaner.CleanupOrphanedFiles(fileSet); err != nil {
				return fmt.Errorf("cleaning output directory: %w", err)
			}
		}
	}

	if cfg.Incremental {
		if err := saveCache(getCachePath(outputRoot), nextCache); err != nil {
			return fmt.Errorf("%w: cache: %v", ErrWrite, err)
		}
	}

	fmt.Printf("[Build] Blog build complete in %v.\n", time.Since(startTime))
	return nil
}

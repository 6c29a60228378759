// serve.go - Local preview of a built blog
package blog

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// ServeDir serves a built blog directory over HTTP for local preview. The
// directory must hold a generated index.html; a tree that was never built
// is refused rather than served as raw sources.
func ServeDir(dir string, port int) error {
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		return fmt.Errorf("no index.html under %s: run build first", dir)
	}
	handler := http.FileServer(http.Dir(dir))
	fmt.Printf("Serving '%s' at http://localhost:%d\n", dir, port)
	fmt.Println("Press Ctrl+C to stop.")
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, handler)
}

package blog

import (
	"bytes"
	"compress/gzip"
	"fmt"
)

// checkPageWeight reports the gzip-compressed size of a rendered page and a
// warning when it exceeds the threshold. Returns an empty string when the
// page is within budget.
func checkPageWeight(path string, data []byte, threshold int) string {
	if threshold <= 0 {
		return ""
	}
	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	if _, err := gz.Write(data); err != nil {
		gz.Close()
		return ""
	}
	gz.Close()
	if gzBuf.Len() <= threshold {
		return ""
	}
	sizeKB := float64(gzBuf.Len()) / 1024
	threshKB := float64(threshold) / 1024
	return fmt.Sprintf("[WARN] %s: compressed size is %.1fKB (> %.1fKB)\n", path, sizeKB, threshKB)
}

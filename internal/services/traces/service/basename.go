package service

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"gasanalysis/internal/adapters/ingest/tracefile"
)

// Basename strips the directory and then every trailing extension:
// "a/b/c.jsonl.gz" -> "c", "c" -> "c". URLs use the last path segment
func Basename(location string) string {
	base := filepath.Base(location)
	if tracefile.IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			base = path.Base(u.Path)
		}
	}
	for {
		stem, ext := splitExt(base)
		if ext == "" {
			return stem
		}
		base = stem
	}
}

// splitExt splits off the last extension; leading dots never start one (".hidden" has none)
func splitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}

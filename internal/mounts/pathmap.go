package mounts

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// NormalizeHostPath expands a leading tilde, makes the path absolute, and
// resolves symlinks when the path exists. Nonexistent paths come back cleaned
// but unresolved so validation can report them by their requested name.
func NormalizeHostPath(p string) string {
	expanded := expandTilde(p)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return filepath.Clean(expanded)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

func expandTilde(p string) string {
	if p == "~" {
		if home, err := HostHomeDir(); err == nil {
			return home
		}
		return p
	}
	if strings.HasPrefix(p, "~"+string(os.PathSeparator)) || strings.HasPrefix(p, "~/") {
		if home, err := HostHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// MapToContainer maps a host path into a container through the container's
// mount table, picking the mount with the longest (most specific) matching
// source. Matching is path-component-wise, never a plain string prefix. The
// boolean is false when no mount covers the path.
func MapToContainer(hostPath string, table []Bind) (string, bool) {
	norm := NormalizeHostPath(hostPath)

	bestLen := -1
	var bestDest, bestRel string
	for _, bind := range table {
		src := NormalizeHostPath(bind.Source)
		rel, err := filepath.Rel(src, norm)
		if err != nil {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			continue
		}
		if len(src) > bestLen {
			bestLen = len(src)
			bestDest = bind.Destination
			bestRel = rel
		}
	}
	if bestLen < 0 {
		return "", false
	}
	if bestRel == "." {
		return bestDest, true
	}
	return path.Join(bestDest, filepath.ToSlash(bestRel)), true
}

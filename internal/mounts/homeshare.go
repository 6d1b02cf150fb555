package mounts

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// HomeSharePairs expands requested home-share paths into bind mounts. Each
// accepted share yields an identity mount (same path on both sides) and a
// tilde mount remapped under the container's image home, the latter skipped
// when it coincides with the former. Shares that do not exist or escape the
// user's real home directory are skipped with a warning rather than mounted.
func HomeSharePairs(shares []string, userHome, imageHome string) []Bind {
	if len(shares) == 0 {
		return nil
	}

	home := NormalizeHostPath(userHome)
	seen := make(map[Bind]struct{})
	var pairs []Bind

	add := func(b Bind) {
		if _, dup := seen[b]; dup {
			return
		}
		seen[b] = struct{}{}
		pairs = append(pairs, b)
	}

	for _, share := range shares {
		src := NormalizeHostPath(share)

		if _, err := os.Stat(src); err != nil {
			log.Warn("home share does not exist, skipping", "path", src)
			continue
		}

		rel, err := filepath.Rel(home, src)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			log.Warn("home share is not under the user's home directory, skipping", "path", src)
			continue
		}

		add(Bind{Source: src, Destination: src})

		var tildeTarget string
		if rel == "." {
			tildeTarget = imageHome
		} else {
			tildeTarget = path.Join(imageHome, filepath.ToSlash(rel))
		}
		if tildeTarget != src {
			add(Bind{Source: src, Destination: tildeTarget})
		}
	}

	return pairs
}

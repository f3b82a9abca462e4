// Package templates ships the canonical screenshot templates inside the
// binary and exposes them read-only to the scaffolder and the upgrade
// subsystem.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/shotforge/shotforge/internal/snapshot"
)

//go:embed files
var content embed.FS

// StatusBarName is the shared status-bar partial, copied alongside every
// template. It is not itself a selectable template.
const StatusBarName = "statusbar"

// Names returns all selectable template identifiers, sorted.
func Names() []string {
	entries, _ := fs.ReadDir(content, "files")
	var names []string
	for _, e := range entries {
		if e.IsDir() && e.Name() != StatusBarName {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Exists reports whether name is a known template identifier.
func Exists(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Open returns the canonical files of the named template as a read-only
// filesystem. Unknown names are an error listing the known set.
func Open(name string) (fs.FS, error) {
	if name != StatusBarName && !Exists(name) {
		return nil, fmt.Errorf("unknown template %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	return fs.Sub(content, "files/"+name)
}

// StatusBar returns the shared status-bar partial files.
func StatusBar() fs.FS {
	sub, _ := fs.Sub(content, "files/"+StatusBarName)
	return sub
}

// Detect infers which template a project was scaffolded from by scoring
// each template against the user's current files: one point per shared
// path, two per identical fingerprint. Used when the baseline record is
// missing or unreadable. Returns false if no template matches at all.
func Detect(user snapshot.Snapshot) (string, bool) {
	best, bestScore := "", 0
	for _, name := range Names() {
		sub, err := Open(name)
		if err != nil {
			continue
		}
		up, err := snapshot.FS(sub)
		if err != nil {
			continue
		}
		score := 0
		for path, digest := range up {
			if userDigest, ok := user[path]; ok {
				score++
				if userDigest == digest {
					score += 2
				}
			}
		}
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	return best, bestScore > 0
}

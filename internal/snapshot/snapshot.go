// Package snapshot fingerprints directory trees for change detection.
// A snapshot maps relative file paths to content digests; comparing
// snapshots is how the upgrade subsystem decides what changed without
// consulting timestamps or sizes.
package snapshot

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Hash returns the hex SHA-256 digest of content. Byte-exact: no newline
// normalization, no encoding assumptions.
func Hash(content []byte) string {
	h := sha256.Sum256(content)
	return fmt.Sprintf("%x", h)
}

// Snapshot maps a forward-slash relative file path to its content digest.
// Never mutated after construction; snapshots are compared, not merged.
type Snapshot map[string]string

// Dir walks root recursively and fingerprints every regular file.
// A nonexistent root yields an empty snapshot, not an error — callers
// treat "component not present yet" as zero files.
func Dir(root string) (Snapshot, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return Snapshot{}, nil
	}
	return FS(os.DirFS(root))
}

// FS fingerprints every regular file in fsys. Dot-prefixed entries at the
// walk root are skipped (that is where baselines, backups, and editor
// droppings live); hidden files deeper in the tree are template content
// and are tracked like any other. Paths use forward slashes as returned
// by fs.WalkDir, so snapshots are portable across filesystems.
func FS(fsys fs.FS) (Snapshot, error) {
	snap := Snapshot{}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		atRoot := path != "." && !strings.Contains(path, "/")
		if atRoot && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		snap[path] = Hash(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Equal reports whether two snapshots cover the same paths with identical
// digests. Map-based, so filesystem iteration order never matters.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for path, digest := range s {
		if other[path] != digest {
			return false
		}
	}
	return true
}

// Paths returns the snapshot's paths in sorted order, for deterministic
// display and iteration.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Package reconcile classifies the differences between a user's template
// files and the upstream templates shipped with the tool. The baseline
// fingerprints recorded at project creation are what distinguish "upstream
// changed this file" from "the user edited it".
package reconcile

import (
	"sort"

	"github.com/shotforge/shotforge/internal/snapshot"
)

// Kind is the relationship between the upstream snapshot and the user's
// current snapshot for one path.
type Kind int

const (
	// Added: present upstream, absent from the user's project.
	Added Kind = iota
	// Removed: present in the user's project, absent upstream.
	Removed
	// Modified: present in both with different fingerprints.
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "modified"
	}
}

// Change is one file's classification. UserModified is set only on
// Modified records: true iff the user's current fingerprint differs from
// the baseline fingerprint for that path. It is the sole conflict signal —
// a Modified change with UserModified false is always safe to overwrite.
type Change struct {
	Path         string
	Kind         Kind
	UserModified bool
}

// Changes cross-references the user's current snapshot, the upstream
// snapshot, and the baseline fingerprints, producing one Change per path
// that differs. Identical fingerprints yield no record. The result is
// ordered by path so display and apply are deterministic.
//
// A path with no baseline fingerprint is never flagged UserModified, even
// when user and upstream differ: with no recorded history the conflict
// flag defaults to safe-to-overwrite; the backup still protects the user.
func Changes(user, upstream snapshot.Snapshot, baseline map[string]string) []Change {
	seen := make(map[string]bool, len(user)+len(upstream))
	var paths []string
	for p := range upstream {
		seen[p] = true
		paths = append(paths, p)
	}
	for p := range user {
		if !seen[p] {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var changes []Change
	for _, p := range paths {
		userHash, inUser := user[p]
		upHash, inUpstream := upstream[p]
		switch {
		case inUpstream && !inUser:
			changes = append(changes, Change{Path: p, Kind: Added})
		case inUser && !inUpstream:
			changes = append(changes, Change{Path: p, Kind: Removed})
		case userHash != upHash:
			base, hasBase := baseline[p]
			changes = append(changes, Change{
				Path:         p,
				Kind:         Modified,
				UserModified: hasBase && userHash != base,
			})
		}
	}
	return changes
}

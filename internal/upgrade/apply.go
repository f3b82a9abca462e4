package upgrade

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shotforge/shotforge/internal/format"
	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/reconcile"
)

// sidecarSuffix marks the preserved copy of a locally modified file.
const sidecarSuffix = ".orig"

// backup copies the project's template directories into a timestamped
// folder before any mutation. The copy is verified on disk — it is the
// sole recovery mechanism for everything apply does afterwards. A project
// whose template directories are missing entirely backs up as an empty
// folder; that is still a faithful copy of the pre-upgrade state.
func backup(paths project.Paths) (string, error) {
	dir := filepath.Join(paths.BackupsDir, time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := copyDir(paths.TemplateDir, filepath.Join(dir, "template")); err != nil {
		return "", err
	}
	if err := copyDir(paths.StatusBarDir, filepath.Join(dir, "statusbar")); err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("backup directory was not created: %w", err)
	}
	return dir, nil
}

// apply executes the change list against the user's project. Removed
// records are retained untouched; modified files with local edits are
// preserved under a .orig sidecar before the upstream version replaces
// them. The first write failure halts the run immediately — the backup is
// the recovery path, so no rollback is attempted.
func apply(opts Options, paths project.Paths, tplFS fs.FS, changes []fileChange) (int, error) {
	applied := 0
	for _, c := range changes {
		dst := filepath.Join(userDir(paths, c), filepath.FromSlash(c.Path))

		switch c.Kind {
		case reconcile.Removed:
			fmt.Fprintf(opts.Out, "  kept    %s %s(no longer shipped upstream)%s\n",
				c.displayPath(), format.Dim, format.Reset)
			continue

		case reconcile.Modified:
			if c.UserModified {
				current, err := os.ReadFile(dst)
				if err != nil {
					return applied, fmt.Errorf("reading %s for sidecar: %w", c.displayPath(), err)
				}
				if err := os.WriteFile(dst+sidecarSuffix, current, 0o644); err != nil {
					return applied, fmt.Errorf("writing %s%s: %w", c.displayPath(), sidecarSuffix, err)
				}
				fmt.Fprintf(opts.Out, "  saved   %s%s\n", c.displayPath(), sidecarSuffix)
			}
		}

		data, err := fs.ReadFile(upstreamFS(tplFS, c), c.Path)
		if err != nil {
			return applied, fmt.Errorf("reading upstream %s: %w", c.displayPath(), err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return applied, err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return applied, fmt.Errorf("writing %s: %w", c.displayPath(), err)
		}

		if c.Kind == reconcile.Added {
			fmt.Fprintf(opts.Out, "  added   %s\n", c.displayPath())
		} else {
			fmt.Fprintf(opts.Out, "  updated %s\n", c.displayPath())
		}
		applied++
	}
	return applied, nil
}

// copyDir recursively copies every file under src into dst, preserving
// the relative layout. A missing src is a no-op so projects without the
// optional status-bar directory back up cleanly.
func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

package upgrade

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shotforge/shotforge/internal/format"
	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/reconcile"
	"github.com/shotforge/shotforge/internal/textdiff"
)

const diffContextLines = 3

// display renders the change list, one line per file with a kind marker,
// and optionally the per-file line diffs for modified files.
func display(opts Options, paths project.Paths, tplFS fs.FS, changes []fileChange) {
	fmt.Fprintf(opts.Out, "Template changes (%d):\n\n", len(changes))

	for _, c := range changes {
		switch c.Kind {
		case reconcile.Added:
			fmt.Fprintf(opts.Out, "  %s+ %s%s %s(new upstream file)%s\n",
				format.Green, c.displayPath(), format.Reset, format.Dim, format.Reset)
		case reconcile.Removed:
			fmt.Fprintf(opts.Out, "  %s- %s%s %s(removed upstream; your copy is kept)%s\n",
				format.Yellow, c.displayPath(), format.Reset, format.Dim, format.Reset)
		case reconcile.Modified:
			note := ""
			if c.UserModified {
				note = format.Yellow + " (has local modifications)" + format.Reset
			}
			fmt.Fprintf(opts.Out, "  %s~ %s%s%s\n",
				format.Cyan, c.displayPath(), format.Reset, note)
			if opts.ShowDiff {
				printDiff(opts, paths, tplFS, c)
			}
		}
	}
}

// printDiff renders the line-level diff between the user's file and the
// upstream version, either as colorized hunks or side by side.
func printDiff(opts Options, paths project.Paths, tplFS fs.FS, c fileChange) {
	userText, err := os.ReadFile(filepath.Join(userDir(paths, c), filepath.FromSlash(c.Path)))
	if err != nil {
		fmt.Fprintf(opts.Out, "    %s(could not read local file: %v)%s\n", format.Dim, err, format.Reset)
		return
	}
	upText, err := fs.ReadFile(upstreamFS(tplFS, c), c.Path)
	if err != nil {
		fmt.Fprintf(opts.Out, "    %s(could not read upstream file: %v)%s\n", format.Dim, err, format.Reset)
		return
	}

	if !textdiff.HasDifferences(string(userText), string(upText)) {
		return
	}

	if opts.SideBySide {
		fmt.Fprintln(opts.Out, format.SideBySide(string(userText), string(upText)))
		return
	}

	ops := textdiff.Diff(string(userText), string(upText))
	if hunks := textdiff.FormatDiff(ops, diffContextLines); hunks != "" {
		fmt.Fprintln(opts.Out, hunks)
	}
	adds, dels := textdiff.CountChanges(ops)
	fmt.Fprintf(opts.Out, "  %s%d addition(s), %d removal(s)%s\n",
		format.Dim, adds, dels, format.Reset)
}

// userDir returns the directory in the user's project a change applies to.
func userDir(paths project.Paths, c fileChange) string {
	if c.statusBar {
		return paths.StatusBarDir
	}
	return paths.TemplateDir
}

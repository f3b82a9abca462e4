// Package upgrade reconciles a project's template files with the
// templates shipped in the current binary. It never destroys user
// content: a full backup is taken before any write, upstream deletions
// leave the user's files in place, and locally modified files are
// preserved under a .orig sidecar before being overwritten.
package upgrade

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/shotforge/shotforge/internal/baseline"
	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/reconcile"
	"github.com/shotforge/shotforge/internal/snapshot"
	"github.com/shotforge/shotforge/internal/templates"
)

// statusBarPrefix qualifies shared status-bar paths in display so they
// stay distinguishable from primary template paths.
const statusBarPrefix = "statusbar/"

// Options configures one upgrade run.
type Options struct {
	ProjectDir string
	Version    string // running tool version, compared against the baseline
	DryRun     bool   // compare and display only, no writes of any kind
	Force      bool   // skip the up-to-date short-circuit and the prompt
	ShowDiff   bool   // render per-file line diffs for modified files
	SideBySide bool   // with ShowDiff, render two-column diffs instead

	In  io.Reader // confirmation prompt input
	Out io.Writer
}

// fileChange is one reconciler record plus which of the two template
// directories it belongs to.
type fileChange struct {
	reconcile.Change
	statusBar bool
}

func (c fileChange) displayPath() string {
	if c.statusBar {
		return statusBarPrefix + c.Path
	}
	return c.Path
}

// Run drives a full upgrade cycle: load or detect the baseline, compare
// versions, reconcile, display, confirm, back up, apply, and persist a
// fresh baseline. Every terminal outcome prints a distinct message.
func Run(opts Options) error {
	paths := project.NewPaths(opts.ProjectDir)
	if !project.Exists(paths.Root) {
		return fmt.Errorf("no project found at %s (run 'shotforge init' first)", paths.Root)
	}

	base, err := loadOrDetectBaseline(paths)
	if err != nil {
		return err
	}

	if base.Version == opts.Version && !opts.Force {
		fmt.Fprintf(opts.Out, "Templates are already up to date (version %s).\n", opts.Version)
		return nil
	}

	tplFS, err := templates.Open(base.Template)
	if err != nil {
		return err
	}

	userTpl, err := snapshot.Dir(paths.TemplateDir)
	if err != nil {
		return err
	}
	upTpl, err := snapshot.FS(tplFS)
	if err != nil {
		return err
	}
	userSB, err := snapshot.Dir(paths.StatusBarDir)
	if err != nil {
		return err
	}
	upSB, err := snapshot.FS(templates.StatusBar())
	if err != nil {
		return err
	}

	var changes []fileChange
	for _, c := range reconcile.Changes(userTpl, upTpl, base.Files) {
		changes = append(changes, fileChange{Change: c})
	}
	for _, c := range reconcile.Changes(userSB, upSB, base.StatusBarFiles) {
		changes = append(changes, fileChange{Change: c, statusBar: true})
	}

	if len(changes) == 0 {
		fmt.Fprintln(opts.Out, "No template changes detected.")
		if !opts.DryRun {
			if err := persistBaseline(paths, base, opts.Version); err != nil {
				return err
			}
		}
		return nil
	}

	display(opts, paths, tplFS, changes)

	if opts.DryRun {
		fmt.Fprintln(opts.Out, "\nDry run: no files were changed.")
		return nil
	}

	if n := countConflicts(changes); n > 0 {
		fmt.Fprintf(opts.Out, "\n%d file(s) have local modifications. Your versions will be saved with a .orig suffix.\n", n)
	}

	if !opts.Force && !confirm(opts.In, opts.Out) {
		fmt.Fprintln(opts.Out, "Aborted. No changes applied.")
		return nil
	}

	backupDir, err := backup(paths)
	if err != nil {
		return fmt.Errorf("creating backup: %w", err)
	}
	fmt.Fprintf(opts.Out, "Backup saved to %s\n", backupDir)

	applied, err := apply(opts, paths, tplFS, changes)
	if err != nil {
		return fmt.Errorf("applying changes (your previous files are in %s): %w", backupDir, err)
	}

	if err := persistBaseline(paths, base, opts.Version); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "\nUpgrade complete: %d file(s) updated.\n", applied)
	return nil
}

// loadOrDetectBaseline reads the persisted baseline, falling back to
// template detection when it is missing or unreadable. A detected
// baseline has an empty fingerprint map, so nothing is flagged as a
// local modification on the first tracked upgrade.
func loadOrDetectBaseline(paths project.Paths) (*baseline.Record, error) {
	base, err := baseline.Load(paths.BaselineFile)
	if err == nil {
		return base, nil
	}

	userTpl, err := snapshot.Dir(paths.TemplateDir)
	if err != nil {
		return nil, err
	}
	name, ok := templates.Detect(userTpl)
	if !ok {
		return nil, fmt.Errorf("no baseline record and the template in %s could not be recognized (available: %s)",
			paths.TemplateDir, strings.Join(templates.Names(), ", "))
	}
	return &baseline.Record{
		Template:       name,
		Files:          map[string]string{},
		StatusBarFiles: map[string]string{},
	}, nil
}

// persistBaseline re-snapshots the user's template directories and writes
// a refreshed record stamped with the running version.
func persistBaseline(paths project.Paths, base *baseline.Record, version string) error {
	files, err := snapshot.Dir(paths.TemplateDir)
	if err != nil {
		return err
	}
	statusBar, err := snapshot.Dir(paths.StatusBarDir)
	if err != nil {
		return err
	}
	return base.Refresh(version, files, statusBar).Save(paths.BaselineFile)
}

func countConflicts(changes []fileChange) int {
	n := 0
	for _, c := range changes {
		if c.UserModified {
			n++
		}
	}
	return n
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "\nApply these changes? [y/N] ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// upstreamFS returns the shipped filesystem a change applies against.
func upstreamFS(tplFS fs.FS, c fileChange) fs.FS {
	if c.statusBar {
		return templates.StatusBar()
	}
	return tplFS
}

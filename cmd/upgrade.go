package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/upgrade"
	"github.com/shotforge/shotforge/internal/version"
)

// RunUpgrade handles the "upgrade" subcommand.
func RunUpgrade(args []string) {
	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	projectDir := fs.String("project", project.DefaultDir, "Project directory")
	dryRun := fs.Bool("dry-run", false, "Show what would change without writing anything")
	force := fs.Bool("force", false, "Skip the up-to-date check and the confirmation prompt")
	showDiff := fs.Bool("diff", false, "Show line-level diffs for modified files")
	sideBySide := fs.Bool("side-by-side", false, "With --diff: render diffs in two columns")
	fs.Parse(args)

	err := upgrade.Run(upgrade.Options{
		ProjectDir: *projectDir,
		Version:    version.Current,
		DryRun:     *dryRun,
		Force:      *force,
		ShowDiff:   *showDiff || *sideBySide,
		SideBySide: *sideBySide,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

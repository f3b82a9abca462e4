// Package scaffold creates a new shotforge project from a shipped
// template: the template files, the shared status bar, a starter render
// config, and the baseline record future upgrades compare against.
package scaffold

import (
	"fmt"
	"os"

	"github.com/shotforge/shotforge/internal/baseline"
	"github.com/shotforge/shotforge/internal/config"
	"github.com/shotforge/shotforge/internal/project"
	"github.com/shotforge/shotforge/internal/snapshot"
	"github.com/shotforge/shotforge/internal/templates"
)

// Create scaffolds a project at dir from the named template. Refuses to
// touch a directory that already holds a baseline record.
func Create(dir, templateName, version string) error {
	tplFS, err := templates.Open(templateName)
	if err != nil {
		return err
	}

	paths := project.NewPaths(dir)
	if _, err := os.Stat(paths.BaselineFile); err == nil {
		return fmt.Errorf("%s already contains a shotforge project", dir)
	}

	if err := os.MkdirAll(paths.TemplateDir, 0o755); err != nil {
		return err
	}
	if err := os.CopyFS(paths.TemplateDir, tplFS); err != nil {
		return fmt.Errorf("copying template %s: %w", templateName, err)
	}
	if err := os.MkdirAll(paths.StatusBarDir, 0o755); err != nil {
		return err
	}
	if err := os.CopyFS(paths.StatusBarDir, templates.StatusBar()); err != nil {
		return fmt.Errorf("copying status bar: %w", err)
	}

	if _, err := os.Stat(paths.ConfigFile); os.IsNotExist(err) {
		if err := config.Save(paths.ConfigFile, config.Default()); err != nil {
			return err
		}
	}

	files, err := snapshot.Dir(paths.TemplateDir)
	if err != nil {
		return err
	}
	statusBar, err := snapshot.Dir(paths.StatusBarDir)
	if err != nil {
		return err
	}
	return baseline.New(templateName, version, files, statusBar).Save(paths.BaselineFile)
}

// Package project defines the directory layout of a shotforge project.
package project

import (
	"os"
	"path/filepath"
)

// DefaultDir is the conventional project subfolder created by "shotforge init".
const DefaultDir = "screenshots"

// Paths holds all relevant locations inside a shotforge project.
type Paths struct {
	Root         string // project directory
	TemplateDir  string // the user's copy of the chosen template
	StatusBarDir string // shared status-bar partial, used by every template
	BaselineFile string // .shotforge.json, fingerprints recorded at creation
	ConfigFile   string // shotforge.yaml render configuration
	BackupsDir   string // timestamped pre-upgrade backups
	OutputDir    string // rendered screenshots
}

// NewPaths constructs all path constants from a project root.
func NewPaths(root string) Paths {
	return Paths{
		Root:         root,
		TemplateDir:  filepath.Join(root, "template"),
		StatusBarDir: filepath.Join(root, "statusbar"),
		BaselineFile: filepath.Join(root, ".shotforge.json"),
		ConfigFile:   filepath.Join(root, "shotforge.yaml"),
		BackupsDir:   filepath.Join(root, ".backups"),
		OutputDir:    filepath.Join(root, "output"),
	}
}

// Exists returns true if root is a directory.
func Exists(root string) bool {
	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}

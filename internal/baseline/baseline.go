// Package baseline persists the fingerprint record captured when a
// project is scaffolded. It is what later upgrades compare against to
// tell user edits apart from upstream template changes.
package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shotforge/shotforge/internal/snapshot"
)

// Record is the persisted baseline: the template a project was created
// from, the tool version that last wrote it, and the fingerprint of every
// template file at that moment. Stored as .shotforge.json in the project
// root; the upgrade orchestrator is its only writer after creation.
type Record struct {
	Version        string            `json:"version"`
	Template       string            `json:"template"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
	Files          map[string]string `json:"files"`
	StatusBarFiles map[string]string `json:"statusBarFiles,omitempty"`
}

// New builds a record for the given template from fresh snapshots,
// stamped with the current time.
func New(template, version string, files, statusBar snapshot.Snapshot) *Record {
	return &Record{
		Version:        version,
		Template:       template,
		CreatedAt:      now(),
		Files:          files,
		StatusBarFiles: statusBar,
	}
}

// Refresh returns a copy of r with new snapshots, version, and an updated
// timestamp. The creation timestamp is carried over.
func (r *Record) Refresh(version string, files, statusBar snapshot.Snapshot) *Record {
	return &Record{
		Version:        version,
		Template:       r.Template,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      now(),
		Files:          files,
		StatusBarFiles: statusBar,
	}
}

// Load reads a baseline record from path. A missing or unparsable file is
// an error; callers fall back to template detection.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if r.Template == "" {
		return nil, fmt.Errorf("baseline %s has no template identifier", path)
	}
	return &r, nil
}

// Save writes the record to path as indented JSON.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

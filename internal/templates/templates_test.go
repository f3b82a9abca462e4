package templates

import (
	"strings"
	"testing"

	"github.com/shotforge/shotforge/internal/snapshot"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no templates embedded")
	}
	for _, name := range names {
		if name == StatusBarName {
			t.Error("statusbar must not be a selectable template")
		}
		if !Exists(name) {
			t.Errorf("Exists(%q) = false for listed template", name)
		}
	}
}

func TestOpen_UnknownTemplate(t *testing.T) {
	_, err := Open("no-such-template")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !strings.Contains(err.Error(), "available:") {
		t.Errorf("error should list known templates: %v", err)
	}
}

func TestOpen_HasIndexFile(t *testing.T) {
	for _, name := range Names() {
		sub, err := Open(name)
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		snap, err := snapshot.FS(sub)
		if err != nil {
			t.Fatalf("snapshot of %q: %v", name, err)
		}
		if _, ok := snap["index.html"]; !ok {
			t.Errorf("template %q ships no index.html: %v", name, snap.Paths())
		}
	}
}

func TestDetect_ExactCopy(t *testing.T) {
	for _, name := range Names() {
		sub, _ := Open(name)
		snap, err := snapshot.FS(sub)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := Detect(snap)
		if !ok || got != name {
			t.Errorf("Detect on pristine %q = %q, %v", name, got, ok)
		}
	}
}

func TestDetect_EditedCopyStillMatches(t *testing.T) {
	sub, _ := Open("clean")
	snap, err := snapshot.FS(sub)
	if err != nil {
		t.Fatal(err)
	}
	// Same paths, one fingerprint changed: path overlap should still win.
	snap["styles.css"] = "deadbeef"
	got, ok := Detect(snap)
	if !ok || got != "clean" {
		t.Errorf("Detect on edited copy = %q, %v, want clean", got, ok)
	}
}

func TestDetect_UnrelatedFiles(t *testing.T) {
	if name, ok := Detect(snapshot.Snapshot{"README.md": "x", "src/app.js": "y"}); ok {
		t.Errorf("Detect matched %q for unrelated files", name)
	}
}

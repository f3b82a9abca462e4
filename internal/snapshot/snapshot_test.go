package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHash_Deterministic(t *testing.T) {
	a := Hash([]byte("hello\nworld"))
	b := Hash([]byte("hello\nworld"))
	if a != b {
		t.Errorf("same content hashed differently: %s vs %s", a, b)
	}
	if a == Hash([]byte("hello\nworld ")) {
		t.Error("different content produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestHash_ByteExact(t *testing.T) {
	// No newline normalization: CRLF and LF content must differ.
	if Hash([]byte("a\r\nb")) == Hash([]byte("a\nb")) {
		t.Error("CRLF and LF content hashed identically")
	}
}

func TestDir_NonexistentDirectory(t *testing.T) {
	snap, err := Dir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %d entries", len(snap))
	}
}

func TestDir_RelativePosixPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "css/styles.css", "body {}")

	snap, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	want := []string{"css/styles.css", "index.html"}
	if !reflect.DeepEqual(snap.Paths(), want) {
		t.Errorf("paths = %v, want %v", snap.Paths(), want)
	}
}

func TestDir_SkipsDotFilesAtRootOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "x")
	writeFile(t, dir, ".shotforge.json", "{}")
	writeFile(t, dir, ".backups/old/index.html", "x")
	writeFile(t, dir, "fonts/.woff2.css", "@font-face {}")

	snap, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	want := []string{"fonts/.woff2.css", "index.html"}
	if !reflect.DeepEqual(snap.Paths(), want) {
		t.Errorf("paths = %v, want %v", snap.Paths(), want)
	}
}

func TestEqual_OrderIndependent(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	for _, d := range []string{a, b} {
		writeFile(t, d, "one.html", "same")
		writeFile(t, d, "sub/two.css", "content")
	}

	snapA, _ := Dir(a)
	snapB, _ := Dir(b)
	if !snapA.Equal(snapB) {
		t.Error("identical trees produced unequal snapshots")
	}

	writeFile(t, b, "sub/two.css", "changed")
	snapB, _ = Dir(b)
	if snapA.Equal(snapB) {
		t.Error("differing trees reported equal")
	}
}

func TestEqual_DifferentPathSets(t *testing.T) {
	a := Snapshot{"x": "1"}
	b := Snapshot{"x": "1", "y": "2"}
	if a.Equal(b) || b.Equal(a) {
		t.Error("snapshots with different path sets reported equal")
	}
}

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shotforge.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 1242 || cfg.Height != 2688 {
		t.Errorf("dimensions = %dx%d, want 1242x2688", cfg.Width, cfg.Height)
	}
	if len(cfg.Screens) != 1 || cfg.Screens[0].Name != "home" {
		t.Errorf("screens = %+v", cfg.Screens)
	}
}

func TestLoader_CachesUntilInvalidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shotforge.yaml")
	os.WriteFile(path, []byte("width: 100\nheight: 200\n"), 0o644)

	l := NewLoader(path)
	first, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if first.Width != 100 {
		t.Fatalf("width = %d, want 100", first.Width)
	}

	os.WriteFile(path, []byte("width: 999\nheight: 200\n"), 0o644)

	cached, _ := l.Load()
	if cached.Width != 100 {
		t.Error("Load re-read the file without invalidation")
	}

	l.Invalidate()
	fresh, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Width != 999 {
		t.Errorf("width after invalidation = %d, want 999", fresh.Width)
	}
}

func TestLoader_ConcurrentLoadAndInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shotforge.yaml")
	os.WriteFile(path, []byte("width: 100\nheight: 200\n"), 0o644)

	l := NewLoader(path)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if cfg, err := l.Load(); err != nil || cfg.Width != 100 {
					t.Errorf("Load: cfg=%+v err=%v", cfg, err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Invalidate()
			}
		}()
	}
	wg.Wait()
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load(); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shotforge.yaml")
	os.WriteFile(path, []byte("width: [oops\n"), 0o644)
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

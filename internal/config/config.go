// Package config loads a project's render configuration from YAML.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Screen is one screenshot to render: a template data binding plus the
// source app screenshot to place inside the device frame.
type Screen struct {
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle,omitempty"`
	Screenshot string `yaml:"screenshot"`
}

// Config is the shotforge.yaml render configuration. The upgrade
// subsystem never touches it; it belongs to the renderer and the preview
// server.
type Config struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Output  string   `yaml:"output"`
	Screens []Screen `yaml:"screens"`
}

// Default returns the configuration written by "shotforge init".
func Default() *Config {
	return &Config{
		Width:  1242,
		Height: 2688,
		Output: "output",
		Screens: []Screen{
			{Name: "home", Title: "Your headline here", Screenshot: "shots/home.png"},
		},
	}
}

// Loader reads a config file on demand and caches the parsed value until
// explicitly invalidated. The preview server invalidates on file-change
// events so edits take effect without a restart. Safe for concurrent use:
// the watcher goroutine invalidates while request handlers load.
type Loader struct {
	path string

	mu     sync.Mutex
	cached *Config
}

// NewLoader creates a loader for the config file at path. Nothing is read
// until Load is called.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the parsed configuration, reading the file only if no
// cached value is held.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cached != nil {
		return l.cached, nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.path, err)
	}
	l.cached = &cfg
	return l.cached, nil
}

// Invalidate drops the cached value; the next Load re-reads the file.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

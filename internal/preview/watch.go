package preview

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of filesystem events (editors often
// write several times per save) into a single reload broadcast.
const watchDebounce = 200 * time.Millisecond

// watch starts an fsnotify watcher over the template, status-bar, and
// config locations. Writes invalidate the config cache and broadcast a
// reload event. The returned func stops the watcher.
func (s *Server) watch() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range []string{s.paths.Root, s.paths.TemplateDir, s.paths.StatusBarDir} {
		// Missing status-bar dir is fine; watch what exists.
		_ = watcher.Add(dir)
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if strings.HasSuffix(ev.Name, ".yaml") {
					s.loader.Invalidate()
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					s.registry.Broadcast("reload")
				})
			case <-watcher.Errors:
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}

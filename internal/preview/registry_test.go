package preview

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_SubscribeBroadcastUnsubscribe(t *testing.T) {
	r := NewRegistry()
	a := r.Subscribe()
	b := r.Subscribe()
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	r.Broadcast("reload")
	if got := <-a; got != "reload" {
		t.Errorf("client a got %q", got)
	}
	if got := <-b; got != "reload" {
		t.Errorf("client b got %q", got)
	}

	r.Unsubscribe(a)
	if r.Len() != 1 {
		t.Errorf("Len after unsubscribe = %d, want 1", r.Len())
	}
	if _, ok := <-a; ok {
		t.Error("unsubscribed channel not closed")
	}

	// Double unsubscribe must not panic.
	r.Unsubscribe(a)
}

func TestRegistry_SlowClientDoesNotBlock(t *testing.T) {
	r := NewRegistry()
	slow := r.Subscribe()
	for i := 0; i < 50; i++ {
		r.Broadcast("reload") // buffer fills; extra events are dropped
	}
	r.Unsubscribe(slow)
}

func TestHandler_ServesProjectFiles(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template")
	os.MkdirAll(tpl, 0o755)
	os.WriteFile(filepath.Join(tpl, "index.html"), []byte("<h1>hi</h1>"), 0o644)

	srv := httptest.NewServer(NewServer(dir).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/template/index.html")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestHandler_ConfigEndpoint(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "shotforge.yaml"),
		[]byte("width: 1242\nheight: 2688\n"), 0o644)

	srv := httptest.NewServer(NewServer(dir).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/config")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %s", ct)
	}
}

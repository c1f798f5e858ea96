package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vellum-dev/vellum/pkg/render"
)

// memPublisher records publishes in order for assertions.
type memPublisher struct {
	keys  []string
	types map[string]string
	data  map[string]string
}

func newMemPublisher() *memPublisher {
	return &memPublisher{
		types: make(map[string]string),
		data:  make(map[string]string),
	}
}

func (m *memPublisher) Publish(_ context.Context, key, contentType string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.keys = append(m.keys, key)
	m.types[key] = contentType
	m.data[key] = string(b)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIsDescription(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"index.yaml", true},
		{"page.yml", true},
		{"data.json", true},
		{"PAGE.YAML", true},
		{"style.css", false},
		{"readme.md", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsDescription(tt.path); got != tt.expected {
			t.Errorf("IsDescription(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestHTMLKey(t *testing.T) {
	tests := []struct {
		rel      string
		expected string
	}{
		{"index.yaml", "index.html"},
		{"docs/guide.yml", "docs/guide.html"},
		{"api.json", "api.html"},
	}
	for _, tt := range tests {
		if got := HTMLKey(tt.rel); got != tt.expected {
			t.Errorf("HTMLKey(%q) = %q, want %q", tt.rel, got, tt.expected)
		}
	}
}

func TestDirPublisher(t *testing.T) {
	root := t.TempDir()
	p := NewDirPublisher(root)

	err := p.Publish(context.Background(), "docs/page.html", "text/html",
		strings.NewReader("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "docs", "page.html"))
	if err != nil {
		t.Fatalf("published file missing: %v", err)
	}
	if string(got) != "<p>hi</p>" {
		t.Errorf("published content = %q", got)
	}
}

func TestSite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "index.yaml", "tag: h1\nchildren: [Welcome]\n")
	writeFile(t, src, "docs/guide.yml", "tag: p\nchildren: [Guide]\n")
	writeFile(t, src, "style.css", "body { margin: 0 }")
	writeFile(t, src, ".git/config", "ignored")

	p := newMemPublisher()
	if err := Site(context.Background(), p, src, render.New(render.Config{})); err != nil {
		t.Fatalf("Site failed: %v", err)
	}

	if len(p.keys) != 3 {
		t.Fatalf("published keys = %v, want 3 entries", p.keys)
	}
	if p.data["index.html"] != "<h1>\nWelcome</h1>\n" {
		t.Errorf("index.html = %q", p.data["index.html"])
	}
	if p.types["index.html"] != "text/html; charset=utf-8" {
		t.Errorf("index.html content type = %q", p.types["index.html"])
	}
	if p.data["docs/guide.html"] != "<p>\nGuide</p>\n" {
		t.Errorf("docs/guide.html = %q", p.data["docs/guide.html"])
	}
	if p.data["style.css"] != "body { margin: 0 }" {
		t.Errorf("style.css = %q", p.data["style.css"])
	}
	if _, ok := p.data[".git/config"]; ok {
		t.Error("dot directories must be skipped")
	}
}

// A broken description stops the walk before anything later publishes.
func TestSiteStopsOnBrokenDescription(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "a-bad.yaml", "children: [no tag]\n")

	p := newMemPublisher()
	err := Site(context.Background(), p, src, render.New(render.Config{}))
	if err == nil {
		t.Fatal("expected error from broken description")
	}
	if len(p.keys) != 0 {
		t.Errorf("nothing should publish after a failure, got %v", p.keys)
	}
}

func TestSiteRoundTripThroughDir(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, src, "page.yaml", "tag: div\nattrs: [[class, card]]\nchildren: [body]\n")

	err := Site(context.Background(), NewDirPublisher(out), src, render.New(render.Config{Compact: true}))
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(out, "page.html"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if want := `<div class="card">body</div>`; string(got) != want {
		t.Errorf("published %q, want %q", got, want)
	}
}

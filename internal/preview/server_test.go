package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDescription(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeDescription(t, root, "index.yaml", "tag: h1\nchildren: [home]\n")
	writeDescription(t, root, "about.yml", "tag: p\nchildren: [about]\n")
	writeDescription(t, root, "docs/guide.json", `{"tag": "p"}`)

	s := New(Config{Root: root})

	tests := []struct {
		path     string
		expected string
		found    bool
	}{
		{"/", "index.yaml", true},
		{"/index", "index.yaml", true},
		{"/index.html", "index.yaml", true},
		{"/index.yaml", "index.yaml", true},
		{"/about", "about.yml", true},
		{"/docs/guide", "docs/guide.json", true},
		{"/missing", "", false},
		{"/../../etc/passwd", "", false},
	}

	for _, tt := range tests {
		file, ok := s.resolve(tt.path)
		if ok != tt.found {
			t.Errorf("resolve(%q) found = %v, want %v", tt.path, ok, tt.found)
			continue
		}
		if !ok {
			continue
		}
		if want := filepath.Join(root, filepath.FromSlash(tt.expected)); file != want {
			t.Errorf("resolve(%q) = %q, want %q", tt.path, file, want)
		}
	}
}

func TestHandleDocument(t *testing.T) {
	root := t.TempDir()
	writeDescription(t, root, "index.yaml", "tag: h1\nchildren: [Welcome]\n")

	s := New(Config{Root: root})
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	if !strings.Contains(body, "<h1>\nWelcome</h1>\n") {
		t.Errorf("body = %q", body)
	}
	if strings.Contains(body, "WebSocket") {
		t.Error("reload script must not be injected when watch is off")
	}
}

func TestHandleDocumentInjectsReloadScript(t *testing.T) {
	root := t.TempDir()
	writeDescription(t, root, "index.yaml", "tag: p\nchildren: [x]\n")

	s := New(Config{Root: root, Watch: true})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Router().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "/_vellum/reload") {
		t.Error("expected the reload client script in the response")
	}
}

func TestHandleDocumentNotFound(t *testing.T) {
	s := New(Config{Root: t.TempDir()})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleDocumentBadDescription(t *testing.T) {
	root := t.TempDir()
	writeDescription(t, root, "broken.yaml", "children: [no tag]\n")

	s := New(Config{Root: root})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "D002") {
		t.Errorf("error body should carry the code, got %q", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Config{Root: t.TempDir()})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("metrics status = %d", rec.Code)
	}
}

func TestDefaultAddr(t *testing.T) {
	s := New(Config{})
	if s.config.Addr != ":8420" {
		t.Errorf("default addr = %q", s.config.Addr)
	}
}

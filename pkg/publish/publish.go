package publish

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/vellum-dev/vellum/pkg/decode"
	"github.com/vellum-dev/vellum/pkg/render"
)

// Publisher stores rendered documents under slash-separated keys.
// Implementations decide where the bytes land (local tree, S3, ...).
type Publisher interface {
	Publish(ctx context.Context, key, contentType string, body io.Reader) error
}

// DirPublisher writes published documents into a local directory tree.
type DirPublisher struct {
	root string
}

// NewDirPublisher creates a publisher rooted at the given directory.
func NewDirPublisher(root string) *DirPublisher {
	return &DirPublisher{root: root}
}

// Publish implements Publisher.
func (p *DirPublisher) Publish(ctx context.Context, key, contentType string, body io.Reader) error {
	path := filepath.Join(p.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// descriptionExts are the file extensions treated as document
// descriptions; everything else is published verbatim.
var descriptionExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// IsDescription reports whether path names a document description file.
func IsDescription(path string) bool {
	return descriptionExts[strings.ToLower(filepath.Ext(path))]
}

// HTMLKey maps a description file path to its published .html key.
func HTMLKey(rel string) string {
	ext := filepath.Ext(rel)
	return filepath.ToSlash(strings.TrimSuffix(rel, ext) + ".html")
}

// Site renders every description file under srcDir and hands the
// results to the publisher; other files are passed through verbatim
// with a content type from their extension. The walk stops at the
// first failure so a broken description never publishes partially.
func Site(ctx context.Context, p Publisher, srcDir string, r *render.Renderer) error {
	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != srcDir {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		if IsDescription(path) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			nodes, err := decode.Nodes(data)
			if err != nil {
				return err
			}
			html, err := r.RenderToString(nodes...)
			if err != nil {
				return err
			}
			return p.Publish(ctx, HTMLKey(rel), "text/html; charset=utf-8",
				strings.NewReader(html))
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return p.Publish(ctx, filepath.ToSlash(rel), contentType, f)
	})
}

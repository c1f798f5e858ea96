package preview

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	verrors "github.com/vellum-dev/vellum/internal/errors"
	"github.com/vellum-dev/vellum/internal/metrics"
	"github.com/vellum-dev/vellum/pkg/decode"
	"github.com/vellum-dev/vellum/pkg/publish"
	"github.com/vellum-dev/vellum/pkg/render"
)

// Config configures the preview server.
type Config struct {
	// Root is the directory of description files to serve.
	Root string

	// Addr is the listen address (default ":8420").
	Addr string

	// Watch enables the file watcher and live-reload script injection.
	Watch bool

	// Compact renders without the cosmetic line breaks.
	Compact bool
}

// Server serves rendered documents from a directory, re-rendering on
// every request so edits show up immediately, with an optional
// websocket live-reload channel.
type Server struct {
	config   Config
	renderer *render.Renderer
	reload   *ReloadServer
	watcher  *Watcher
	tracer   trace.Tracer
}

// New creates a preview server for the given configuration.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8420"
	}
	return &Server{
		config:   config,
		renderer: render.New(render.Config{Compact: config.Compact}),
		reload:   NewReloadServer(),
		tracer:   otel.Tracer("vellum/preview"),
	}
}

// Router returns the HTTP handler: rendered documents on every path,
// prometheus metrics on /metrics, and the reload websocket endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/_vellum/reload", s.reload.HandleWebSocket)
	r.Get("/*", s.handleDocument)
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	metrics.Init()

	if s.config.Watch {
		s.watcher = NewWatcher(WatcherConfig{Root: s.config.Root})
		s.watcher.OnChange(func(p string) {
			log.Printf("changed: %s", p)
			s.reload.NotifyReload(p)
		})
		go s.watcher.Start(ctx)
	}

	srv := &http.Server{Addr: s.config.Addr, Handler: s.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.reload.Close()
	}()

	log.Printf("preview server listening on %s (root %s)", s.config.Addr, s.config.Root)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// handleDocument renders the description file behind the request path.
func (s *Server) handleDocument(w http.ResponseWriter, req *http.Request) {
	file, ok := s.resolve(req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}

	_, span := s.tracer.Start(req.Context(), "preview.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("vellum.path", req.URL.Path),
			attribute.String("vellum.file", file),
		))
	defer span.End()

	start := time.Now()
	html, err := s.renderFile(file)
	metrics.ObserveRender(filepath.Base(file), time.Since(start), len(html), err)

	if err != nil {
		msg := formatError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.reload.NotifyError(msg)
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return
	}
	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.Int("vellum.bytes", len(html)))
	s.reload.ClearError()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
	if s.config.Watch {
		io.WriteString(w, ReloadClientScript)
	}
}

// renderFile decodes and renders one description file.
func (s *Server) renderFile(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	nodes, err := decode.Nodes(data)
	if err != nil {
		return "", err
	}
	return s.renderer.RenderToString(nodes...)
}

// resolve maps a URL path to a description file under the root.
// /about and /about.html both find about.yaml, about.yml, or
// about.json; the bare / finds index.*.
func (s *Server) resolve(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if rel == "" || rel == "." {
		rel = "index"
	}
	rel = strings.TrimSuffix(rel, ".html")

	base := filepath.Join(s.config.Root, filepath.FromSlash(rel))

	if publish.IsDescription(base) {
		if _, err := os.Stat(base); err == nil {
			return base, true
		}
	}
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// formatError prefers the structured multi-line form when available.
func formatError(err error) string {
	var ve *verrors.Error
	if errors.As(err, &ve) {
		return ve.Format()
	}
	return err.Error()
}

package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/jsdocgen/jsdocgen/internal/discover"
	"github.com/jsdocgen/jsdocgen/internal/render"
)

func newServeCommand() *cobra.Command {
	var config ServeConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered documentation over HTTP for preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Serve(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVar(&config.Input, "input", ".", "JavaScript file or directory to document")
	cmd.Flags().StringVar(&config.Addr, "addr", ":8080", "Listen address")

	return cmd
}

// ServeConfig holds configuration for the preview server.
type ServeConfig struct {
	Input string
	Addr  string
}

// Serve renders documentation for the input once at startup and serves it.
func Serve(ctx context.Context, config *ServeConfig) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pages, entries, err := buildPages(ctx, config.Input)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = render.Index(w, entries)
	})
	r.Get("/{slug}", func(w http.ResponseWriter, req *http.Request) {
		page, ok := pages[chi.URLParam(req, "slug")]
		if !ok {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})

	log.Info("serving documentation", "addr", config.Addr, "pages", len(pages))
	server := &http.Server{
		Addr:              config.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

// buildPages renders every input file to HTML keyed by its URL slug.
func buildPages(ctx context.Context, input string) (map[string][]byte, []render.IndexEntry, error) {
	p := newPipeline("html", nil)

	info, err := os.Stat(input)
	if err != nil {
		return nil, nil, fmt.Errorf("stat input: %w", err)
	}

	root, files := filepath.Dir(input), []string{filepath.Base(input)}
	if info.IsDir() {
		root = input
		files, err = discover.Sources(input)
		if err != nil {
			return nil, nil, err
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no JavaScript sources under %s", input)
	}

	pages := make(map[string][]byte, len(files))
	entries := make([]render.IndexEntry, 0, len(files))
	for _, file := range files {
		source, err := os.ReadFile(filepath.Join(root, file)) // #nosec G304
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", file, err)
		}
		lib, err := p.library(ctx, source)
		if err != nil {
			return nil, nil, fmt.Errorf("document %s: %w", file, err)
		}

		var buf bytes.Buffer
		if err := render.Document(&buf, lib, "html"); err != nil {
			return nil, nil, err
		}

		slug := pageSlug(file)
		pages[slug] = buf.Bytes()

		name := lib.Name
		if name == "" {
			name = file
		}
		entries = append(entries, render.IndexEntry{Slug: slug, Name: name})
	}
	return pages, entries, nil
}

func pageSlug(path string) string {
	slug := strings.TrimSuffix(path, filepath.Ext(path))
	return strings.ReplaceAll(slug, string(filepath.Separator), "-")
}

// requestLogger logs one line per request, after it completes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start))
		})
	}
}

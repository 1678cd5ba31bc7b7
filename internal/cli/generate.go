package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsdocgen/jsdocgen/internal/discover"
	"github.com/jsdocgen/jsdocgen/internal/doctag"
	"github.com/jsdocgen/jsdocgen/internal/extract"
	"github.com/jsdocgen/jsdocgen/internal/jsparser"
	"github.com/jsdocgen/jsdocgen/internal/render"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate documentation for a JavaScript file or directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Generate(cmd.Context(), &config)
		},
	}

	cmd.Flags().StringVar(&config.Input, "input", ".", "JavaScript file or directory to document")
	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Output file (or directory for directory input); '-' for stdout")
	cmd.Flags().StringVar(&config.Format, "format", "json", "Output format: json, yaml, markdown or html")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .jsdocgen.yml config file")
	cmd.Flags().IntVar(&config.Workers, "workers", 4, "Parallel workers for directory input")

	return cmd
}

// GenerateConfig holds configuration for documentation generation, merged
// from flags and the optional YAML config file.
type GenerateConfig struct {
	Input      string `validate:"required"`
	OutputPath string `validate:"required"`
	Format     string `validate:"oneof=json yaml markdown html"`
	ConfigPath string
	Workers    int                    `validate:"gte=1"`
	Handlers   []render.HandlerConfig `validate:"dive"`
}

// Generate runs the extraction pipeline per the provided configuration.
func Generate(ctx context.Context, config *GenerateConfig) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	handlers, err := render.CompileHandlers(config.Handlers)
	if err != nil {
		return err
	}

	pipeline := newPipeline(config.Format, handlers)

	info, err := os.Stat(config.Input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return generateDirectory(ctx, pipeline, config)
	}
	return generateFile(ctx, pipeline, config)
}

// pipeline bundles the per-invocation collaborators: the code parser, the
// comment parser, the Markdown renderer and the compiled example handlers.
type pipeline struct {
	parser    *jsparser.Parser
	extractor *extract.Extractor
	handlers  []render.ExampleHandler
	format    string
	log       *slog.Logger
}

func newPipeline(format string, handlers []render.ExampleHandler) *pipeline {
	// Descriptions stay raw Markdown unless the output itself is markup.
	var renderer extract.Renderer
	if format == "html" {
		renderer = render.NewMarkdown()
	}
	return &pipeline{
		parser:    jsparser.New(),
		extractor: extract.New(doctag.Parser{}, renderer),
		handlers:  handlers,
		format:    format,
		log:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// library parses one source file and extracts its documentation record.
func (p *pipeline) library(ctx context.Context, source []byte) (*extract.LibraryInfo, error) {
	parsed, err := p.parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	lib, err := p.extractor.Extract(parsed.Body, parsed.Comments, string(source))
	if err != nil {
		return nil, err
	}
	render.AnnotateExamples(lib, p.handlers)
	return lib, nil
}

func generateFile(ctx context.Context, p *pipeline, config *GenerateConfig) error {
	source, err := os.ReadFile(filepath.Clean(config.Input))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	lib, err := p.library(ctx, source)
	if err != nil {
		return fmt.Errorf("document %s: %w", config.Input, err)
	}

	if config.OutputPath == "-" {
		return writeDocument(os.Stdout, lib, config.Format)
	}
	return writeDocumentFile(config.OutputPath, lib, config.Format)
}

func generateDirectory(ctx context.Context, p *pipeline, config *GenerateConfig) error {
	if config.OutputPath == "-" {
		return fmt.Errorf("directory input requires --output to name a directory")
	}
	if err := os.MkdirAll(config.OutputPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files, err := discover.Sources(config.Input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no JavaScript sources under %s", config.Input)
	}

	var mu sync.Mutex
	var entries []render.IndexEntry

	err = discover.EachSource(ctx, config.Input, files, config.Workers, func(path string, source []byte) error {
		lib, err := p.library(ctx, source)
		if err != nil {
			return fmt.Errorf("document %s: %w", path, err)
		}

		name := outputName(path, config.Format)
		out := filepath.Join(config.OutputPath, name)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := writeDocumentFile(out, lib, config.Format); err != nil {
			return err
		}

		mu.Lock()
		entries = append(entries, render.IndexEntry{Slug: filepath.ToSlash(name), Name: indexName(lib, path)})
		mu.Unlock()

		p.log.Info("documented", "source", path, "output", out,
			"functions", len(lib.Functions), "namespaces", len(lib.Namespaces))
		return nil
	})
	if err != nil || config.Format != "html" {
		return err
	}

	// HTML output gets an index page linking every generated document.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	f, err := os.Create(filepath.Join(config.OutputPath, "index.html")) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return render.Index(f, entries)
}

func indexName(lib *extract.LibraryInfo, path string) string {
	if lib.Name != "" {
		return lib.Name
	}
	return path
}

// outputName maps a source path to its document name in the output tree.
func outputName(sourcePath, format string) string {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
	switch format {
	case "yaml":
		return base + ".yaml"
	case "markdown":
		return base + ".md"
	case "html":
		return base + ".html"
	default:
		return base + ".json"
	}
}

func writeDocumentFile(path string, lib *extract.LibraryInfo, format string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return writeDocument(f, lib, format)
}

func writeDocument(w io.Writer, lib *extract.LibraryInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(lib)
	case "yaml":
		data, err := yaml.Marshal(lib)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return render.Document(w, lib, format)
	}
}

// loadConfigFile merges the YAML config file into values the flags left at
// their defaults.
func loadConfigFile(config *GenerateConfig) error {
	path := config.ConfigPath
	if path == "" {
		path = ".jsdocgen.yml"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Generate struct {
			Input    string                 `yaml:"input"`
			Output   string                 `yaml:"output"`
			Format   string                 `yaml:"format"`
			Workers  int                    `yaml:"workers"`
			Handlers []render.HandlerConfig `yaml:"handlers"`
		} `yaml:"generate"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set.
	if config.Input == "." && cfg.Generate.Input != "" {
		config.Input = cfg.Generate.Input
	}
	if config.OutputPath == "-" && cfg.Generate.Output != "" {
		config.OutputPath = cfg.Generate.Output
	}
	if config.Format == "json" && cfg.Generate.Format != "" {
		config.Format = cfg.Generate.Format
	}
	if config.Workers == 4 && cfg.Generate.Workers > 0 {
		config.Workers = cfg.Generate.Workers
	}
	config.Handlers = cfg.Generate.Handlers

	return nil
}

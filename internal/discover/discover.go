// Package discover finds JavaScript source files under a directory and runs
// per-file work concurrently.
package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
}

// Sources returns the .js files under root, sorted, honoring the root
// .gitignore when one exists. Hidden files and vendored directories are
// skipped. Paths are relative to root.
func Sources(root string) ([]string, error) {
	gi := loadGitignore(root)

	var results []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || filepath.Ext(name) != ".js" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	sort.Strings(results)
	return results, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// EachSource reads every file (paths relative to root) and invokes fn for
// each, with at most workers calls in flight. Each invocation of the pipeline
// gets independent state; the first error cancels the remaining work.
func EachSource(ctx context.Context, root string, files []string, workers int, fn func(path string, source []byte) error) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			source, err := os.ReadFile(filepath.Join(root, file)) // #nosec G304
			if err != nil {
				return fmt.Errorf("discover: read %s: %w", file, err)
			}
			return fn(file, source)
		})
	}
	return g.Wait()
}

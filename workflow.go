// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package itemsearch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/itemsearch/alfred"
	"github.com/poiesic/itemsearch/catalog"
	"github.com/poiesic/itemsearch/config"
	"github.com/poiesic/itemsearch/search"
)

// Workflow ties catalog loading, searching and response rendering together.
// It keeps no state between queries.
type Workflow struct {
	loader    catalog.Loader
	searcher  *search.Searcher
	iconDir   string
	errorIcon string
	logger    *slog.Logger
}

// Option configures a Workflow.
type Option func(*Workflow) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// WithSearcher replaces the default searcher.
func WithSearcher(searcher *search.Searcher) Option {
	return func(w *Workflow) error {
		w.searcher = searcher
		return nil
	}
}

// WithIconDir sets the directory record icons live in.
// Default is alfred.DefaultIconDir.
func WithIconDir(dir string) Option {
	return func(w *Workflow) error {
		if dir != "" {
			w.iconDir = strings.TrimRight(dir, "/")
		}
		return nil
	}
}

// WithErrorIcon sets the icon shown on the error item.
// Default is alfred.DefaultErrorIcon.
func WithErrorIcon(icon string) Option {
	return func(w *Workflow) error {
		if icon != "" {
			w.errorIcon = icon
		}
		return nil
	}
}

func newWorkflow(opts []Option) (*Workflow, error) {
	w := &Workflow{
		iconDir:   alfred.DefaultIconDir,
		errorIcon: alfred.DefaultErrorIcon,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	if w.searcher == nil {
		searcher, err := search.NewSearcher(
			search.WithLogger(w.logger),
			search.WithMonitor(search.NewLogMonitor(w.logger)),
		)
		if err != nil {
			return nil, err
		}
		w.searcher = searcher
	}
	return w, nil
}

// NewWorkflow creates a workflow over loader.
func NewWorkflow(loader catalog.Loader, opts ...Option) (*Workflow, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}
	w, err := newWorkflow(opts)
	if err != nil {
		return nil, err
	}
	w.loader = loader
	return w, nil
}

// Open creates a workflow reading its catalog from the workflow directory dir
// as described by cfg. Options are applied after cfg.
func Open(dir string, cfg config.Config, opts ...Option) (*Workflow, error) {
	base := []Option{WithIconDir(cfg.Icons.Dir), WithErrorIcon(cfg.Icons.Error)}
	w, err := newWorkflow(append(base, opts...))
	if err != nil {
		return nil, err
	}

	loader, err := catalog.NewFileLoader(cfg.CatalogPath(dir), catalog.WithLogger(w.logger))
	if err != nil {
		return nil, err
	}
	w.loader = loader
	return w, nil
}

// Respond answers one query. It never fails: load errors are rendered as an
// error response and no partial results are ever returned.
func (w *Workflow) Respond(ctx context.Context, query string) *alfred.Response {
	query = strings.TrimSpace(query)

	records, err := w.loader.Load(ctx)
	if err != nil {
		w.logger.Warn("catalog load failed", "err", err)
		return ErrorResponse(err, w.errorIcon)
	}

	results, err := w.searcher.Search(query, records)
	if err != nil {
		w.logger.Warn("search failed", "query", query, "err", err)
		return ErrorResponse(err, w.errorIcon)
	}

	return alfred.NewResponse(results, w.iconDir)
}

// Run answers the query found in args and writes the response to out.
// The only error it returns is a failure to write.
func (w *Workflow) Run(ctx context.Context, args []string, out io.Writer) error {
	return w.Respond(ctx, QueryFromArgs(args)).Write(out)
}

// QueryFromArgs returns the trimmed first argument, or "" when there is none.
func QueryFromArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

// ErrorResponse renders err as the single-item error response.
//
// Titles by failure kind:
//   - catalog.ErrNotFound: "<file name> not found", subtitle "Path: <path>"
//   - catalog.ErrMalformed: "Invalid JSON" or "Invalid YAML", subtitle "Error: <cause>"
//   - config.ErrInvalidConfig: "Invalid config"
//   - anything else: "Load error", subtitle is the cause
func ErrorResponse(err error, icon string) *alfred.Response {
	var (
		path   string
		format = catalog.FormatJSON
		cause  = err
	)
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		path = loadErr.Path
		if loadErr.Format != "" {
			format = loadErr.Format
		}
		if loadErr.Err != nil {
			cause = loadErr.Err
		}
	}

	switch {
	case errors.Is(err, catalog.ErrNotFound):
		if path == "" {
			return alfred.NewErrorResponse("Catalog not found", cause.Error(), icon)
		}
		return alfred.NewErrorResponse(filepath.Base(path)+" not found", "Path: "+path, icon)
	case errors.Is(err, catalog.ErrMalformed):
		return alfred.NewErrorResponse("Invalid "+string(format), "Error: "+cause.Error(), icon)
	case errors.Is(err, config.ErrInvalidConfig):
		return alfred.NewErrorResponse("Invalid config", err.Error(), icon)
	default:
		return alfred.NewErrorResponse("Load error", cause.Error(), icon)
	}
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved. The catalog is looked up there, not in the working
// directory.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

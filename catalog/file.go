package catalog

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/itemsearch/core"
)

// FileLoader reads the catalog from a single file.
type FileLoader struct {
	path   string
	format Format
	logger *slog.Logger
}

var _ Loader = (*FileLoader)(nil)

// Option configures a FileLoader.
type Option func(*FileLoader) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *FileLoader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithFormat overrides the format derived from the file extension.
func WithFormat(format Format) Option {
	return func(l *FileLoader) error {
		l.format = format
		return nil
	}
}

// NewFileLoader creates a loader for the catalog file at path.
// Relative paths are made absolute against the working directory.
func NewFileLoader(path string, opts ...Option) (*FileLoader, error) {
	if path == "" {
		return nil, ErrPathRequired
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	l := &FileLoader{
		path:   abs,
		format: FormatForPath(abs),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Path returns the absolute path of the catalog file.
func (l *FileLoader) Path() string {
	return l.path
}

// Format returns the format the file is decoded with.
func (l *FileLoader) Format() Format {
	return l.format
}

// Load reads the whole file, closes it, then decodes the record list.
func (l *FileLoader) Load(ctx context.Context) ([]*core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, l.fail(ErrUnreadable, err)
	}

	data, err := os.ReadFile(filepath.Clean(l.path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, l.fail(ErrNotFound, err)
		}
		return nil, l.fail(ErrUnreadable, err)
	}

	records, err := decode(data, l.format)
	if err != nil {
		return nil, l.fail(ErrMalformed, err)
	}

	if l.logger.Enabled(ctx, slog.LevelDebug) {
		l.logger.Debug("catalog loaded",
			"path", l.path,
			"format", l.format,
			"records", len(records),
			"fingerprint", core.Fingerprint(records),
		)
	}
	return records, nil
}

func (l *FileLoader) fail(kind, err error) error {
	l.logger.Debug("catalog load failed", "path", l.path, "kind", kind, "err", err)
	return &LoadError{Kind: kind, Path: l.path, Format: l.format, Err: err}
}

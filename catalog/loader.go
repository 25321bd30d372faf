package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/poiesic/itemsearch/core"
)

// Loader supplies the catalog as an ordered sequence of records.
type Loader interface {
	// Load returns every catalog record in source order.
	// Failures are reported as *LoadError.
	Load(ctx context.Context) ([]*core.Record, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]*core.Record, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) ([]*core.Record, error) {
	return f(ctx)
}

// MemoryLoader serves a fixed set of records.
type MemoryLoader struct {
	records []*core.Record
}

var _ Loader = (*MemoryLoader)(nil)

// NewMemoryLoader creates a loader over records. The slice is copied; the
// records themselves are shared and must not be modified.
func NewMemoryLoader(records ...*core.Record) *MemoryLoader {
	return &MemoryLoader{records: slices.Clone(records)}
}

// Load returns the records after validating each of them.
func (m *MemoryLoader) Load(ctx context.Context) ([]*core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Kind: ErrUnreadable, Path: "memory", Err: err}
	}
	for i, record := range m.records {
		if err := core.ValidateRecord(record); err != nil {
			return nil, &LoadError{
				Kind: ErrMalformed,
				Path: "memory",
				Err:  fmt.Errorf("record at index %d: %w", i, err),
			}
		}
	}
	return slices.Clone(m.records), nil
}

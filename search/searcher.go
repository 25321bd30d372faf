package search

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/itemsearch/core"
)

// Searcher filters and orders catalog records for a query.
// It holds no state between searches.
type Searcher struct {
	monitor SearchMonitor
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets the monitor used by Search.
// Default is a monitor that does nothing.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(opts ...Option) (*Searcher, error) {
	s := &Searcher{
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ranked pairs a result with its sort priority. The priority stays here and
// never reaches core.Result.
type ranked struct {
	result   *core.Result
	priority Priority
}

// Search returns the records matching query, best first.
// The query is trimmed and compared case-insensitively; an empty query matches
// every record.
func (s *Searcher) Search(query string, records []*core.Record) ([]*core.Result, error) {
	return s.SearchWithMonitor(query, records, s.monitor)
}

// SearchWithMonitor is Search with a per-call monitor.
func (s *Searcher) SearchWithMonitor(query string, records []*core.Record, monitor SearchMonitor) ([]*core.Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	queryLower := NormalizeQuery(query)
	monitor.Start(queryLower, len(records))

	hits := make([]ranked, 0, len(records))
	for i, record := range records {
		if record == nil {
			s.logger.Error("nil record in catalog", "index", i)
			return nil, fmt.Errorf("%w: index %d", ErrNilRecord, i)
		}

		productName := record.ProductName()
		titleLower := strings.ToLower(record.Title)
		productLower := strings.ToLower(productName)

		if !matches(titleLower, productLower, queryLower) {
			continue
		}

		priority := rank(titleLower, productLower, queryLower)
		monitor.Matched(record, priority)
		hits = append(hits, ranked{
			result:   &core.Result{Record: record, ProductName: productName},
			priority: priority,
		})
	}

	// Sort by priority, then title; stable so duplicate titles keep catalog order
	slices.SortStableFunc(hits, func(a, b ranked) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return strings.Compare(a.result.Record.Title, b.result.Record.Title)
	})

	results := make([]*core.Result, len(hits))
	for i, hit := range hits {
		results[i] = hit.result
	}
	monitor.Finish(results)

	return results, nil
}

package search

import (
	"log/slog"

	"github.com/poiesic/itemsearch/core"
)

// SearchMonitor receives callbacks at each stage of a search.
type SearchMonitor interface {
	Start(query string, catalogSize int)
	Matched(record *core.Record, priority Priority)
	Finish(results []*core.Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)              {}
func (n *noopMonitor) Matched(_ *core.Record, _ Priority) {}
func (n *noopMonitor) Finish(_ []*core.Result)            {}

// LogMonitor reports search stages to a logger at debug level.
type LogMonitor struct {
	logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

// NewLogMonitor creates a monitor writing to logger, or slog.Default() if nil.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) Start(query string, catalogSize int) {
	m.logger.Debug("search started", "query", query, "records", catalogSize)
}

func (m *LogMonitor) Matched(record *core.Record, priority Priority) {
	m.logger.Debug("record matched", "arg", record.Arg, "title", record.Title, "priority", priority.String())
}

func (m *LogMonitor) Finish(results []*core.Result) {
	m.logger.Debug("search finished", "results", len(results))
}

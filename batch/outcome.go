package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/hr-tools/hrdb/core"
)

// OutcomeKind tags the variant of a statement outcome.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	// OutcomeRows - the statement produced a result set (possibly empty)
	OutcomeRows
	// OutcomeNoRows - the statement executed but there were no results to fetch
	OutcomeNoRows
	// OutcomeFailed - the store rejected the statement
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRows:
		return "rows"
	case OutcomeNoRows:
		return "no_rows"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the immutable result of executing one statement.
// Exactly one kind applies; RowCount, Columns and Preview are only set for
// OutcomeRows and Err only for OutcomeFailed.
type Outcome struct {
	Kind     OutcomeKind
	RowCount int
	Columns  core.Header
	// Preview holds at most the first few rows (see preview caps in runner.go),
	// so memory stays bounded regardless of result set size.
	Preview []core.Row
	Err     error
}

// StatementResult pairs a statement with its outcome.
type StatementResult struct {
	Statement Statement
	Outcome   *Outcome
}

// RunSummary is the finalized, ordered collection of statement results for
// one batch run.
type RunSummary struct {
	ID        string
	Timestamp time.Time

	Results   []StatementResult
	Succeeded int
	Failed    int
}

func (s *RunSummary) Total() int {
	return len(s.Results)
}

// Aggregator accumulates statement results in execution order.
// Pure bookkeeping; Finalize seals the summary.
type Aggregator struct {
	summary   *RunSummary
	finalized bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		summary: &RunSummary{
			ID:        uuid.New().String(),
			Timestamp: time.Now(),
		},
	}
}

func (a *Aggregator) Append(st Statement, outcome *Outcome) {
	if a.finalized {
		return
	}

	a.summary.Results = append(a.summary.Results, StatementResult{
		Statement: st,
		Outcome:   outcome,
	})

	if outcome.Kind == OutcomeFailed {
		a.summary.Failed++
	} else {
		a.summary.Succeeded++
	}
}

// Finalize seals the summary; later Append calls are ignored.
func (a *Aggregator) Finalize() *RunSummary {
	a.finalized = true
	return a.summary
}

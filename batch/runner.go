package batch

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hr-tools/hrdb/core"
)

const (
	// results up to previewFullMax rows are previewed in full
	previewFullMax = 5
	// larger results are cut down to previewTruncated rows
	previewTruncated = 3
)

// Executor submits a single statement to the store.
// *core.Connection satisfies it; tests inject a mock.
type Executor interface {
	Query(ctx context.Context, query string, args ...any) (core.ResultStream, error)
}

// Runner executes statements strictly in order, one at a time, on a single
// store handle. A failed statement never stops the batch; every statement
// is always attempted.
type Runner struct {
	executor Executor
	log      *logrus.Logger
}

func NewRunner(executor Executor, log *logrus.Logger) *Runner {
	return &Runner{
		executor: executor,
		log:      log,
	}
}

// Run executes all statements and returns the finalized summary.
// onResult, when set, is invoked after each statement completes, in order.
func (r *Runner) Run(ctx context.Context, statements []Statement, onResult func(StatementResult)) *RunSummary {
	aggregator := NewAggregator()

	for _, st := range statements {
		r.log.Debugf("executing statement %d/%d", st.Index, len(statements))

		outcome := r.execute(ctx, st)
		aggregator.Append(st, outcome)

		if onResult != nil {
			onResult(StatementResult{Statement: st, Outcome: outcome})
		}
	}

	return aggregator.Finalize()
}

func (r *Runner) execute(ctx context.Context, st Statement) *Outcome {
	rows, err := r.executor.Query(ctx, st.Text)
	if err != nil {
		r.log.Debugf("statement %d failed: %s", st.Index, err)
		return &Outcome{Kind: OutcomeFailed, Err: err}
	}
	defer rows.Close()

	header := rows.Header()
	if len(header) == 0 {
		// no result set to fetch (write or DDL statement) - not an error
		return &Outcome{Kind: OutcomeNoRows}
	}

	var preview []core.Row
	count := 0
	for rows.HasNext() {
		row, err := rows.Next()
		if err != nil {
			return &Outcome{Kind: OutcomeFailed, Err: err}
		}

		if count < previewFullMax {
			preview = append(preview, row)
		}
		count++
	}

	if count > previewFullMax {
		preview = preview[:previewTruncated]
	}

	// a result set with zero rows is still a fetched result
	return &Outcome{
		Kind:     OutcomeRows,
		RowCount: count,
		Columns:  header,
		Preview:  preview,
	}
}

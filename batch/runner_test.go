package batch

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testExecutor(t *testing.T, opts ...mock.AdapterOption) Executor {
	t.Helper()

	driver, err := mock.NewAdapter(mock.NewRows(0, 4), opts...).Connect("", "")
	require.NoError(t, err)
	return driver
}

func TestRunnerIsolatesFailures(t *testing.T) {
	r := require.New(t)

	executor := testExecutor(t,
		mock.AdapterWithQuerySideEffect("BROKEN", func(context.Context) error {
			return errors.New("syntax error")
		}),
	)

	statements := []Statement{
		{Index: 1, Text: "SELECT 1;"},
		{Index: 2, Text: "BROKEN"},
		{Index: 3, Text: "SELECT 3;"},
	}

	var seen []int
	summary := NewRunner(executor, testLogger()).Run(context.Background(), statements, func(res StatementResult) {
		seen = append(seen, res.Statement.Index)
	})

	r.Equal(3, summary.Total())
	r.Equal(2, summary.Succeeded)
	r.Equal(1, summary.Failed)
	r.Equal(summary.Total(), summary.Succeeded+summary.Failed)

	// every statement ran, in script order
	r.Equal([]int{1, 2, 3}, seen)

	r.Equal(OutcomeRows, summary.Results[0].Outcome.Kind)
	r.Equal(OutcomeFailed, summary.Results[1].Outcome.Kind)
	r.ErrorContains(summary.Results[1].Outcome.Err, "syntax error")
	r.Equal(OutcomeRows, summary.Results[2].Outcome.Kind)
}

func TestRunnerPreviewCaps(t *testing.T) {
	tests := []struct {
		name            string
		rows            []core.Row
		expectedCount   int
		expectedPreview int
	}{
		{
			name:            "small result previews in full",
			rows:            mock.NewRows(0, 4),
			expectedCount:   4,
			expectedPreview: 4,
		},
		{
			name:            "result at the cap previews in full",
			rows:            mock.NewRows(0, 5),
			expectedCount:   5,
			expectedPreview: 5,
		},
		{
			name:            "result over the cap is truncated",
			rows:            mock.NewRows(0, 6),
			expectedCount:   6,
			expectedPreview: 3,
		},
		{
			name:            "large result is truncated",
			rows:            mock.NewRows(0, 100),
			expectedCount:   100,
			expectedPreview: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			executor := testExecutor(t,
				mock.AdapterWithQueryResult("SELECT * FROM t;", tt.rows),
			)

			summary := NewRunner(executor, testLogger()).Run(context.Background(), []Statement{
				{Index: 1, Text: "SELECT * FROM t;"},
			}, nil)

			r.Len(summary.Results, 1)
			outcome := summary.Results[0].Outcome
			r.Equal(OutcomeRows, outcome.Kind)
			r.Equal(tt.expectedCount, outcome.RowCount)
			r.Len(outcome.Preview, tt.expectedPreview)
			// preview holds the first rows of the result
			for i, row := range outcome.Preview {
				r.Equal(tt.rows[i], row)
			}
		})
	}
}

func TestRunnerStatementWithoutResultSet(t *testing.T) {
	r := require.New(t)

	// no rows and no header, the way a write statement comes back
	executor := testExecutor(t,
		mock.AdapterWithQueryResult("UPDATE t SET a = 1;", nil),
	)

	summary := NewRunner(executor, testLogger()).Run(context.Background(), []Statement{
		{Index: 1, Text: "UPDATE t SET a = 1;"},
	}, nil)

	r.Equal(1, summary.Succeeded)
	r.Equal(OutcomeNoRows, summary.Results[0].Outcome.Kind)
}

func TestRunnerEmptyResultSetCountsAsRows(t *testing.T) {
	r := require.New(t)

	executor := testExecutor(t,
		mock.AdapterWithQueryResult("SELECT * FROM t WHERE 1 = 0;", nil,
			mock.ResultStreamWithHeader(core.Header{"id", "name"}),
		),
	)

	summary := NewRunner(executor, testLogger()).Run(context.Background(), []Statement{
		{Index: 1, Text: "SELECT * FROM t WHERE 1 = 0;"},
	}, nil)

	r.Equal(1, summary.Succeeded)
	outcome := summary.Results[0].Outcome
	r.Equal(OutcomeRows, outcome.Kind)
	r.Equal(0, outcome.RowCount)
	r.Equal(core.Header{"id", "name"}, outcome.Columns)
	r.Empty(outcome.Preview)
}

func TestRunnerRowIterationError(t *testing.T) {
	r := require.New(t)

	executor := testExecutor(t,
		mock.AdapterWithQueryResult("SELECT * FROM t;", mock.NewRows(0, 3),
			mock.ResultStreamWithNextError(errors.New("connection reset")),
		),
	)

	summary := NewRunner(executor, testLogger()).Run(context.Background(), []Statement{
		{Index: 1, Text: "SELECT * FROM t;"},
	}, nil)

	r.Equal(1, summary.Failed)
	outcome := summary.Results[0].Outcome
	r.Equal(OutcomeFailed, outcome.Kind)
	r.ErrorContains(outcome.Err, "connection reset")
}

func TestRunnerScriptRoundTrip(t *testing.T) {
	r := require.New(t)

	script := "-- comment\nSELECT 1;\n/* skip\nthis */\nSELECT 2;\n"
	statements := SplitScript(script)
	r.Len(statements, 2)

	executor := testExecutor(t,
		mock.AdapterWithQueryResult("SELECT 1;", []core.Row{{int64(1)}}),
		mock.AdapterWithQueryResult("SELECT 2;", []core.Row{{int64(2)}}),
	)

	summary := NewRunner(executor, testLogger()).Run(context.Background(), statements, nil)

	r.Equal(2, summary.Succeeded)
	r.Equal(0, summary.Failed)
	for _, res := range summary.Results {
		r.Equal(OutcomeRows, res.Outcome.Kind)
		r.Equal(1, res.Outcome.RowCount)
	}
}

func TestRunnerEmptyBatch(t *testing.T) {
	r := require.New(t)

	summary := NewRunner(testExecutor(t), testLogger()).Run(context.Background(), nil, nil)

	r.Equal(0, summary.Total())
	r.Equal(0, summary.Succeeded)
	r.Equal(0, summary.Failed)
	r.NotEmpty(summary.ID)
}

func TestAggregatorIgnoresAppendAfterFinalize(t *testing.T) {
	r := require.New(t)

	agg := NewAggregator()
	agg.Append(Statement{Index: 1, Text: "SELECT 1;"}, &Outcome{Kind: OutcomeRows, RowCount: 1})

	summary := agg.Finalize()
	agg.Append(Statement{Index: 2, Text: "SELECT 2;"}, &Outcome{Kind: OutcomeFailed, Err: errors.New("late")})

	r.Equal(1, summary.Total())
	r.Equal(1, summary.Succeeded)
	r.Equal(0, summary.Failed)
}

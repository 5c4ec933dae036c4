package hr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/mock"
)

// fakeQuerier records submitted statements and replays canned responses
// in order. When the queue runs out, it keeps serving the last response.
type fakeQuerier struct {
	queries   []string
	args      [][]any
	responses [][]core.Row
	err       error
}

func (f *fakeQuerier) Query(_ context.Context, query string, args ...any) (core.ResultStream, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)

	if f.err != nil {
		return nil, f.err
	}

	var rows []core.Row
	if len(f.responses) > 0 {
		rows = f.responses[0]
		if len(f.responses) > 1 {
			f.responses = f.responses[1:]
		}
	}

	return mock.NewResultStream(rows), nil
}

func TestEmployeesFilter(t *testing.T) {
	r := require.New(t)

	t.Run("defaults", func(t *testing.T) {
		q := &fakeQuerier{}
		_, err := NewStore(q).Employees(context.Background(), EmployeeFilter{})
		r.NoError(err)

		r.Len(q.queries, 1)
		r.NotContains(q.queries[0], "LIKE")
		r.Equal([]any{defaultEmployeeLimit}, q.args[0])
	})

	t.Run("department and limit", func(t *testing.T) {
		q := &fakeQuerier{}
		_, err := NewStore(q).Employees(context.Background(), EmployeeFilter{
			Department: "Engineering",
			Limit:      10,
		})
		r.NoError(err)

		r.Contains(q.queries[0], "d.DepartmentName LIKE ?")
		r.Equal([]any{"%Engineering%", 10}, q.args[0])
	})
}

func TestEmployeeNotFoundIsEmpty(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{}
	result, err := NewStore(q).Employee(context.Background(), 999)
	r.NoError(err)
	r.Equal(0, result.Len())
	r.Equal([]any{999}, q.args[0])
}

func TestReportingQueryParameters(t *testing.T) {
	r := require.New(t)

	tests := []struct {
		name         string
		run          func(s *Store, ctx context.Context) error
		expectedArgs []any
		contains     string
	}{
		{
			name: "top salaries",
			run: func(s *Store, ctx context.Context) error {
				_, err := s.TopSalaries(ctx, 3)
				return err
			},
			expectedArgs: []any{3},
			contains:     "ROW_NUMBER() OVER (PARTITION BY d.DepartmentID",
		},
		{
			name: "multi projects",
			run: func(s *Store, ctx context.Context) error {
				_, err := s.MultiProjectEmployees(ctx, 2)
				return err
			},
			expectedArgs: []any{2},
			contains:     "HAVING COUNT(ep.ProjectID) > ?",
		},
		{
			name: "attendance report pads the month",
			run: func(s *Store, ctx context.Context) error {
				_, err := s.AttendanceReport(ctx, 3, 2024)
				return err
			},
			expectedArgs: []any{"03", "2024"},
			contains:     "strftime('%m', a.Date) = ?",
		},
		{
			name: "payroll cost",
			run: func(s *Store, ctx context.Context) error {
				_, err := s.PayrollCost(ctx, 2024)
				return err
			},
			expectedArgs: []any{2024},
			contains:     "WHERE p.Year = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{}
			r.NoError(tt.run(NewStore(q), context.Background()))

			r.Len(q.queries, 1)
			r.Contains(q.queries[0], tt.contains)
			r.Equal(tt.expectedArgs, q.args[0])
		})
	}
}

func TestDashboard(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{
		responses: [][]core.Row{
			{{int64(12)}},      // employees
			{{int64(10)}},      // departments
			{{int64(7)}},       // active projects
			{{float64(98166)}}, // average salary
			{{float64(123456.78)}},
			{{float64(4.1)}},
			{{int64(3)}},
		},
	}

	result, err := NewStore(q).Dashboard(context.Background())
	r.NoError(err)

	r.Equal(core.Header{"Metric", "Value"}, result.Header)
	r.Equal(7, result.Len())
	r.Equal(core.Row{"Total Employees", int64(12)}, result.Rows[0])
	r.Equal(core.Row{"Average Salary", "$98,166.00"}, result.Rows[3])
	r.Equal(core.Row{"Q1 2024 Payroll Cost", "$123,456.78"}, result.Rows[4])
	r.Equal(core.Row{"Pending Leave Requests", int64(3)}, result.Rows[6])
}

func TestDashboardPropagatesQueryError(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{err: errors.New("no such table: Employees")}
	_, err := NewStore(q).Dashboard(context.Background())
	r.ErrorContains(err, "Total Employees")
	r.ErrorContains(err, "no such table")
}

func TestTableCounts(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{responses: [][]core.Row{{{int64(42)}}}}
	counts := NewStore(q).TableCounts(context.Background())

	r.Len(counts, len(hrTables))
	for i, c := range counts {
		r.Equal(hrTables[i], c.Table)
		r.NoError(c.Err)
		r.Equal(int64(42), c.Count)
	}
}

func TestTableCountsRecordsErrors(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{err: errors.New("database is locked")}
	counts := NewStore(q).TableCounts(context.Background())

	r.Len(counts, len(hrTables))
	for _, c := range counts {
		r.ErrorContains(c.Err, "database is locked")
	}
}

// Package hr holds the domain queries and seed data of the HR store.
// It talks to the store through the Querier interface, so any connection
// capable of running a parameterized statement can back it.
package hr

import (
	"context"
	"fmt"

	"github.com/hr-tools/hrdb/core"
)

// Querier submits a single parameterized statement to the store.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (core.ResultStream, error)
}

// Store exposes the HR reporting queries on top of a Querier.
type Store struct {
	q Querier
}

func NewStore(q Querier) *Store {
	return &Store{q: q}
}

func (s *Store) run(ctx context.Context, query string, args ...any) (*core.Result, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return core.NewResult(rows)
}

// EmployeeFilter narrows down the employee listing.
type EmployeeFilter struct {
	// Department matches department names by substring.
	Department string
	Limit      int
}

const defaultEmployeeLimit = 50

// Employees lists employees with their job title and department.
func (s *Store) Employees(ctx context.Context, filter EmployeeFilter) (*core.Result, error) {
	query := `
		SELECT
			e.EmployeeID,
			e.FirstName,
			e.LastName,
			e.Email,
			jt.JobTitleName,
			d.DepartmentName,
			e.Salary,
			e.HireDate
		FROM Employees e
		JOIN JobTitles jt ON e.JobTitleID = jt.JobTitleID
		JOIN Departments d ON e.DepartmentID = d.DepartmentID
		WHERE 1=1`

	var args []any
	if filter.Department != "" {
		query += " AND d.DepartmentName LIKE ?"
		args = append(args, "%"+filter.Department+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEmployeeLimit
	}
	query += " ORDER BY e.LastName, e.FirstName LIMIT ?"
	args = append(args, limit)

	return s.run(ctx, query, args...)
}

// Employee fetches the full record of a single employee, including the
// resolved manager name. The result is empty when the id is unknown.
func (s *Store) Employee(ctx context.Context, id int) (*core.Result, error) {
	query := `
		SELECT
			e.*,
			jt.JobTitleName,
			d.DepartmentName,
			m.FirstName || ' ' || m.LastName as ManagerName
		FROM Employees e
		JOIN JobTitles jt ON e.JobTitleID = jt.JobTitleID
		JOIN Departments d ON e.DepartmentID = d.DepartmentID
		LEFT JOIN Employees m ON e.ManagerID = m.EmployeeID
		WHERE e.EmployeeID = ?`

	return s.run(ctx, query, id)
}

// Departments lists departments with their head and employee count.
func (s *Store) Departments(ctx context.Context) (*core.Result, error) {
	query := `
		SELECT
			d.DepartmentID,
			d.DepartmentName,
			d.Location,
			e.FirstName || ' ' || e.LastName as HeadName,
			COUNT(emp.EmployeeID) as EmployeeCount
		FROM Departments d
		LEFT JOIN Employees e ON d.HeadID = e.EmployeeID
		LEFT JOIN Employees emp ON d.DepartmentID = emp.DepartmentID
		GROUP BY d.DepartmentID, d.DepartmentName, d.Location, e.FirstName, e.LastName
		ORDER BY d.DepartmentName`

	return s.run(ctx, query)
}

// Projects lists projects with their department and team size.
func (s *Store) Projects(ctx context.Context) (*core.Result, error) {
	query := `
		SELECT
			p.ProjectID,
			p.ProjectName,
			d.DepartmentName,
			p.StartDate,
			p.EndDate,
			p.Budget,
			COUNT(ep.EmployeeID) as TeamSize
		FROM Projects p
		JOIN Departments d ON p.DepartmentID = d.DepartmentID
		LEFT JOIN EmployeeProjects ep ON p.ProjectID = ep.ProjectID
		GROUP BY p.ProjectID, p.ProjectName, d.DepartmentName, p.StartDate, p.EndDate, p.Budget
		ORDER BY p.StartDate`

	return s.run(ctx, query)
}

// TopSalaries ranks the highest paid employees within each department and
// keeps the top limit per department.
func (s *Store) TopSalaries(ctx context.Context, limit int) (*core.Result, error) {
	query := `
		WITH RankedEmployees AS (
			SELECT
				e.EmployeeID,
				e.FirstName,
				e.LastName,
				e.Salary,
				d.DepartmentID,
				d.DepartmentName,
				ROW_NUMBER() OVER (PARTITION BY d.DepartmentID ORDER BY e.Salary DESC) as SalaryRank
			FROM Employees e
			JOIN Departments d ON e.DepartmentID = d.DepartmentID
		)
		SELECT
			DepartmentName,
			FirstName,
			LastName,
			Salary,
			SalaryRank
		FROM RankedEmployees
		WHERE SalaryRank <= ?
		ORDER BY DepartmentName, SalaryRank`

	return s.run(ctx, query, limit)
}

// MultiProjectEmployees finds employees assigned to more than minProjects
// projects at once.
func (s *Store) MultiProjectEmployees(ctx context.Context, minProjects int) (*core.Result, error) {
	query := `
		SELECT
			e.EmployeeID,
			e.FirstName,
			e.LastName,
			e.Email,
			COUNT(ep.ProjectID) as ProjectCount,
			GROUP_CONCAT(p.ProjectName, ', ') as Projects
		FROM Employees e
		JOIN EmployeeProjects ep ON e.EmployeeID = ep.EmployeeID
		JOIN Projects p ON ep.ProjectID = p.ProjectID
		GROUP BY e.EmployeeID, e.FirstName, e.LastName, e.Email
		HAVING COUNT(ep.ProjectID) > ?
		ORDER BY ProjectCount DESC`

	return s.run(ctx, query, minProjects)
}

// AttendanceReport aggregates attendance per department for one month,
// sorted by absenteeism rate.
func (s *Store) AttendanceReport(ctx context.Context, month, year int) (*core.Result, error) {
	query := `
		SELECT
			d.DepartmentName,
			COUNT(CASE WHEN a.Status = 'Absent' THEN 1 END) as AbsentCount,
			COUNT(CASE WHEN a.Status = 'Present' THEN 1 END) as PresentCount,
			COUNT(CASE WHEN a.Status = 'OnLeave' THEN 1 END) as OnLeaveCount,
			COUNT(CASE WHEN a.Status = 'WFH' THEN 1 END) as WFHCount,
			COUNT(*) as TotalDays,
			ROUND(COUNT(CASE WHEN a.Status = 'Absent' THEN 1 END) * 100.0 / COUNT(*), 2) as AbsenteeismRate
		FROM Attendance a
		JOIN Employees e ON a.EmployeeID = e.EmployeeID
		JOIN Departments d ON e.DepartmentID = d.DepartmentID
		WHERE strftime('%m', a.Date) = ? AND strftime('%Y', a.Date) = ?
		GROUP BY d.DepartmentID, d.DepartmentName
		ORDER BY AbsenteeismRate DESC`

	return s.run(ctx, query, fmt.Sprintf("%02d", month), fmt.Sprintf("%d", year))
}

// PayrollCost sums the payroll per department for one year.
func (s *Store) PayrollCost(ctx context.Context, year int) (*core.Result, error) {
	query := `
		SELECT
			d.DepartmentName,
			COUNT(DISTINCT p.EmployeeID) as EmployeeCount,
			SUM(p.BasicSalary) as TotalBasicSalary,
			SUM(p.Allowances) as TotalAllowances,
			SUM(p.Deductions) as TotalDeductions,
			SUM(p.NetSalary) as TotalNetSalary,
			ROUND(AVG(p.NetSalary), 2) as AverageNetSalary
		FROM Payroll p
		JOIN Employees e ON p.EmployeeID = e.EmployeeID
		JOIN Departments d ON e.DepartmentID = d.DepartmentID
		WHERE p.Year = ?
		GROUP BY d.DepartmentID, d.DepartmentName
		ORDER BY TotalNetSalary DESC`

	return s.run(ctx, query, year)
}

// Dashboard collects the key metrics of the system into a single
// metric/value result.
func (s *Store) Dashboard(ctx context.Context) (*core.Result, error) {
	metrics := []struct {
		name     string
		query    string
		currency bool
	}{
		{
			name:  "Total Employees",
			query: "SELECT COUNT(*) FROM Employees",
		},
		{
			name:  "Total Departments",
			query: "SELECT COUNT(*) FROM Departments",
		},
		{
			name:  "Active Projects",
			query: "SELECT COUNT(*) FROM Projects WHERE date('now') BETWEEN StartDate AND EndDate",
		},
		{
			name:     "Average Salary",
			query:    "SELECT ROUND(AVG(Salary), 2) FROM Employees",
			currency: true,
		},
		{
			name:     "Q1 2024 Payroll Cost",
			query:    "SELECT ROUND(SUM(NetSalary), 2) FROM Payroll WHERE Year = 2024 AND Month IN (1, 2, 3)",
			currency: true,
		},
		{
			name:  "Average Performance Rating",
			query: "SELECT ROUND(AVG(Rating), 2) FROM PerformanceReviews WHERE ReviewDate >= date('now', '-1 year')",
		},
		{
			name:  "Pending Leave Requests",
			query: "SELECT COUNT(*) FROM LeaveRequests WHERE Status = 'Pending'",
		},
	}

	result := &core.Result{
		Header: core.Header{"Metric", "Value"},
		Meta:   &core.Meta{},
	}

	for _, m := range metrics {
		value, err := s.scalar(ctx, m.query)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
		if m.currency {
			value = FormatCurrency(value)
		}
		result.Rows = append(result.Rows, core.Row{m.name, value})
	}

	return result, nil
}

// TableCount is the record count of a single store table.
type TableCount struct {
	Table string
	Count int64
	Err   error
}

// hrTables in creation order, foreign keys pointing backwards.
var hrTables = []string{
	"JobTitles", "Departments", "Employees", "Projects",
	"EmployeeProjects", "Attendance", "LeaveRequests",
	"PerformanceReviews", "Payroll",
}

// TableCounts reports the record count of every HR table. A failing table
// gets its error recorded instead of aborting the listing.
func (s *Store) TableCounts(ctx context.Context) []TableCount {
	counts := make([]TableCount, 0, len(hrTables))

	for _, table := range hrTables {
		value, err := s.scalar(ctx, "SELECT COUNT(*) FROM "+table)
		if err != nil {
			counts = append(counts, TableCount{Table: table, Err: err})
			continue
		}

		count, ok := value.(int64)
		if !ok {
			counts = append(counts, TableCount{Table: table, Err: fmt.Errorf("unexpected count type %T", value)})
			continue
		}
		counts = append(counts, TableCount{Table: table, Count: count})
	}

	return counts
}

// scalar runs a query expected to return a single value.
func (s *Store) scalar(ctx context.Context, query string, args ...any) (any, error) {
	result, err := s.run(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.Len() < 1 || len(result.Rows[0]) < 1 {
		return nil, fmt.Errorf("query returned no value")
	}
	return result.Rows[0][0], nil
}

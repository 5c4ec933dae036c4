package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdQuery struct {
	global *cmdGlobal
}

func (c *cmdQuery) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "query"
	cmd.Short = "Business intelligence and reporting queries"

	topSalariesCmd := cmdQueryTopSalaries{global: c.global}
	cmd.AddCommand(topSalariesCmd.Command())

	multiProjectsCmd := cmdQueryMultiProjects{global: c.global}
	cmd.AddCommand(multiProjectsCmd.Command())

	attendanceCmd := cmdQueryAttendance{global: c.global}
	cmd.AddCommand(attendanceCmd.Command())

	payrollCmd := cmdQueryPayroll{global: c.global}
	cmd.AddCommand(payrollCmd.Command())

	dashboardCmd := cmdQueryDashboard{global: c.global}
	cmd.AddCommand(dashboardCmd.Command())

	runAllCmd := cmdQueryRunAll{global: c.global}
	cmd.AddCommand(runAllCmd.Command())

	return cmd
}

type cmdQueryTopSalaries struct {
	global *cmdGlobal

	flagLimit int
}

func (c *cmdQueryTopSalaries) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "top-salaries"
	cmd.Short = "Find top N highest-paid employees per department"
	cmd.RunE = c.Run
	cmd.Flags().IntVarP(&c.flagLimit, "limit", "l", 3, "Number of top employees per department")

	return cmd
}

func (c *cmdQueryTopSalaries) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).TopSalaries(ctx, c.flagLimit)
	if err != nil {
		return err
	}

	for _, row := range result.Rows {
		if len(row) > 3 {
			row[3] = hr.FormatCurrency(row[3])
		}
	}

	return renderResult(os.Stdout, fmt.Sprintf("Top %d Salaries by Department", c.flagLimit), result)
}

type cmdQueryMultiProjects struct {
	global *cmdGlobal

	flagMinProjects int
}

func (c *cmdQueryMultiProjects) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "multi-projects"
	cmd.Short = "Find employees working on multiple projects simultaneously"
	cmd.RunE = c.Run
	cmd.Flags().IntVarP(&c.flagMinProjects, "min-projects", "m", 2, "Minimum number of projects")

	return cmd
}

func (c *cmdQueryMultiProjects) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).MultiProjectEmployees(ctx, c.flagMinProjects)
	if err != nil {
		return err
	}

	// keep the project list column readable
	for _, row := range result.Rows {
		if len(row) > 5 {
			if projects, ok := row[5].(string); ok {
				row[5] = clip(projects, 50)
			}
		}
	}

	return renderResult(os.Stdout, fmt.Sprintf("Employees with >%d Projects", c.flagMinProjects), result)
}

type cmdQueryAttendance struct {
	global *cmdGlobal

	flagMonth int
	flagYear  int
}

func (c *cmdQueryAttendance) Command() *cobra.Command {
	now := time.Now()

	cmd := &cobra.Command{}
	cmd.Use = "attendance-report"
	cmd.Short = "Generate monthly attendance report per department"
	cmd.RunE = c.Run
	cmd.Flags().IntVarP(&c.flagMonth, "month", "m", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntVarP(&c.flagYear, "year", "y", now.Year(), "Year")

	return cmd
}

func (c *cmdQueryAttendance) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if c.flagMonth < 1 || c.flagMonth > 12 {
		return fmt.Errorf("invalid month %d", c.flagMonth)
	}

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).AttendanceReport(ctx, c.flagMonth, c.flagYear)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, fmt.Sprintf("Monthly Attendance Report - %d/%d", c.flagMonth, c.flagYear), result)
}

type cmdQueryPayroll struct {
	global *cmdGlobal

	flagYear int
}

func (c *cmdQueryPayroll) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "payroll-cost"
	cmd.Short = "Show payroll cost per department per year"
	cmd.RunE = c.Run
	cmd.Flags().IntVarP(&c.flagYear, "year", "y", time.Now().Year(), "Year")

	return cmd
}

func (c *cmdQueryPayroll) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).PayrollCost(ctx, c.flagYear)
	if err != nil {
		return err
	}

	for _, row := range result.Rows {
		if len(row) < 7 {
			continue
		}
		for i := 2; i <= 6; i++ {
			row[i] = hr.FormatCurrency(row[i])
		}
	}

	return renderResult(os.Stdout, fmt.Sprintf("Payroll Cost by Department - %d", c.flagYear), result)
}

type cmdQueryDashboard struct {
	global *cmdGlobal
}

func (c *cmdQueryDashboard) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "dashboard"
	cmd.Short = "Show comprehensive system dashboard"
	cmd.RunE = c.Run

	return cmd
}

func (c *cmdQueryDashboard) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).Dashboard(ctx)
	if err != nil {
		return err
	}

	return renderResult(os.Stdout, "System Dashboard", result)
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

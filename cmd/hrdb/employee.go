package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdEmployee struct {
	global *cmdGlobal
}

func (c *cmdEmployee) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "employee"
	cmd.Short = "Employee management commands"

	employeeListCmd := cmdEmployeeList{global: c.global}
	cmd.AddCommand(employeeListCmd.Command())

	employeeShowCmd := cmdEmployeeShow{global: c.global}
	cmd.AddCommand(employeeShowCmd.Command())

	return cmd
}

type cmdEmployeeList struct {
	global *cmdGlobal

	flagDepartment string
	flagLimit      int
	flagFormat     string
}

func (c *cmdEmployeeList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List all employees"
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagDepartment, "department", "D", "", "Filter by department name")
	cmd.Flags().IntVarP(&c.flagLimit, "limit", "l", 50, "Limit number of results")
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Output format (table|csv|json)")

	return cmd
}

func (c *cmdEmployeeList) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).Employees(ctx, hr.EmployeeFilter{
		Department: c.flagDepartment,
		Limit:      c.flagLimit,
	})
	if err != nil {
		return err
	}

	// salary and hire date columns
	for _, row := range result.Rows {
		if len(row) < 8 {
			continue
		}
		row[6] = hr.FormatCurrency(row[6])
		row[7] = hr.FormatValue(row[7])
	}

	return renderFormatted(os.Stdout, fmt.Sprintf("Employees (%d found)", result.Len()), result, c.flagFormat)
}

type cmdEmployeeShow struct {
	global *cmdGlobal
}

func (c *cmdEmployeeShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <employee-id>"
	cmd.Short = "Show detailed information about a specific employee"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = c.Run

	return cmd
}

func (c *cmdEmployeeShow) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid employee id %q", args[0])
	}

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).Employee(ctx, id)
	if err != nil {
		return err
	}
	if result.Len() == 0 {
		return fmt.Errorf("employee with id %d not found", id)
	}

	// columns 0-11 are the employee record, then job title, department
	// and the resolved manager name
	emp := result.Rows[0]
	if len(emp) < 15 {
		return fmt.Errorf("unexpected employee record shape (%d columns)", len(emp))
	}

	fmt.Printf("\n%s\n", text.FgCyan.Sprint("Employee Details"))
	fmt.Println("==================================================")
	fmt.Printf("ID: %v\n", emp[0])
	fmt.Printf("Name: %v %v\n", emp[1], emp[2])
	fmt.Printf("Gender: %v\n", emp[3])
	fmt.Printf("Date of Birth: %s\n", hr.FormatValue(emp[4]))
	fmt.Printf("Email: %v\n", emp[5])
	fmt.Printf("Phone: %s\n", hr.FormatValue(emp[6]))
	fmt.Printf("Hire Date: %s\n", hr.FormatValue(emp[7]))
	fmt.Printf("Job Title: %v\n", emp[12])
	fmt.Printf("Department: %v\n", emp[13])
	if emp[14] == nil {
		fmt.Println("Manager: None")
	} else {
		fmt.Printf("Manager: %v\n", emp[14])
	}
	fmt.Printf("Salary: %s\n", hr.FormatCurrency(emp[11]))

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdDepartment struct {
	global *cmdGlobal
}

func (c *cmdDepartment) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "department"
	cmd.Short = "Department management commands"

	departmentListCmd := cmdDepartmentList{global: c.global}
	cmd.AddCommand(departmentListCmd.Command())

	return cmd
}

type cmdDepartmentList struct {
	global *cmdGlobal

	flagFormat string
}

func (c *cmdDepartmentList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List all departments"
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Output format (table|csv|json)")

	return cmd
}

func (c *cmdDepartmentList) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).Departments(ctx)
	if err != nil {
		return err
	}

	// departments without a head
	for _, row := range result.Rows {
		if len(row) > 3 && row[3] == nil {
			row[3] = "N/A"
		}
	}

	return renderFormatted(os.Stdout, fmt.Sprintf("Departments (%d found)", result.Len()), result, c.flagFormat)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdProject struct {
	global *cmdGlobal
}

func (c *cmdProject) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "project"
	cmd.Short = "Project management commands"

	projectListCmd := cmdProjectList{global: c.global}
	cmd.AddCommand(projectListCmd.Command())

	return cmd
}

type cmdProjectList struct {
	global *cmdGlobal

	flagFormat string
}

func (c *cmdProjectList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List all projects"
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Output format (table|csv|json)")

	return cmd
}

func (c *cmdProjectList) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := hr.NewStore(conn).Projects(ctx)
	if err != nil {
		return err
	}

	// date and budget columns
	for _, row := range result.Rows {
		if len(row) < 7 {
			continue
		}
		row[3] = hr.FormatValue(row[3])
		row[4] = hr.FormatValue(row[4])
		row[5] = hr.FormatCurrency(row[5])
	}

	return renderFormatted(os.Stdout, fmt.Sprintf("Projects (%d found)", result.Len()), result, c.flagFormat)
}

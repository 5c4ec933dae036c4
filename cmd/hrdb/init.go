package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdInit struct {
	global *cmdGlobal
}

func (c *cmdInit) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "init"
	cmd.Short = "Initialize the database system"
	cmd.RunE = c.Run

	return cmd
}

func (c *cmdInit) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("%s\n", text.FgYellow.Sprint("Initializing HR Database Management System..."))

	// a fresh sqlite database on every run
	if c.global.isSQLite() {
		err := os.Remove(c.global.conf.Database.URL)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing existing database: %w", err)
		}
	}

	conn, err := c.global.open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := hr.Initialize(ctx, conn, c.global.log); err != nil {
		return err
	}

	fmt.Printf("%s\n", text.FgGreen.Sprint("System initialized successfully!"))

	return nil
}

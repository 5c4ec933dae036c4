package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/hr"
)

type cmdStatus struct {
	global *cmdGlobal
}

func (c *cmdStatus) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "status"
	cmd.Short = "Show system status and database information"
	cmd.RunE = c.Run

	return cmd
}

func (c *cmdStatus) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("%s\n", text.FgCyan.Sprint("HR Database Management System - Status"))
	fmt.Println("==================================================")

	if c.global.isSQLite() {
		info, err := os.Stat(c.global.conf.Database.URL)
		if err != nil {
			fmt.Printf("Database: %s not found\n", c.global.conf.Database.URL)
			fmt.Println("  Run \"hrdb init\" to initialize the database")
			return nil
		}
		fmt.Printf("Database: %s\n", c.global.conf.Database.URL)
		fmt.Printf("  Size: %d bytes\n", info.Size())
	} else {
		fmt.Printf("Database: %s (%s)\n", c.global.conf.Database.URL, c.global.conf.Database.Type)
	}

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Println("\nDatabase Contents:")
	for _, count := range hr.NewStore(conn).TableCounts(ctx) {
		if count.Err != nil {
			fmt.Printf("  %s: %s\n", count.Table, text.FgRed.Sprint("error"))
			c.global.log.Debugf("counting %s: %s", count.Table, count.Err)
			continue
		}
		fmt.Printf("  %s: %d records\n", count.Table, count.Count)
	}

	return nil
}

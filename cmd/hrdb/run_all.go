package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/batch"
)

type cmdQueryRunAll struct {
	global *cmdGlobal

	flagOutputFile string
	flagVerbose    bool
}

func (c *cmdQueryRunAll) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "run-all [script]"
	cmd.Short = "Execute all queries from a sql script"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = c.Run
	cmd.Flags().StringVarP(&c.flagOutputFile, "output-file", "o", "", "Save results to file")
	cmd.Flags().BoolVarP(&c.flagVerbose, "verbose", "v", false, "Show detailed output")

	return cmd
}

func (c *cmdQueryRunAll) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	script := c.global.conf.Queries
	if len(args) > 0 {
		script = args[0]
	}
	raw, err := os.ReadFile(script)
	if err != nil {
		return fmt.Errorf("reading %s: %w", script, err)
	}

	statements := batch.SplitScript(string(raw))

	conn, err := c.global.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	reporter := batch.NewReporter(os.Stdout, c.flagVerbose)
	reporter.Header(script, len(statements))

	runner := batch.NewRunner(conn, c.global.log)
	summary := runner.Run(ctx, statements, reporter.Statement)

	reporter.Summary(summary)

	// a failed save never discards the console report
	if c.flagOutputFile != "" {
		err := reporter.WriteFile(c.flagOutputFile, summary)
		if err != nil {
			c.global.log.Errorf("saving results to %s: %s", c.flagOutputFile, err)
		} else {
			fmt.Printf("\nResults saved to: %s\n", c.flagOutputFile)
		}
	}

	return nil
}

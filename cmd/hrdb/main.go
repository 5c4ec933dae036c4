package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hr-tools/hrdb/adapters"
	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/format"
	"github.com/hr-tools/hrdb/internal/config"
)

const version = "1.0.0"

type cmdGlobal struct {
	flagConfig   string
	flagDatabase string
	flagDebug    bool

	conf *config.Config
	log  *logrus.Logger
}

// PreRun runs immediately prior to the main Run function.
func (c *cmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(c.flagConfig)
	if err != nil {
		return err
	}
	if c.flagDatabase != "" {
		conf.Database.URL = c.flagDatabase
	}
	c.conf = conf

	c.log = logrus.New()
	c.log.SetOutput(os.Stderr)
	if c.flagDebug {
		c.log.SetLevel(logrus.DebugLevel)
	} else {
		c.log.SetLevel(logrus.WarnLevel)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		text.DisableColors()
	}

	return nil
}

func (c *cmdGlobal) isSQLite() bool {
	return c.conf.Database.Type == "sqlite" || c.conf.Database.Type == "sqlite3"
}

// connect opens and pings the configured store.
func (c *cmdGlobal) connect(ctx context.Context) (*core.Connection, error) {
	if c.isSQLite() {
		_, err := os.Stat(c.conf.Database.URL)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("database %q not found, run \"hrdb init\" first", c.conf.Database.URL)
		}
	}

	return c.open(ctx)
}

// open connects without the sqlite file check, for commands that create
// the database themselves.
func (c *cmdGlobal) open(ctx context.Context) (*core.Connection, error) {
	conn, err := adapters.NewConnection(&core.ConnectionParams{
		Name: "hrdb",
		Type: c.conf.Database.Type,
		URL:  c.conf.Database.URL,
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// renderResult prints a titled result table, or a placeholder when the
// result is empty.
func renderResult(out io.Writer, title string, result *core.Result) error {
	fmt.Fprintf(out, "\n%s\n", text.FgCyan.Sprint(title))
	fmt.Fprintln(out, strings.Repeat("=", len(title)))

	if result.Len() == 0 {
		fmt.Fprintln(out, text.FgYellow.Sprint("No data found."))
		return nil
	}

	raw, err := result.Format(format.NewTable())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(raw))

	return nil
}

// renderFormatted renders a result in the named format. The table format
// gets the titled layout; csv and json emit bare machine-friendly output.
func renderFormatted(out io.Writer, title string, result *core.Result, formatName string) error {
	var formatter core.Formatter

	switch formatName {
	case "", "table":
		return renderResult(out, title, result)
	case "csv":
		formatter = format.NewCSV()
	case "json":
		formatter = format.NewJSON()
	default:
		return fmt.Errorf("unknown format %q (expected table, csv or json)", formatName)
	}

	raw, err := result.Format(formatter)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(raw))

	return nil
}

func run() error {
	globalCmd := cmdGlobal{}

	app := &cobra.Command{}
	app.Use = "hrdb"
	app.Short = "HR database management tool"
	app.Long = `Description:
  HR database management tool

  A command-line interface for managing HR data, employees, departments,
  projects, and generating business reports. It can also execute whole
  sql scripts against the store, one statement at a time.
`
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	app.PersistentFlags().StringVarP(&globalCmd.flagConfig, "config", "c", "", "Path to the configuration file")
	app.PersistentFlags().StringVar(&globalCmd.flagDatabase, "database", "", "Override the configured database url")
	app.PersistentFlags().BoolVarP(&globalCmd.flagDebug, "debug", "d", false, "Show debug messages")
	app.PersistentPreRunE = globalCmd.PreRun

	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version

	employeeCmd := cmdEmployee{global: &globalCmd}
	app.AddCommand(employeeCmd.Command())

	departmentCmd := cmdDepartment{global: &globalCmd}
	app.AddCommand(departmentCmd.Command())

	projectCmd := cmdProject{global: &globalCmd}
	app.AddCommand(projectCmd.Command())

	queryCmd := cmdQuery{global: &globalCmd}
	app.AddCommand(queryCmd.Command())

	statusCmd := cmdStatus{global: &globalCmd}
	app.AddCommand(statusCmd.Command())

	initCmd := cmdInit{global: &globalCmd}
	app.AddCommand(initCmd.Command())

	return app.Execute()
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

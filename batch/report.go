package batch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	queryTextLimit = 100
	errTextLimit   = 200

	fileDelimiter = "----------------------------------------"
)

// Reporter renders per-statement progress and the final summary of a batch
// run. Console output goes to out; WriteFile persists a plain text report.
type Reporter struct {
	out     io.Writer
	verbose bool
}

func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{
		out:     out,
		verbose: verbose,
	}
}

// Header announces the start of a batch run.
func (r *Reporter) Header(scriptPath string, count int) {
	fmt.Fprintf(r.out, "Executing %d queries from %s\n", count, scriptPath)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
}

// Statement renders the outcome of a single statement as it completes.
func (r *Reporter) Statement(res StatementResult) {
	fmt.Fprintf(r.out, "\n%s\n", text.FgYellow.Sprintf("Query %d:", res.Statement.Index))
	if r.verbose {
		fmt.Fprintf(r.out, "  %s\n", truncate(res.Statement.Text, queryTextLimit))
	}

	switch res.Outcome.Kind {
	case OutcomeRows:
		fmt.Fprintf(r.out, "  %s\n", text.FgGreen.Sprintf("Success: %d rows returned", res.Outcome.RowCount))
		if r.verbose && len(res.Outcome.Preview) > 0 {
			r.preview(res)
		}
	case OutcomeNoRows:
		fmt.Fprintf(r.out, "  %s\n", text.FgGreen.Sprint("Success: statement executed"))
	case OutcomeFailed:
		fmt.Fprintf(r.out, "  %s\n", text.FgRed.Sprintf("Failed: %s", truncate(res.Outcome.Err.Error(), errTextLimit)))
	}
}

func (r *Reporter) preview(res StatementResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(res.Outcome.Columns))
	for i, col := range res.Outcome.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range res.Outcome.Preview {
		t.AppendRow(table.Row(row))
	}
	t.Render()

	if remaining := res.Outcome.RowCount - len(res.Outcome.Preview); remaining > 0 {
		fmt.Fprintf(r.out, "  ... and %d more rows\n", remaining)
	}
}

// Summary renders the final counters.
func (r *Reporter) Summary(summary *RunSummary) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "%s\n", text.FgGreen.Sprintf("Successful: %d", summary.Succeeded))
	fmt.Fprintf(r.out, "%s\n", text.FgRed.Sprintf("Failed: %d", summary.Failed))
	fmt.Fprintf(r.out, "Total: %d\n", summary.Total())
}

// WriteFile persists the full run as a plain text report. The console
// preview caps apply to the persisted rows as well.
func (r *Reporter) WriteFile(path string, summary *RunSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "Query Execution Results")
	fmt.Fprintln(f, strings.Repeat("=", 30))

	for _, res := range summary.Results {
		fmt.Fprintf(f, "\nQuery %d:\n", res.Statement.Index)
		fmt.Fprintf(f, "SQL: %s\n", truncate(res.Statement.Text, queryTextLimit))

		switch res.Outcome.Kind {
		case OutcomeRows:
			fmt.Fprintln(f, "Status: SUCCESS")
			fmt.Fprintf(f, "Results: %d rows\n", res.Outcome.RowCount)
			fmt.Fprintf(f, "Columns: %s\n", strings.Join(res.Outcome.Columns, ", "))
		case OutcomeNoRows:
			fmt.Fprintln(f, "Status: SUCCESS")
			fmt.Fprintln(f, "Results: N/A")
		case OutcomeFailed:
			fmt.Fprintln(f, "Status: FAILED")
			fmt.Fprintf(f, "Error: %s\n", res.Outcome.Err.Error())
		}

		fmt.Fprintln(f, fileDelimiter)
	}

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

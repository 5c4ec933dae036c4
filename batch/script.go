// Package batch implements the SQL script runner: it splits a script into
// statements, executes them sequentially with per-statement failure
// isolation, and reports the accumulated results.
package batch

import "strings"

// Statement is a single executable unit extracted from a script.
type Statement struct {
	// 1-based position within the script; execution order equals script order.
	Index int
	Text  string
}

// splitState is the scanner mode of the script splitter.
type splitState int

const (
	stateNormal splitState = iota
	stateBlockComment
)

// SplitScript splits a script into its statements, line by line.
//
// Lines holding only a `--` comment are dropped. A line starting with `/*`
// enters block-comment mode, a line ending with `*/` leaves it; both
// delimiter lines are dropped, so block comment delimiters must sit on
// dedicated lines. Outside comments, lines accumulate into the current
// statement (joined with single spaces) until one ends with `;`. A trailing
// unterminated fragment is still emitted. Statement boundaries are detected
// at line granularity only; a `;` in the middle of a line never terminates.
func SplitScript(script string) []Statement {
	var statements []Statement
	var buf strings.Builder

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" {
			// whitespace-only fragments never get a sequence position
			return
		}
		statements = append(statements, Statement{
			Index: len(statements) + 1,
			Text:  text,
		})
	}

	state := stateNormal
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		if strings.HasPrefix(line, "/*") {
			state = stateBlockComment
			continue
		}
		if strings.HasSuffix(line, "*/") {
			// first closing delimiter ends the block; nesting is not supported
			state = stateNormal
			continue
		}
		if state == stateBlockComment {
			continue
		}

		buf.WriteString(line)
		buf.WriteString(" ")

		if strings.HasSuffix(line, ";") {
			flush()
		}
	}

	// no trailing terminator required on the last statement
	flush()

	return statements
}

package batch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitScript(t *testing.T) {
	r := require.New(t)

	tests := []struct {
		name     string
		script   string
		expected []Statement
	}{
		{
			name: "statements with comments",
			script: "-- leading comment\n" +
				"SELECT 1;\n" +
				"/* block\n" +
				"comment */\n" +
				"SELECT 2;\n",
			expected: []Statement{
				{Index: 1, Text: "SELECT 1;"},
				{Index: 2, Text: "SELECT 2;"},
			},
		},
		{
			name:     "empty script",
			script:   "",
			expected: nil,
		},
		{
			name: "comments only",
			script: "-- one\n" +
				"-- two\n" +
				"/*\n" +
				"three\n" +
				"*/\n",
			expected: nil,
		},
		{
			name: "multiline statement joined with spaces",
			script: "SELECT a\n" +
				"FROM t\n" +
				"WHERE a > 1;\n",
			expected: []Statement{
				{Index: 1, Text: "SELECT a FROM t WHERE a > 1;"},
			},
		},
		{
			name:   "trailing fragment without terminator",
			script: "SELECT 1;\nSELECT 2",
			expected: []Statement{
				{Index: 1, Text: "SELECT 1;"},
				{Index: 2, Text: "SELECT 2"},
			},
		},
		{
			name: "terminator inside block comment is ignored",
			script: "/*\n" +
				"SELECT hidden;\n" +
				"*/\n" +
				"SELECT 1;\n",
			expected: []Statement{
				{Index: 1, Text: "SELECT 1;"},
			},
		},
		{
			name:   "terminator mid-line does not split",
			script: "SELECT 1; SELECT 2\nFROM t;\n",
			expected: []Statement{
				{Index: 1, Text: "SELECT 1; SELECT 2 FROM t;"},
			},
		},
		{
			name:     "whitespace only",
			script:   "   \n\t\n\n",
			expected: nil,
		},
		{
			name:   "closing delimiter line outside comment is dropped",
			script: "SELECT 1 */\nSELECT 2;\n",
			expected: []Statement{
				{Index: 1, Text: "SELECT 2;"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitScript(tt.script)
			r.Equal(tt.expected, got)
		})
	}
}

func TestSplitScriptIndexesAreSequential(t *testing.T) {
	r := require.New(t)

	script := "SELECT 1;\n-- gap\nSELECT 2;\n\nSELECT 3;\n"

	statements := SplitScript(script)
	r.Len(statements, 3)
	for i, st := range statements {
		r.Equal(i+1, st.Index)
	}
}

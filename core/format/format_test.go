package format

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hr-tools/hrdb/core"
)

var (
	testHeader = core.Header{"id", "name"}
	testRows   = []core.Row{
		{1, "Alice"},
		{2, "Bob"},
	}
)

func TestTableFormat(t *testing.T) {
	r := require.New(t)

	out, err := NewTable().Format(testHeader, testRows, &core.FormatterOptions{})
	r.NoError(err)

	r.Contains(string(out), "id")
	r.Contains(string(out), "Alice")
	r.Contains(string(out), "Bob")
}

func TestCSVFormat(t *testing.T) {
	r := require.New(t)

	out, err := NewCSV().Format(testHeader, testRows, &core.FormatterOptions{})
	r.NoError(err)

	r.Equal("id,name\n1,Alice\n2,Bob\n", string(out))
}

func TestJSONFormat(t *testing.T) {
	r := require.New(t)

	out, err := NewJSON().Format(testHeader, testRows, &core.FormatterOptions{})
	r.NoError(err)

	var records []map[string]any
	r.NoError(json.Unmarshal(out, &records))
	r.Len(records, 2)
	r.Equal("Alice", records[0]["name"])
	r.Equal(float64(1), records[0]["id"])
}

func TestJSONFormatUnknownField(t *testing.T) {
	r := require.New(t)

	// row wider than the header
	out, err := NewJSON().Format(core.Header{"id"}, []core.Row{{1, "extra"}}, &core.FormatterOptions{})
	r.NoError(err)

	var records []map[string]any
	r.NoError(json.Unmarshal(out, &records))
	r.Equal("extra", records[0]["<unknown-field-1>"])
}

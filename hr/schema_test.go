package hr

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hr-tools/hrdb/batch"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEmbeddedScriptsSplit(t *testing.T) {
	r := require.New(t)

	schema := batch.SplitScript(schemaScript)
	r.Len(schema, len(hrTables))
	for _, st := range schema {
		r.Contains(st.Text, "CREATE TABLE")
	}

	data := batch.SplitScript(dataScript)
	r.GreaterOrEqual(len(data), len(hrTables))
}

func TestInitializeRunsEveryStatement(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{}
	r.NoError(Initialize(context.Background(), q, quietLogger()))

	expected := len(batch.SplitScript(schemaScript)) + len(batch.SplitScript(dataScript))
	r.Len(q.queries, expected)
	r.Contains(q.queries[0], "CREATE TABLE")
}

func TestInitializeAbortsOnFirstError(t *testing.T) {
	r := require.New(t)

	q := &fakeQuerier{err: errors.New("disk I/O error")}
	err := Initialize(context.Background(), q, quietLogger())

	r.ErrorContains(err, "create schema")
	r.ErrorContains(err, "statement 1")
	r.Len(q.queries, 1)
}

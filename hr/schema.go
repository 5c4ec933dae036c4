package hr

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hr-tools/hrdb/batch"
)

//go:embed schema.sql
var schemaScript string

//go:embed data.sql
var dataScript string

// Initialize creates the HR tables and loads the seed data. Unlike a batch
// run, initialization is all or nothing; the first failing statement aborts.
func Initialize(ctx context.Context, q Querier, log *logrus.Logger) error {
	log.Info("creating database tables")
	if err := runScript(ctx, q, schemaScript); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	log.Info("loading seed data")
	if err := runScript(ctx, q, dataScript); err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	return nil
}

func runScript(ctx context.Context, q Querier, script string) error {
	for _, st := range batch.SplitScript(script) {
		rows, err := q.Query(ctx, st.Text)
		if err != nil {
			return fmt.Errorf("statement %d: %w", st.Index, err)
		}
		rows.Close()
	}

	return nil
}

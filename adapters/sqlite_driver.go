package adapters

import (
	"context"

	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/builders"
)

var (
	_ core.Driver = (*sqliteDriver)(nil)
	_ core.Pinger = (*sqliteDriver)(nil)
)

type sqliteDriver struct {
	c *builders.Client
}

// Query executes the statement as-is. A statement that produces no result
// set (writes, DDL) comes back with an empty header, which callers use to
// tell "no rows to fetch" apart from an execution error.
func (d *sqliteDriver) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
	con, err := d.c.Conn(ctx)
	if err != nil {
		return nil, err
	}
	cb := func() {
		con.Close()
	}
	defer func() {
		if err != nil {
			cb()
		}
	}()

	rows, err := con.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	rows.SetCallback(cb)
	return rows, nil
}

func (d *sqliteDriver) Structure() ([]*core.Structure, error) {
	// sqlite is single schema structure, so we hardcode the name of it.
	query := `SELECT name, type FROM sqlite_schema WHERE type IN ('table', 'view')`

	rows, err := d.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structure []*core.Structure
	for rows.HasNext() {
		row, err := rows.Next()
		if err != nil {
			return nil, err
		}

		// We know for a fact there are 2 string fields (see query above)
		typ := core.StructureTypeTable
		if row[1].(string) == "view" {
			typ = core.StructureTypeView
		}

		structure = append(structure, &core.Structure{
			Name:   row[0].(string),
			Schema: "sqlite_schema",
			Type:   typ,
		})
	}

	return structure, nil
}

func (d *sqliteDriver) Ping(ctx context.Context) error {
	return d.c.Ping(ctx)
}

func (d *sqliteDriver) Close() {
	d.c.Close()
}

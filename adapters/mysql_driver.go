package adapters

import (
	"context"

	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/builders"
)

var (
	_ core.Driver = (*mySQLDriver)(nil)
	_ core.Pinger = (*mySQLDriver)(nil)
)

type mySQLDriver struct {
	c *builders.Client
}

func (d *mySQLDriver) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
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

func (d *mySQLDriver) Structure() ([]*core.Structure, error) {
	query := `
		SELECT table_schema, table_name, table_type FROM information_schema.tables
		WHERE table_schema NOT IN ('information_schema', 'performance_schema', 'mysql', 'sys')
	`

	rows, err := d.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return structureFromCatalog(rows, func(typ string) core.StructureType {
		switch typ {
		case "BASE TABLE":
			return core.StructureTypeTable
		case "VIEW":
			return core.StructureTypeView
		default:
			return core.StructureTypeNone
		}
	})
}

func (d *mySQLDriver) Ping(ctx context.Context) error {
	return d.c.Ping(ctx)
}

func (d *mySQLDriver) Close() {
	d.c.Close()
}

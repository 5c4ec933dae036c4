package mock

import (
	"context"
	"fmt"

	"github.com/hr-tools/hrdb/core"
)

var (
	_ core.Driver = (*driver)(nil)
	_ core.Pinger = (*driver)(nil)
)

type driver struct {
	data   []core.Row
	config *adapterConfig
}

func (d *driver) Query(ctx context.Context, query string, args ...any) (core.ResultStream, error) {
	eff, ok := d.config.querySideEffects[query]
	if ok {
		err := eff(ctx)
		if err != nil {
			return nil, fmt.Errorf("side effect error: %w", err)
		}
	}

	rows, ok := d.config.queryResults[query]
	if !ok {
		rows = d.data
	}

	opts := make([]ResultStreamOption, 0, len(d.config.resultStreamOptions))
	opts = append(opts, d.config.resultStreamOptions...)
	if queryOpts, ok := d.config.queryResultStreamOptions[query]; ok {
		opts = append(opts, queryOpts...)
	}

	return NewResultStream(rows, opts...), nil
}

func (d *driver) Structure() ([]*core.Structure, error) {
	var structure []*core.Structure

	for _, table := range d.config.tables {
		structure = append(structure, &core.Structure{
			Name: table,
			Type: core.StructureTypeTable,
		})
	}

	return structure, nil
}

func (d *driver) Ping(context.Context) error {
	return d.config.pingErr
}

func (d *driver) Close() {}

var _ core.Adapter = (*Adapter)(nil)

type Adapter struct {
	data   []core.Row
	config *adapterConfig
}

func NewAdapter(data []core.Row, opts ...AdapterOption) *Adapter {
	config := &adapterConfig{
		querySideEffects:         make(map[string]func(context.Context) error),
		queryResults:             make(map[string][]core.Row),
		queryResultStreamOptions: make(map[string][]ResultStreamOption),

		resultStreamOptions: []ResultStreamOption{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Adapter{
		data:   data,
		config: config,
	}
}

func (a *Adapter) Connect(_ string, _ string) (core.Driver, error) {
	return &driver{
		data:   a.data,
		config: a.config,
	}, nil
}

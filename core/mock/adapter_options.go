package mock

import (
	"context"

	"github.com/hr-tools/hrdb/core"
)

type adapterConfig struct {
	querySideEffects         map[string]func(context.Context) error
	queryResults             map[string][]core.Row
	queryResultStreamOptions map[string][]ResultStreamOption
	tables                   []string
	pingErr                  error

	resultStreamOptions []ResultStreamOption
}

type AdapterOption func(*adapterConfig)

func AdapterWithQuerySideEffect(query string, sideEffect func(context.Context) error) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.querySideEffects[query]
		if ok {
			panic("side effect already registered for query: " + query)
		}

		c.querySideEffects[query] = sideEffect
	}
}

// AdapterWithQueryResult pins the rows returned for a specific query.
// Queries without a pinned result fall back to the adapter's default data.
func AdapterWithQueryResult(query string, rows []core.Row, opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.queryResults[query]
		if ok {
			panic("result already registered for query: " + query)
		}

		c.queryResults[query] = rows
		c.queryResultStreamOptions[query] = opts
	}
}

func AdapterWithTable(name string) AdapterOption {
	return func(c *adapterConfig) {
		c.tables = append(c.tables, name)
	}
}

func AdapterWithPingError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.pingErr = err
	}
}

func AdapterWithResultStreamOpts(opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}

// Package adapters holds the supported database drivers. Each driver
// registers itself under its type aliases in an init function, so the
// binary still compiles on os/arch combinations a driver doesn't support.
package adapters

import (
	"errors"
	"fmt"

	"github.com/hr-tools/hrdb/core"
)

var (
	errNoValidTypeAliases   = errors.New("no valid type aliases provided")
	ErrUnsupportedTypeAlias = errors.New("no driver registered for provided type alias")
)

// adapter connects to a single database type via url.
type adapter interface {
	Connect(url string) (core.Driver, error)
}

var registeredAdapters = make(map[string]adapter)

// register registers a new adapter for a specific database
func register(a adapter, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTypeAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredAdapters[alias] = a
	}

	if invalidCount == len(aliases) {
		return errNoValidTypeAliases
	}

	return nil
}

var _ core.Adapter = (*Mux)(nil)

// Mux is an interface to all registered adapters.
type Mux struct{}

func (*Mux) Connect(typ string, url string) (core.Driver, error) {
	a, ok := registeredAdapters[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTypeAlias, typ)
	}

	return a.Connect(url)
}

// NewConnection is a wrapper around core.NewConnection that uses the
// internal mux for adapter registration.
func NewConnection(params *core.ConnectionParams) (*core.Connection, error) {
	c, err := core.NewConnection(params, new(Mux))
	if err != nil {
		return nil, fmt.Errorf("core.NewConnection: %w", err)
	}

	return c, nil
}

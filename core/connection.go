package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	// Adapter is an object which allows to connect to a database via type and url
	Adapter interface {
		Connect(typ string, url string) (Driver, error)
	}

	// Driver is an interface for a specific database driver
	Driver interface {
		Query(ctx context.Context, query string, args ...any) (ResultStream, error)
		Structure() ([]*Structure, error)
		Close()
	}

	// Pinger is an optional interface for drivers that can verify
	// the store is reachable before any statement runs.
	Pinger interface {
		Ping(context.Context) error
	}
)

type ConnectionID string

// Connection binds expanded connection parameters to an open driver.
type Connection struct {
	params           *ConnectionParams
	unexpandedParams *ConnectionParams

	driver Driver
}

func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	expanded := params.Expand()

	if expanded.ID == "" {
		expanded.ID = ConnectionID(uuid.New().String())
	}

	driver, err := adapter.Connect(expanded.Type, expanded.URL)
	if err != nil {
		return nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	return &Connection{
		params:           expanded,
		unexpandedParams: params,

		driver: driver,
	}, nil
}

func (c *Connection) GetID() ConnectionID {
	return c.params.ID
}

func (c *Connection) GetName() string {
	return c.params.Name
}

func (c *Connection) GetType() string {
	return c.params.Type
}

func (c *Connection) GetURL() string {
	return c.params.URL
}

// GetParams returns the original source for this connection
func (c *Connection) GetParams() *ConnectionParams {
	return c.unexpandedParams
}

// Query submits a single statement to the driver and returns its result stream.
func (c *Connection) Query(ctx context.Context, query string, args ...any) (ResultStream, error) {
	return c.driver.Query(ctx, query, args...)
}

// Select runs a statement and drains the stream into a cached Result.
func (c *Connection) Select(ctx context.Context, query string, args ...any) (*Result, error) {
	rows, err := c.driver.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return NewResult(rows)
}

// Ping verifies the store is reachable. Drivers that don't implement
// the Pinger interface are assumed reachable once connected.
func (c *Connection) Ping(ctx context.Context) error {
	pinger, ok := c.driver.(Pinger)
	if !ok {
		return nil
	}

	if err := pinger.Ping(ctx); err != nil {
		return fmt.Errorf("pinger.Ping: %w", err)
	}

	return nil
}

func (c *Connection) GetStructure() ([]*Structure, error) {
	structure, err := c.driver.Structure()
	if err != nil {
		return nil, err
	}

	// fallback to not confuse users
	if len(structure) < 1 {
		structure = []*Structure{
			{
				Name: "no schema to show",
				Type: StructureTypeNone,
			},
		}
	}
	return structure, nil
}

func (c *Connection) Close() {
	c.driver.Close()
}

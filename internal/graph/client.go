// Package graph wraps the Bolt driver behind a small client interface so the
// catalog repository can be exercised against a scripted fake.
package graph

import (
	"context"
	"errors"
)

// Client is the contract the repository needs from the graph database.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	// ExecuteBatch runs every statement in one write transaction.
	ExecuteBatch(ctx context.Context, statements []Statement) error
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Statement is a cypher query with its parameters.
type Statement struct {
	Query  string
	Params map[string]any
}

// Result is the collected records of one query.
type Result struct {
	Records []Record
}

// First returns the first record, if any.
func (r Result) First() (Record, bool) {
	if len(r.Records) == 0 {
		return nil, false
	}
	return r.Records[0], true
}

// Record maps return aliases to values.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")

package store

import (
	"context"
)

// Record is one stored row, keyed by column name. Values are the JSON-shaped
// Go types: string, int64/float64, []string, []float64, nil.
type Record map[string]any

// ID returns the record's id column, or "" when absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// String returns the named column as a string, or "" when the column is
// absent or not a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// ListOptions bounds a List call. A zero Limit means no limit.
type ListOptions struct {
	Limit int
}

// Store is the uniform record storage contract. Implementations treat tables
// as row sets; field validation happens above this layer. Get returns
// (nil, nil) when no record matches.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	List(ctx context.Context, table string, filter Filter, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, table string, filter Filter) (Record, error)
	Insert(ctx context.Context, table string, payload map[string]any) (Record, error)
	Update(ctx context.Context, table, id string, payload map[string]any) (Record, error)
	Delete(ctx context.Context, table, id string) (bool, error)

	// SearchByPattern returns records whose field contains the pattern as a
	// substring, case-insensitively. Placeholder contract for a future
	// similarity-based retrieval.
	SearchByPattern(ctx context.Context, table string, filter Filter, field, pattern string, limit int) ([]Record, error)
}

// Package storetest provides an in-memory Store for tests.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"chronicler/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps records in memory, applying filters the same way the SQL
// backends do. Set Err to make every operation fail.
type Store struct {
	mu     sync.Mutex
	tables map[string][]store.Record
	seq    int

	Err error
	// ErrTable restricts Err to one table; empty means every table.
	ErrTable string
}

func New() *Store {
	return &Store{tables: make(map[string][]store.Record)}
}

// Seed appends records to a table verbatim, bypassing validation.
func (s *Store) Seed(table string, records ...store.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.tables[table] = append(s.tables[table], clone(r))
	}
}

func clone(r store.Record) store.Record {
	out := make(store.Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (s *Store) Close(ctx context.Context) error { return nil }

func (s *Store) EnsureSchema(ctx context.Context) error { return s.Err }

func (s *Store) failing(table string) error {
	if s.Err != nil && (s.ErrTable == "" || s.ErrTable == table) {
		return s.Err
	}
	return nil
}

func (s *Store) List(ctx context.Context, table string, filter store.Filter, opts store.ListOptions) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing(table); err != nil {
		return nil, err
	}

	out := []store.Record{}
	for _, r := range s.tables[table] {
		if !filter.Matches(r) {
			continue
		}
		out = append(out, clone(r))
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, table string, filter store.Filter) (store.Record, error) {
	records, err := s.List(ctx, table, filter, store.ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (s *Store) Insert(ctx context.Context, table string, payload map[string]any) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing(table); err != nil {
		return nil, err
	}

	s.seq++
	rec := store.Record{"id": fmt.Sprintf("%s-%d", table, s.seq)}
	for k, v := range payload {
		rec[k] = v
	}
	s.tables[table] = append(s.tables[table], rec)
	return clone(rec), nil
}

func (s *Store) Update(ctx context.Context, table, id string, payload map[string]any) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing(table); err != nil {
		return nil, err
	}

	for i, r := range s.tables[table] {
		if r.ID() != id {
			continue
		}
		updated := clone(r)
		for k, v := range payload {
			updated[k] = v
		}
		s.tables[table][i] = updated
		return clone(updated), nil
	}
	return nil, nil
}

func (s *Store) Delete(ctx context.Context, table, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing(table); err != nil {
		return false, err
	}

	rows := s.tables[table]
	for i, r := range rows {
		if r.ID() == id {
			s.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SearchByPattern(ctx context.Context, table string, filter store.Filter, field, pattern string, limit int) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failing(table); err != nil {
		return nil, err
	}

	needle := strings.ToLower(pattern)
	out := []store.Record{}
	for _, r := range s.tables[table] {
		if !filter.Matches(r) {
			continue
		}
		value, _ := r[field].(string)
		if !strings.Contains(strings.ToLower(value), needle) {
			continue
		}
		out = append(out, clone(r))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

func tableSpec(table string) (*schema.Table, error) {
	t, ok := schema.ByName(table)
	if !ok {
		return nil, fmt.Errorf("unknown table: %s", table)
	}
	return t, nil
}

func (c *Client) List(ctx context.Context, table string, filter store.Filter, opts store.ListOptions) ([]store.Record, error) {
	t, err := tableSpec(table)
	if err != nil {
		return nil, err
	}

	where, args := whereClause(filter, 0)
	query := fmt.Sprintf("SELECT %s FROM %s %s", strings.Join(selectColumns(t), ", "), t.Name, where)
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.Name, err)
	}
	return scanRecords(rows, t)
}

func (c *Client) Get(ctx context.Context, table string, filter store.Filter) (store.Record, error) {
	records, err := c.List(ctx, table, filter, store.ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (c *Client) Insert(ctx context.Context, table string, payload map[string]any) (store.Record, error) {
	t, err := tableSpec(table)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	cols := []string{"id", "created_at"}
	args := []any{id, time.Now().UTC().Format(time.RFC3339)}

	for _, f := range t.Fields {
		value, ok := payload[f.Name]
		if !ok {
			continue
		}
		encoded, err := encodeValue(f.Kind, value)
		if err != nil {
			return nil, err
		}
		cols = append(cols, f.Name)
		args = append(args, encoded)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := c.pool.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", t.Name, err)
	}

	return c.Get(ctx, table, store.Where("id", id))
}

func (c *Client) Update(ctx context.Context, table, id string, payload map[string]any) (store.Record, error) {
	t, err := tableSpec(table)
	if err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	for _, f := range t.Fields {
		value, ok := payload[f.Name]
		if !ok {
			continue
		}
		encoded, err := encodeValue(f.Kind, value)
		if err != nil {
			return nil, err
		}
		args = append(args, encoded)
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Name, len(args)))
	}
	if len(sets) == 0 {
		return c.Get(ctx, table, store.Where("id", id))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		t.Name, strings.Join(sets, ", "), len(args))
	tag, err := c.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return c.Get(ctx, table, store.Where("id", id))
}

func (c *Client) Delete(ctx context.Context, table, id string) (bool, error) {
	t, err := tableSpec(table)
	if err != nil {
		return false, err
	}

	tag, err := c.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.Name), id)
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", t.Name, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (c *Client) SearchByPattern(ctx context.Context, table string, filter store.Filter, field, pattern string, limit int) ([]store.Record, error) {
	t, err := tableSpec(table)
	if err != nil {
		return nil, err
	}
	if _, ok := t.Field(field); !ok {
		return nil, fmt.Errorf("unknown field %s.%s", t.Name, field)
	}

	where, args := whereClause(filter, 0)
	if where == "" {
		where = "WHERE TRUE"
	}
	args = append(args, "%"+pattern+"%")
	query := fmt.Sprintf("SELECT %s FROM %s %s AND %s ILIKE $%d",
		strings.Join(selectColumns(t), ", "), t.Name, where, field, len(args))
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", t.Name, err)
	}
	return scanRecords(rows, t)
}

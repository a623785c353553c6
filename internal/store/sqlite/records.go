package sqlite

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

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s", strings.Join(selectColumns(t), ", "), t.Name, where)
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
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

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(cols, ", "), placeholders)
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
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
		sets = append(sets, fmt.Sprintf("%s = ?", f.Name))
		args = append(args, encoded)
	}
	if len(sets) == 0 {
		return c.Get(ctx, table, store.Where("id", id))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.Name, strings.Join(sets, ", "))
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", t.Name, err)
	}
	if affected == 0 {
		return nil, nil
	}

	return c.Get(ctx, table, store.Where("id", id))
}

func (c *Client) Delete(ctx context.Context, table, id string) (bool, error) {
	t, err := tableSpec(table)
	if err != nil {
		return false, err
	}

	res, err := c.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.Name), id)
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", t.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting from %s: %w", t.Name, err)
	}
	return affected > 0, nil
}

func (c *Client) SearchByPattern(ctx context.Context, table string, filter store.Filter, field, pattern string, limit int) ([]store.Record, error) {
	t, err := tableSpec(table)
	if err != nil {
		return nil, err
	}
	if _, ok := t.Field(field); !ok {
		return nil, fmt.Errorf("unknown field %s.%s", t.Name, field)
	}

	where, args := whereClause(filter)
	if where == "" {
		where = "WHERE 1 = 1"
	}
	args = append(args, "%"+strings.ToLower(pattern)+"%")
	query := fmt.Sprintf("SELECT %s FROM %s %s AND LOWER(%s) LIKE ?",
		strings.Join(selectColumns(t), ", "), t.Name, where, field)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", t.Name, err)
	}
	return scanRecords(rows, t)
}

package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

func selectColumns(t *schema.Table) []string {
	cols := []string{"id", "created_at"}
	return append(cols, t.FieldNames()...)
}

// whereClause renders a filter into SQL with ? placeholders. Membership
// predicates with no values render to a clause matching nothing.
func whereClause(filter store.Filter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	var clauses []string
	var args []any
	for _, p := range filter {
		if p.In() {
			if len(p.Values) == 0 {
				clauses = append(clauses, "1 = 0")
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(p.Values)), ", ")
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", p.Field, placeholders))
			args = append(args, p.Values...)
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s = ?", p.Field))
		args = append(args, p.Value)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func encodeValue(kind schema.FieldKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch kind {
	case schema.KindStringList, schema.KindUUIDList, schema.KindFloatList:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s value: %w", kind, err)
		}
		return string(data), nil
	default:
		return value, nil
	}
}

func scanRecords(rows *sql.Rows, t *schema.Table) ([]store.Record, error) {
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		dests := make([]any, 0, len(t.Fields)+2)
		var id, createdAt string
		dests = append(dests, &id, &createdAt)

		holders := make([]any, len(t.Fields))
		for i, f := range t.Fields {
			switch f.Kind {
			case schema.KindInt:
				holders[i] = new(sql.NullInt64)
			default:
				holders[i] = new(sql.NullString)
			}
			dests = append(dests, holders[i])
		}

		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", t.Name, err)
		}

		rec := store.Record{"id": id, "created_at": createdAt}
		for i, f := range t.Fields {
			value, err := decodeColumn(f, holders[i])
			if err != nil {
				return nil, fmt.Errorf("decoding %s.%s: %w", t.Name, f.Name, err)
			}
			if value != nil {
				rec[f.Name] = value
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", t.Name, err)
	}

	if records == nil {
		records = []store.Record{}
	}
	return records, nil
}

func decodeColumn(f schema.Field, holder any) (any, error) {
	switch f.Kind {
	case schema.KindInt:
		v := holder.(*sql.NullInt64)
		if !v.Valid {
			return nil, nil
		}
		return v.Int64, nil

	case schema.KindStringList, schema.KindUUIDList:
		v := holder.(*sql.NullString)
		if !v.Valid || v.String == "" {
			return nil, nil
		}
		var items []string
		if err := json.Unmarshal([]byte(v.String), &items); err != nil {
			return nil, err
		}
		return items, nil

	case schema.KindFloatList:
		v := holder.(*sql.NullString)
		if !v.Valid || v.String == "" {
			return nil, nil
		}
		var items []float64
		if err := json.Unmarshal([]byte(v.String), &items); err != nil {
			return nil, err
		}
		return items, nil

	default:
		v := holder.(*sql.NullString)
		if !v.Valid {
			return nil, nil
		}
		return v.String, nil
	}
}

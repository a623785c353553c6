package postgres

import (
	"context"
	"fmt"
	"strings"

	"chronicler/internal/schema"
)

func columnType(kind schema.FieldKind) string {
	switch kind {
	case schema.KindInt:
		return "BIGINT"
	case schema.KindStringList, schema.KindUUIDList, schema.KindFloatList:
		return "JSONB"
	default:
		return "TEXT"
	}
}

// EnsureSchema creates every table and index if missing. The DDL is
// idempotent; there is no migration history.
func (c *Client) EnsureSchema(ctx context.Context) error {
	var statements []string

	for _, t := range schema.All {
		var cols []string
		cols = append(cols,
			"id TEXT PRIMARY KEY",
			"created_at TEXT NOT NULL",
		)
		for _, f := range t.Fields {
			col := fmt.Sprintf("%s %s", f.Name, columnType(f.Kind))
			if f.Required {
				col += " NOT NULL"
			}
			cols = append(cols, col)
		}
		statements = append(statements, fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
			t.Name, strings.Join(cols, ",\n\t"),
		))
		statements = append(statements, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_campaign ON %s (campaign_id)",
			t.Name, t.Name,
		))
	}

	statements = append(statements,
		"CREATE INDEX IF NOT EXISTS idx_memories_entity ON memories (campaign_id, entity_type, entity_id)",
		"CREATE INDEX IF NOT EXISTS idx_memories_happened ON memories (happened_at)",
		"CREATE INDEX IF NOT EXISTS idx_current_events_arc ON current_events (arc_id)",
		"CREATE INDEX IF NOT EXISTS idx_relationships_a ON npc_relationships (npc_id_a)",
		"CREATE INDEX IF NOT EXISTS idx_relationships_b ON npc_relationships (npc_id_b)",
	)

	for _, stmt := range statements {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}
	return nil
}

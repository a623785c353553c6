package assembly

import (
	"context"
	"fmt"
	"sort"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

// MemoryLimit caps how many memories a bundle may carry.
const MemoryLimit = 20

// Memories fetches the memories for one entity, keeps those the viewer is
// allowed to see, and returns the most recent (by narrative time) first,
// capped at limit. The scope filter runs here even if the underlying store
// already filtered; extra rows from the store must never widen visibility.
func Memories(ctx context.Context, st store.Store, campaignID, entityType, entityID string, viewer Viewer, limit int) ([]Memory, error) {
	filter := store.Where("campaign_id", campaignID).
		Eq("entity_type", entityType).
		Eq("entity_id", entityID)

	records, err := st.List(ctx, schema.TableMemories, filter, store.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching memories: %w", err)
	}

	allowed := AllowedScopes(viewer)
	memories := []Memory{}
	for _, r := range records {
		m := decodeMemory(r)
		if _, ok := allowed[m.VisibilityScope]; !ok {
			continue
		}
		memories = append(memories, m)
	}

	// Narrative time is the sort key; ties keep store order.
	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].happenedAt.After(memories[j].happenedAt)
	})

	if limit > 0 && len(memories) > limit {
		memories = memories[:limit]
	}
	return memories, nil
}

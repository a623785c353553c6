package assembly

import (
	"context"
	"fmt"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

// Relationships returns the campaign's relationship edges touching the NPC.
// Edges are undirected in meaning, so the NPC may match either endpoint; a
// self-referencing edge matches exactly once. Order follows store iteration.
func Relationships(ctx context.Context, st store.Store, campaignID, npcID string) ([]Relationship, error) {
	records, err := st.List(ctx, schema.TableRelationships, store.Where("campaign_id", campaignID), store.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching relationships: %w", err)
	}

	edges := []Relationship{}
	for _, r := range records {
		rel := decodeRelationship(r)
		if rel.NPCIDA != npcID && rel.NPCIDB != npcID {
			continue
		}
		edges = append(edges, rel)
	}
	return edges, nil
}

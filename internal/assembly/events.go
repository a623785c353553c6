package assembly

import (
	"context"
	"fmt"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

// ScopedEvents returns the campaign's current events, scoped by arc. With
// explicit arc ids, only events belonging to those arcs are returned. With
// none, only events with no arc at all are returned: omitting arc filters
// means "the ambient world", never "every ongoing plot". Collapsing the
// no-arc case into "return all events" would leak other arcs' events.
func ScopedEvents(ctx context.Context, st store.Store, campaignID string, arcIDs []string) ([]CurrentEvent, error) {
	records, err := st.List(ctx, schema.TableCurrentEvents, store.Where("campaign_id", campaignID), store.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching current events: %w", err)
	}

	requested := make(map[string]struct{}, len(arcIDs))
	for _, id := range arcIDs {
		requested[id] = struct{}{}
	}

	events := []CurrentEvent{}
	for _, r := range records {
		e := decodeEvent(r)
		if len(arcIDs) > 0 {
			if _, ok := requested[e.ArcID]; !ok {
				continue
			}
		} else if e.ArcID != "" {
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// ResolveArcs returns the arc records for explicitly requested arc ids. With
// no ids it returns an empty list: arcs are only surfaced when asked for,
// since an unrequested arc carries no meaning without an associated event.
// Unknown ids are silently omitted.
func ResolveArcs(ctx context.Context, st store.Store, campaignID string, arcIDs []string) ([]Arc, error) {
	if len(arcIDs) == 0 {
		return []Arc{}, nil
	}

	ids := make([]any, len(arcIDs))
	for i, id := range arcIDs {
		ids[i] = id
	}
	filter := store.Where("campaign_id", campaignID).In("id", ids...)

	records, err := st.List(ctx, schema.TableArcs, filter, store.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching arcs: %w", err)
	}

	arcs := []Arc{}
	for _, r := range records {
		arcs = append(arcs, decodeArc(r))
	}
	return arcs, nil
}

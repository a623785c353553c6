package assembly

import (
	"context"
	"testing"

	"chronicler/internal/schema"
	"chronicler/internal/store"
	"chronicler/internal/store/storetest"
)

func eventRecord(id, arcID string) store.Record {
	r := store.Record{
		"id":          id,
		"campaign_id": "camp-1",
		"title":       "Something brews",
		"state":       "ongoing",
		"severity":    "low",
	}
	if arcID != "" {
		r["arc_id"] = arcID
	}
	return r
}

func arcRecord(id string) store.Record {
	return store.Record{
		"id":          id,
		"campaign_id": "camp-1",
		"name":        "The Long Road",
		"status":      "active",
	}
}

func TestScopedEvents_NoArcsMeansUnscopedOnly(t *testing.T) {
	db := storetest.New()
	db.Seed(schema.TableCurrentEvents,
		eventRecord("e1", "arc1"),
		eventRecord("e2", ""),
	)

	events, err := ScopedEvents(context.Background(), db, "camp-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e2" {
		t.Fatalf("expected only the unscoped event, got %v", events)
	}
}

func TestScopedEvents_ExplicitArcMembership(t *testing.T) {
	db := storetest.New()
	db.Seed(schema.TableCurrentEvents,
		eventRecord("e1", "arc1"),
		eventRecord("e2", ""),
		eventRecord("e3", "arc2"),
	)

	events, err := ScopedEvents(context.Background(), db, "camp-1", []string{"arc1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("expected only the arc1 event, got %v", events)
	}
}

func TestScopedEvents_MultipleArcs(t *testing.T) {
	db := storetest.New()
	db.Seed(schema.TableCurrentEvents,
		eventRecord("e1", "arc1"),
		eventRecord("e2", ""),
		eventRecord("e3", "arc2"),
	)

	events, err := ScopedEvents(context.Background(), db, "camp-1", []string{"arc1", "arc2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestResolveArcs_EmptyWithoutExplicitRequest(t *testing.T) {
	db := storetest.New()
	db.Seed(schema.TableArcs, arcRecord("arc1"))

	arcs, err := ResolveArcs(context.Background(), db, "camp-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arcs) != 0 {
		t.Fatalf("expected no arcs, got %d", len(arcs))
	}
}

func TestResolveArcs_UnknownIDsSilentlyOmitted(t *testing.T) {
	db := storetest.New()
	db.Seed(schema.TableArcs, arcRecord("arc1"))

	arcs, err := ResolveArcs(context.Background(), db, "camp-1", []string{"arc1", "arc-missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arcs) != 1 || arcs[0].ID != "arc1" {
		t.Fatalf("expected exactly arc1, got %v", arcs)
	}
}

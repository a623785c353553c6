package store

import "testing"

func TestFilter_Empty(t *testing.T) {
	var f Filter
	if !f.Matches(Record{"a": "b"}) {
		t.Fatal("empty filter should match everything")
	}
}

func TestFilter_Eq(t *testing.T) {
	f := Where("campaign_id", "camp-1").Eq("entity_id", "npc1")

	if !f.Matches(Record{"campaign_id": "camp-1", "entity_id": "npc1"}) {
		t.Fatal("expected match")
	}
	if f.Matches(Record{"campaign_id": "camp-1", "entity_id": "npc2"}) {
		t.Fatal("expected no match on differing field")
	}
	if f.Matches(Record{"campaign_id": "camp-1"}) {
		t.Fatal("expected no match on absent field")
	}
}

func TestFilter_In(t *testing.T) {
	f := Filter{}.In("id", "a", "b")

	if !f.Matches(Record{"id": "b"}) {
		t.Fatal("expected membership match")
	}
	if f.Matches(Record{"id": "c"}) {
		t.Fatal("expected no match outside the set")
	}
}

func TestFilter_InEmptyMatchesNothing(t *testing.T) {
	f := Filter{}.In("id")
	if f.Matches(Record{"id": "a"}) {
		t.Fatal("empty membership set should match nothing")
	}
}

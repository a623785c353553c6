package api

import (
	"net/http"
	"strings"
	"testing"

	"chronicler/internal/schema"
	"chronicler/internal/store"
	"chronicler/internal/store/storetest"
)

const (
	testNPC    = "44444444-4444-4444-4444-444444444444"
	testPlayer = "55555555-5555-5555-5555-555555555555"
	testArc    = "66666666-6666-6666-6666-666666666666"
)

func seedContextCampaign(db *storetest.Store) {
	db.Seed(schema.TableNPCs, store.Record{
		"id":           testNPC,
		"campaign_id":  testCampaign,
		"user_id":      testUser,
		"name":         "Emilia",
		"speech_style": "formal",
		"secrets":      "half-elf",
	})
	db.Seed(schema.TablePlayers, store.Record{
		"id":          testPlayer,
		"campaign_id": testCampaign,
		"user_id":     testUser,
		"name":        "Subaru",
	})
	db.Seed(schema.TableMemories,
		store.Record{
			"id": "m-pub", "campaign_id": testCampaign,
			"entity_type": "npc", "entity_id": testNPC,
			"kind": "dialogue", "text": "a friendly chat",
			"happened_at": "2024-01-01T00:00:00Z", "visibility_scope": schema.ScopePublic,
		},
		store.Record{
			"id": "m-gm", "campaign_id": testCampaign,
			"entity_type": "npc", "entity_id": testNPC,
			"kind": "clue", "text": "the hidden gm-only truth",
			"happened_at": "2024-01-02T00:00:00Z", "visibility_scope": schema.ScopeGMOnly,
		},
	)
	db.Seed(schema.TableCurrentEvents,
		store.Record{
			"id": "e-arc", "campaign_id": testCampaign, "user_id": testUser,
			"title": "Siege", "state": "ongoing", "severity": "high", "arc_id": testArc,
		},
		store.Record{
			"id": "e-world", "campaign_id": testCampaign, "user_id": testUser,
			"title": "Festival", "state": "ongoing", "severity": "low",
		},
	)
	db.Seed(schema.TableArcs, store.Record{
		"id": testArc, "campaign_id": testCampaign, "user_id": testUser,
		"name": "The Long Road", "status": "active",
	})
}

func TestNPCContextEndpoint(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	rec := doJSON(t, handler, http.MethodPost, "/context/npc", token, map[string]any{
		"campaign_id": testCampaign,
		"npc_id":      testNPC,
		"time":        "2024-06-01T12:00:00Z",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	out := decodeResponse(t, rec)
	npc, _ := out["npc"].(map[string]any)
	if npc["id"] != testNPC {
		t.Fatalf("unexpected npc in bundle: %v", npc)
	}
	voice, _ := out["voice"].(map[string]any)
	if voice["speech_style"] != "formal" {
		t.Fatalf("unexpected voice projection: %v", voice)
	}

	if strings.Contains(rec.Body.String(), "gm-only truth") {
		t.Fatal("gm-scoped memory leaked into the npc bundle")
	}
}

func TestNPCContextEndpoint_ArcScoped(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	rec := doJSON(t, handler, http.MethodPost, "/context/npc", token, map[string]any{
		"campaign_id": testCampaign,
		"npc_id":      testNPC,
		"time":        "2024-06-01T12:00:00Z",
		"arc_ids":     []string{testArc},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "e-arc") || strings.Contains(body, "e-world") {
		t.Fatalf("expected only the arc-scoped event, got %s", body)
	}
}

func TestNPCContextEndpoint_UnknownNPC(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	rec := doJSON(t, handler, http.MethodPost, "/context/npc", token, map[string]any{
		"campaign_id": testCampaign,
		"npc_id":      "99999999-9999-9999-9999-999999999999",
		"time":        "2024-06-01T12:00:00Z",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != codeEntityNotFound {
		t.Fatalf("expected %s, got %s", codeEntityNotFound, code)
	}
}

func TestNPCContextEndpoint_MissingTime(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	rec := doJSON(t, handler, http.MethodPost, "/context/npc", token, map[string]any{
		"campaign_id": testCampaign,
		"npc_id":      testNPC,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	out := decodeResponse(t, rec)
	fields, _ := out["fields"].(map[string]any)
	if fields["time"] == nil {
		t.Fatalf("expected a time error, got %v", out)
	}
}

func TestPlayerContextEndpoint(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	rec := doJSON(t, handler, http.MethodPost, "/context/player", token, map[string]any{
		"campaign_id": testCampaign,
		"player_id":   testPlayer,
		"time":        "2024-06-01T12:00:00Z",
		"arc_ids":     []string{testArc},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	out := decodeResponse(t, rec)
	player, _ := out["player"].(map[string]any)
	if player["id"] != testPlayer {
		t.Fatalf("unexpected player in bundle: %v", player)
	}
	arcs, _ := out["arcs"].([]any)
	if len(arcs) != 1 {
		t.Fatalf("expected the requested arc, got %v", out["arcs"])
	}
}

func TestPlayerContextEndpoint_Idempotent(t *testing.T) {
	db, handler := newTestServer()
	seedContextCampaign(db)
	token := signToken(t, testSecret, testUser)

	body := map[string]any{
		"campaign_id": testCampaign,
		"player_id":   testPlayer,
		"time":        "2024-06-01T12:00:00Z",
		"arc_ids":     []string{testArc},
	}
	first := doJSON(t, handler, http.MethodPost, "/context/player", token, body)
	second := doJSON(t, handler, http.MethodPost, "/context/player", token, body)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("identical requests must produce byte-identical bundles")
	}
}

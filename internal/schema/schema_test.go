package schema

import (
	"strings"
	"testing"
)

var testTable = NewTable("widgets",
	Field{Name: "campaign_id", Kind: KindUUID, Required: true},
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 10},
	Field{Name: "severity", Kind: KindEnum, Values: []string{"low", "high"}, Default: "low"},
	Field{Name: "count", Kind: KindInt, Min: 1, Max: 5},
	Field{Name: "tags", Kind: KindStringList},
	Field{Name: "when", Kind: KindDateTime},
)

const validUUID = "8a4f19a6-22cc-4f8e-9e35-6a8f4f0b61f2"

func TestValidate_AppliesDefaults(t *testing.T) {
	out, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out["severity"] != "low" {
		t.Fatalf("expected default severity, got %v", out["severity"])
	}
}

func TestValidate_RequiredMissing(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{"name": "sword"})
	if errs == nil {
		t.Fatal("expected errors")
	}
	if errs["campaign_id"] != "required" {
		t.Fatalf("expected campaign_id required, got %v", errs)
	}
}

func TestValidate_InvalidUUID(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{
		"campaign_id": "not-a-uuid",
		"name":        "sword",
	})
	if errs == nil || errs["campaign_id"] != "invalid uuid" {
		t.Fatalf("expected invalid uuid, got %v", errs)
	}
}

func TestValidate_EnumRejected(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"severity":    "extreme",
	})
	if errs == nil {
		t.Fatal("expected errors")
	}
	if !strings.Contains(errs["severity"], "must be one of") {
		t.Fatalf("unexpected message: %v", errs["severity"])
	}
}

func TestValidate_MaxLen(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "much-too-long-for-the-limit",
	})
	if errs == nil || !strings.Contains(errs["name"], "exceeds") {
		t.Fatalf("expected length error, got %v", errs)
	}
}

func TestValidate_IntRange(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"count":       float64(9),
	})
	if errs == nil || !strings.Contains(errs["count"], "between") {
		t.Fatalf("expected range error, got %v", errs)
	}
}

func TestValidate_DateTime(t *testing.T) {
	_, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"when":        "yesterday",
	})
	if errs == nil || errs["when"] == "" {
		t.Fatalf("expected timestamp error, got %v", errs)
	}

	out, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"when":        "2024-03-01T10:00:00Z",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out["when"] != "2024-03-01T10:00:00Z" {
		t.Fatalf("unexpected value: %v", out["when"])
	}
}

func TestValidate_DropsUnknownFields(t *testing.T) {
	out, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"extra":       "ignored",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := out["extra"]; ok {
		t.Fatal("unknown field should be dropped")
	}
}

func TestValidatePartial_SkipsRequired(t *testing.T) {
	out, errs := testTable.ValidatePartial(map[string]any{"name": "axe"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out["name"] != "axe" {
		t.Fatalf("unexpected value: %v", out["name"])
	}
	if _, ok := out["severity"]; ok {
		t.Fatal("partial validation must not apply defaults")
	}
}

func TestValidate_StringListFromJSON(t *testing.T) {
	out, errs := testTable.Validate(map[string]any{
		"campaign_id": validUUID,
		"name":        "sword",
		"tags":        []any{"sharp", "old"},
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	tags, ok := out["tags"].([]string)
	if !ok || len(tags) != 2 || tags[0] != "sharp" {
		t.Fatalf("unexpected tags: %v", out["tags"])
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName(TableMemories); !ok {
		t.Fatal("memories table should be registered")
	}
	if _, ok := ByName("nope"); ok {
		t.Fatal("unknown table should not resolve")
	}
}

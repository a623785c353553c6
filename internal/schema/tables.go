package schema

// Table names for every record kind the backend stores. The context
// assembler reads npcs, players, memories, npc_relationships, arcs and
// current_events; the rest are plain CRUD tables.
const (
	TableRules         = "rules"
	TableSystems       = "systems"
	TableLocations     = "locations"
	TableNPCs          = "npcs"
	TablePlayers       = "players"
	TableGroups        = "groups"
	TableAbilities     = "abilities"
	TableCanonEvents   = "canon_events"
	TableTimeline      = "timeline"
	TableArcs          = "arcs"
	TableCurrentEvents = "current_events"
	TableRelationships = "npc_relationships"
	TableMemories      = "memories"
)

// Visibility scopes carried by memories and timeline entries.
const (
	ScopePublic     = "public"
	ScopeNPCOnly    = "npc_only"
	ScopePlayerOnly = "player_only"
	ScopeGMOnly     = "gm_only"
)

var visibilityScopes = []string{ScopePublic, ScopeNPCOnly, ScopePlayerOnly, ScopeGMOnly}

func campaignScoped(extra ...Field) []Field {
	fields := []Field{
		{Name: "campaign_id", Kind: KindUUID, Required: true},
		{Name: "user_id", Kind: KindUUID, Required: true},
	}
	return append(fields, extra...)
}

var Rules = NewTable(TableRules, campaignScoped(
	Field{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "description", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "system_id", Kind: KindUUID, Required: true},
)...)

var Systems = NewTable(TableSystems, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "description", Kind: KindText, Required: true, MaxLen: 2000},
)...)

var Locations = NewTable(TableLocations, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "description", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "region", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "tags", Kind: KindStringList, Default: []string{}},
)...)

var NPCs = NewTable(TableNPCs, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "role", Kind: KindString, MaxLen: 1000},
	Field{Name: "speech_style", Kind: KindString, MaxLen: 1000},
	Field{Name: "quirks", Kind: KindString, MaxLen: 1000},
	Field{Name: "goals", Kind: KindString, MaxLen: 1000},
	Field{Name: "fears", Kind: KindString, MaxLen: 1000},
	Field{Name: "secrets", Kind: KindString, MaxLen: 1000},
	Field{Name: "moral_alignment", Kind: KindString, MaxLen: 1000},
	Field{Name: "location_id", Kind: KindUUID},
)...)

var Players = NewTable(TablePlayers, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "background", Kind: KindString, MaxLen: 1000},
)...)

var Groups = NewTable(TableGroups, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "description", Kind: KindString, MaxLen: 1000},
	Field{Name: "faction", Kind: KindString, MaxLen: 1000},
)...)

var Abilities = NewTable(TableAbilities, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "description", Kind: KindString, MaxLen: 1000},
	Field{Name: "power_level", Kind: KindInt, Required: true, Min: 1, Max: 10},
)...)

// Canon events may be seeded without an owning user.
var CanonEvents = NewTable(TableCanonEvents,
	Field{Name: "campaign_id", Kind: KindUUID, Required: true},
	Field{Name: "user_id", Kind: KindUUID},
	Field{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "summary", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "happened_at", Kind: KindDateTime, Required: true},
)

var Timeline = NewTable(TableTimeline, campaignScoped(
	Field{Name: "kind", Kind: KindEnum, Required: true, Values: []string{"rumor", "battle", "political", "personal", "mystery"}},
	Field{Name: "text", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "happened_at", Kind: KindDateTime, Required: true},
	Field{Name: "participants", Kind: KindUUIDList},
	Field{Name: "visibility_scope", Kind: KindEnum, Values: visibilityScopes, Default: ScopePublic},
)...)

var Arcs = NewTable(TableArcs, campaignScoped(
	Field{Name: "name", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "status", Kind: KindEnum, Required: true, Values: []string{"planned", "active", "resolved", "failed"}},
	Field{Name: "hooks", Kind: KindString, MaxLen: 1000},
	Field{Name: "clues", Kind: KindString, MaxLen: 1000},
	Field{Name: "stakes", Kind: KindString, MaxLen: 1000},
)...)

var CurrentEvents = NewTable(TableCurrentEvents, campaignScoped(
	Field{Name: "title", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "state", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "severity", Kind: KindEnum, Required: true, Values: []string{"low", "medium", "high"}},
	Field{Name: "arc_id", Kind: KindUUID},
)...)

// Relationships are undirected in meaning: either endpoint may match a
// context query.
var Relationships = NewTable(TableRelationships, campaignScoped(
	Field{Name: "npc_id_a", Kind: KindUUID, Required: true},
	Field{Name: "npc_id_b", Kind: KindUUID, Required: true},
	Field{Name: "relation_type", Kind: KindString, Required: true, MaxLen: 255},
	Field{Name: "intensity", Kind: KindInt, Min: 1, Max: 10},
	Field{Name: "notes", Kind: KindString, MaxLen: 1000},
)...)

var Memories = NewTable(TableMemories, campaignScoped(
	Field{Name: "entity_type", Kind: KindEnum, Required: true, Values: []string{"npc", "player", "world"}},
	Field{Name: "entity_id", Kind: KindUUID, Required: true},
	Field{Name: "kind", Kind: KindEnum, Required: true, Values: []string{"dialogue", "event", "rumor", "clue"}},
	Field{Name: "text", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "happened_at", Kind: KindDateTime, Required: true},
	Field{Name: "visibility_scope", Kind: KindEnum, Values: visibilityScopes, Default: ScopePublic},
	Field{Name: "summary_short", Kind: KindString, MaxLen: 1000},
	Field{Name: "summary_long", Kind: KindText, MaxLen: 2000},
	Field{Name: "embedding", Kind: KindFloatList},
)...)

// EventLog validates the events/log request body. Entries land in the
// timeline table; the kind vocabulary differs from timeline's own on
// purpose, matching the ingestion contract.
var EventLog = NewTable(TableTimeline, campaignScoped(
	Field{Name: "kind", Kind: KindEnum, Required: true, Values: []string{"dialogue", "rumor", "battle", "investigation", "downtime"}},
	Field{Name: "text", Kind: KindText, Required: true, MaxLen: 2000},
	Field{Name: "happened_at", Kind: KindDateTime, Required: true},
	Field{Name: "participants", Kind: KindUUIDList},
	Field{Name: "visibility_scope", Kind: KindEnum, Values: visibilityScopes, Default: ScopePublic},
)...)

// CrudTables lists every table exposed through the generic CRUD endpoints,
// keyed by URL path segment.
var CrudTables = map[string]*Table{
	"rules":          Rules,
	"systems":        Systems,
	"locations":      Locations,
	"npcs":           NPCs,
	"players":        Players,
	"groups":         Groups,
	"abilities":      Abilities,
	"canon-events":   CanonEvents,
	"timeline":       Timeline,
	"arcs":           Arcs,
	"current-events": CurrentEvents,
	"relationships":  Relationships,
}

// All lists every table spec, for schema creation.
var All = []*Table{
	Rules, Systems, Locations, NPCs, Players, Groups, Abilities,
	CanonEvents, Timeline, Arcs, CurrentEvents, Relationships, Memories,
}

var byName = func() map[string]*Table {
	m := make(map[string]*Table, len(All))
	for _, t := range All {
		m[t.Name] = t
	}
	return m
}()

// ByName resolves a table spec by its storage name.
func ByName(name string) (*Table, bool) {
	t, ok := byName[name]
	return t, ok
}

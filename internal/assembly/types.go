package assembly

import (
	"time"

	"chronicler/internal/store"
)

// Memory is one timestamped observation attached to an entity. HappenedAt is
// narrative time, not insertion time.
type Memory struct {
	ID              string    `json:"id"`
	CampaignID      string    `json:"campaign_id"`
	EntityType      string    `json:"entity_type"`
	EntityID        string    `json:"entity_id"`
	Kind            string    `json:"kind"`
	Text            string    `json:"text"`
	HappenedAt      string    `json:"happened_at"`
	VisibilityScope string    `json:"visibility_scope"`
	SummaryShort    string    `json:"summary_short,omitempty"`
	SummaryLong     string    `json:"summary_long,omitempty"`
	Embedding       []float64 `json:"embedding,omitempty"`

	happenedAt time.Time
}

// Relationship is an undirected edge between two NPCs.
type Relationship struct {
	ID           string `json:"id"`
	CampaignID   string `json:"campaign_id"`
	NPCIDA       string `json:"npc_id_a"`
	NPCIDB       string `json:"npc_id_b"`
	RelationType string `json:"relation_type"`
	Intensity    int64  `json:"intensity,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Arc is a narrative storyline grouping related current events.
type Arc struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Hooks      string `json:"hooks,omitempty"`
	Clues      string `json:"clues,omitempty"`
	Stakes     string `json:"stakes,omitempty"`
}

// CurrentEvent is a live situation, optionally scoped to an arc.
type CurrentEvent struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Title      string `json:"title"`
	State      string `json:"state"`
	Severity   string `json:"severity"`
	ArcID      string `json:"arc_id,omitempty"`
}

// Voice is the read-only projection of an NPC used by dialogue generators to
// stay in character.
type Voice struct {
	SpeechStyle    string `json:"speech_style"`
	Quirks         string `json:"quirks"`
	Goals          string `json:"goals"`
	Fears          string `json:"fears"`
	Secrets        string `json:"secrets"`
	MoralAlignment string `json:"moral_alignment"`
}

// NPCContext is the assembled bundle for an NPC viewer. It is built fresh
// per request and never persisted.
type NPCContext struct {
	NPC           store.Record   `json:"npc"`
	Memories      []Memory       `json:"memories"`
	Relationships []Relationship `json:"relationships"`
	Events        []CurrentEvent `json:"events"`
	Voice         Voice          `json:"voice"`
}

// PlayerContext is the assembled bundle for a player viewer.
type PlayerContext struct {
	Player   store.Record   `json:"player"`
	Memories []Memory       `json:"memories"`
	Arcs     []Arc          `json:"arcs"`
	Events   []CurrentEvent `json:"events"`
}

func decodeMemory(r store.Record) Memory {
	m := Memory{
		ID:              r.ID(),
		CampaignID:      r.String("campaign_id"),
		EntityType:      r.String("entity_type"),
		EntityID:        r.String("entity_id"),
		Kind:            r.String("kind"),
		Text:            r.String("text"),
		HappenedAt:      r.String("happened_at"),
		VisibilityScope: r.String("visibility_scope"),
		SummaryShort:    r.String("summary_short"),
		SummaryLong:     r.String("summary_long"),
	}
	if embedding, ok := r["embedding"].([]float64); ok {
		m.Embedding = embedding
	}
	// Malformed timestamps sort last; ingestion validates the format so this
	// only matters for hand-seeded rows.
	m.happenedAt, _ = time.Parse(time.RFC3339, m.HappenedAt)
	return m
}

func decodeRelationship(r store.Record) Relationship {
	rel := Relationship{
		ID:           r.ID(),
		CampaignID:   r.String("campaign_id"),
		NPCIDA:       r.String("npc_id_a"),
		NPCIDB:       r.String("npc_id_b"),
		RelationType: r.String("relation_type"),
		Notes:        r.String("notes"),
	}
	rel.Intensity = intField(r, "intensity")
	return rel
}

func decodeArc(r store.Record) Arc {
	return Arc{
		ID:         r.ID(),
		CampaignID: r.String("campaign_id"),
		Name:       r.String("name"),
		Status:     r.String("status"),
		Hooks:      r.String("hooks"),
		Clues:      r.String("clues"),
		Stakes:     r.String("stakes"),
	}
}

func decodeEvent(r store.Record) CurrentEvent {
	return CurrentEvent{
		ID:         r.ID(),
		CampaignID: r.String("campaign_id"),
		Title:      r.String("title"),
		State:      r.String("state"),
		Severity:   r.String("severity"),
		ArcID:      r.String("arc_id"),
	}
}

func decodeVoice(r store.Record) Voice {
	return Voice{
		SpeechStyle:    r.String("speech_style"),
		Quirks:         r.String("quirks"),
		Goals:          r.String("goals"),
		Fears:          r.String("fears"),
		Secrets:        r.String("secrets"),
		MoralAlignment: r.String("moral_alignment"),
	}
}

func intField(r store.Record, field string) int64 {
	switch n := r[field].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

package api

import (
	"net/http"
	"strconv"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

const (
	searchLimitDefault = 10
	searchLimitMax     = 50
)

// handleEventLog appends one timeline entry.
func (s *Server) handleEventLog(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	payload["user_id"] = userID(r.Context())

	validated, errs := schema.EventLog.Validate(payload)
	if errs != nil {
		respondFieldErrors(w, errs)
		return
	}

	record, err := s.store.Insert(r.Context(), schema.TableTimeline, validated)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"event":      record,
		"next_steps": "Generate embedding and POST /events/embeddings/ingest if using RAG.",
	})
}

// handleMemoryIngest appends one memory record. The embedding field is
// stored as-is; nothing reads it yet.
func (s *Server) handleMemoryIngest(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	payload["user_id"] = userID(r.Context())

	validated, errs := schema.Memories.Validate(payload)
	if errs != nil {
		respondFieldErrors(w, errs)
		return
	}

	record, err := s.store.Insert(r.Context(), schema.TableMemories, validated)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

var memorySearchRequest = schema.NewTable("memory_search",
	schema.Field{Name: "campaign_id", Kind: schema.KindUUID, Required: true},
	schema.Field{Name: "query", Kind: schema.KindString, Required: true, MaxLen: 2000},
	schema.Field{Name: "entity_type", Kind: schema.KindEnum, Values: []string{"npc", "player", "world"}},
	schema.Field{Name: "entity_id", Kind: schema.KindUUID},
	schema.Field{Name: "limit", Kind: schema.KindInt, Min: 1, Max: searchLimitMax},
)

// handleMemorySearch performs a substring match over memory text. The
// contract is a stand-in for similarity-based retrieval; no ranking is
// applied.
func (s *Server) handleMemorySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	payload := map[string]any{}
	for _, key := range []string{"campaign_id", "query", "entity_type", "entity_id"} {
		if value := q.Get(key); value != "" {
			payload[key] = value
		}
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondFieldErrors(w, schema.FieldErrors{"limit": "expected an integer"})
			return
		}
		payload["limit"] = n
	}

	validated, errs := memorySearchRequest.Validate(payload)
	if errs != nil {
		respondFieldErrors(w, errs)
		return
	}

	filter := store.Where("campaign_id", validated["campaign_id"])
	if entityType, ok := validated["entity_type"]; ok {
		filter = filter.Eq("entity_type", entityType)
	}
	if entityID, ok := validated["entity_id"]; ok {
		filter = filter.Eq("entity_id", entityID)
	}

	limit := searchLimitDefault
	if n, ok := validated["limit"].(int); ok {
		limit = n
	}

	records, err := s.store.SearchByPattern(r.Context(), schema.TableMemories, filter, "text", validated["query"].(string), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

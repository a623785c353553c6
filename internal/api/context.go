package api

import (
	"errors"
	"net/http"

	"chronicler/internal/assembly"
	"chronicler/internal/schema"
)

// Request validation for the context endpoints. The time, local_id and
// player_state_hint fields are accepted for forward compatibility with
// situational prompts but do not affect selection yet.
var npcContextRequest = schema.NewTable("context_npc",
	schema.Field{Name: "campaign_id", Kind: schema.KindUUID, Required: true},
	schema.Field{Name: "npc_id", Kind: schema.KindUUID, Required: true},
	schema.Field{Name: "local_id", Kind: schema.KindUUID},
	schema.Field{Name: "time", Kind: schema.KindDateTime, Required: true},
	schema.Field{Name: "arc_ids", Kind: schema.KindUUIDList},
	schema.Field{Name: "player_state_hint", Kind: schema.KindString, MaxLen: 1000},
)

var playerContextRequest = schema.NewTable("context_player",
	schema.Field{Name: "campaign_id", Kind: schema.KindUUID, Required: true},
	schema.Field{Name: "player_id", Kind: schema.KindUUID, Required: true},
	schema.Field{Name: "local_id", Kind: schema.KindUUID},
	schema.Field{Name: "time", Kind: schema.KindDateTime, Required: true},
	schema.Field{Name: "arc_ids", Kind: schema.KindUUIDList},
)

func (s *Server) handleNPCContext(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	validated, errs := npcContextRequest.Validate(payload)
	if errs != nil {
		respondFieldErrors(w, errs)
		return
	}

	campaignID := validated["campaign_id"].(string)
	npcID := validated["npc_id"].(string)
	arcIDs, _ := validated["arc_ids"].([]string)

	bundle, err := s.assembler.BuildNPCContext(r.Context(), campaignID, npcID, arcIDs)
	if err != nil {
		if errors.Is(err, assembly.ErrEntityNotFound) {
			respondError(w, http.StatusNotFound, codeEntityNotFound)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, bundle)
}

func (s *Server) handlePlayerContext(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	validated, errs := playerContextRequest.Validate(payload)
	if errs != nil {
		respondFieldErrors(w, errs)
		return
	}

	campaignID := validated["campaign_id"].(string)
	playerID := validated["player_id"].(string)
	arcIDs, _ := validated["arc_ids"].([]string)

	bundle, err := s.assembler.BuildPlayerContext(r.Context(), campaignID, playerID, arcIDs)
	if err != nil {
		if errors.Is(err, assembly.ErrEntityNotFound) {
			respondError(w, http.StatusNotFound, codeEntityNotFound)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, bundle)
}

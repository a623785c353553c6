package api

import (
	"encoding/json"
	"net/http"

	"chronicler/internal/schema"
)

// Error codes surfaced to callers.
const (
	codeMissingToken       = "missing_token"
	codeInvalidToken       = "invalid_token"
	codeNotFound           = "not_found"
	codeEntityNotFound     = "entity_not_found"
	codeStoreUnavailable   = "store_unavailable"
	codeCampaignIDRequired = "campaign_id_required"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes the {"error": code} envelope.
func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]string{"error": code})
}

// respondFieldErrors writes a 400 with per-field validation detail.
func respondFieldErrors(w http.ResponseWriter, errs schema.FieldErrors) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation_error",
		"fields": errs,
	})
}

func decodeBody(r *http.Request) (map[string]any, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

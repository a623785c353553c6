package api

import (
	"fmt"
	"net/http"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

// registerCrud wires the uniform record endpoints for one table: list and
// create on the collection, read, patch and delete on single records. Rows
// are always scoped to the authenticated caller.
func (s *Server) registerCrud(mux *http.ServeMux, path string, table *schema.Table) {
	mux.HandleFunc(fmt.Sprintf("GET /%s", path), func(w http.ResponseWriter, r *http.Request) {
		campaignID := r.URL.Query().Get("campaign_id")
		if campaignID == "" {
			respondError(w, http.StatusBadRequest, codeCampaignIDRequired)
			return
		}

		filter := store.Where("campaign_id", campaignID).Eq("user_id", userID(r.Context()))
		records, err := s.store.List(r.Context(), table.Name, filter, store.ListOptions{})
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		respondJSON(w, http.StatusOK, records)
	})

	mux.HandleFunc(fmt.Sprintf("POST /%s", path), func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeBody(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		payload["user_id"] = userID(r.Context())

		validated, errs := table.Validate(payload)
		if errs != nil {
			respondFieldErrors(w, errs)
			return
		}

		record, err := s.store.Insert(r.Context(), table.Name, validated)
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		respondJSON(w, http.StatusCreated, record)
	})

	mux.HandleFunc(fmt.Sprintf("GET /%s/{id}", path), func(w http.ResponseWriter, r *http.Request) {
		record, err := s.getOwned(r, table.Name, r.PathValue("id"))
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		if record == nil {
			respondError(w, http.StatusNotFound, codeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, record)
	})

	mux.HandleFunc(fmt.Sprintf("PATCH /%s/{id}", path), func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeBody(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		delete(payload, "user_id")

		validated, errs := table.ValidatePartial(payload)
		if errs != nil {
			respondFieldErrors(w, errs)
			return
		}

		id := r.PathValue("id")
		record, err := s.getOwned(r, table.Name, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		if record == nil {
			respondError(w, http.StatusNotFound, codeNotFound)
			return
		}

		updated, err := s.store.Update(r.Context(), table.Name, id, validated)
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		if updated == nil {
			respondError(w, http.StatusNotFound, codeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	})

	mux.HandleFunc(fmt.Sprintf("DELETE /%s/{id}", path), func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		record, err := s.getOwned(r, table.Name, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		if record == nil {
			respondError(w, http.StatusNotFound, codeNotFound)
			return
		}

		ok, err := s.store.Delete(r.Context(), table.Name, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, codeStoreUnavailable)
			return
		}
		if !ok {
			respondError(w, http.StatusNotFound, codeNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// getOwned resolves a record by id, restricted to the caller's rows.
func (s *Server) getOwned(r *http.Request, table, id string) (store.Record, error) {
	filter := store.Where("id", id).Eq("user_id", userID(r.Context()))
	return s.store.Get(r.Context(), table, filter)
}

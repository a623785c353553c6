// Package api exposes the campaign backend over HTTP: generic CRUD for the
// record tables, memory ingestion, and the context-assembly endpoints.
package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"chronicler/internal/assembly"
	"chronicler/internal/schema"
	"chronicler/internal/store"
)

type Server struct {
	store     store.Store
	assembler *assembly.Assembler
	jwtSecret string
	logger    zerolog.Logger
}

func NewServer(st store.Store, jwtSecret string, logger zerolog.Logger) *Server {
	return &Server{
		store:     st,
		assembler: assembly.New(st),
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Handler builds the full route table. Everything except /health requires a
// resolved caller identity.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	authed := http.NewServeMux()
	for path, table := range schema.CrudTables {
		s.registerCrud(authed, path, table)
	}
	authed.HandleFunc("POST /context/npc", s.handleNPCContext)
	authed.HandleFunc("POST /context/player", s.handlePlayerContext)
	authed.HandleFunc("POST /events/log", s.handleEventLog)
	authed.HandleFunc("POST /events/embeddings/ingest", s.handleMemoryIngest)
	authed.HandleFunc("GET /events/memories/search", s.handleMemorySearch)

	mux.Handle("/", requireAuth(s.jwtSecret, authed))

	return s.withLogging(withCORS(mux))
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

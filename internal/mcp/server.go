package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"chronicler/internal/assembly"
	"chronicler/internal/store"
)

// ContextBuilder assembles context bundles; satisfied by assembly.Assembler.
type ContextBuilder interface {
	BuildNPCContext(ctx context.Context, campaignID, npcID string, arcIDs []string) (*assembly.NPCContext, error)
	BuildPlayerContext(ctx context.Context, campaignID, playerID string, arcIDs []string) (*assembly.PlayerContext, error)
}

type Server struct {
	builder ContextBuilder
	db      store.Store
	mcp     *sdk.Server
}

func NewServer(builder ContextBuilder, db store.Store, version string) *Server {
	s := &Server{
		builder: builder,
		db:      db,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "chronicler",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}

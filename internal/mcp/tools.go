package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"chronicler/internal/assembly"
	"chronicler/internal/schema"
	"chronicler/internal/store"
)

type NPCContextInput struct {
	CampaignID string   `json:"campaign_id" jsonschema:"campaign id"`
	NPCID      string   `json:"npc_id" jsonschema:"npc id"`
	ArcIDs     []string `json:"arc_ids,omitempty" jsonschema:"restrict events to these arcs"`
}

type PlayerContextInput struct {
	CampaignID string   `json:"campaign_id" jsonschema:"campaign id"`
	PlayerID   string   `json:"player_id" jsonschema:"player id"`
	ArcIDs     []string `json:"arc_ids,omitempty" jsonschema:"restrict events and arcs to these ids"`
}

type SearchMemoriesInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign id"`
	Query      string `json:"query" jsonschema:"substring to search memory text for"`
	EntityType string `json:"entity_type,omitempty" jsonschema:"npc, player, or world"`
	EntityID   string `json:"entity_id,omitempty" jsonschema:"restrict to one entity"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum results"`
}

type ListRecordsInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign id"`
	Table      string `json:"table" jsonschema:"record table name"`
}

type NPCContextOutput struct {
	Context assembly.NPCContext `json:"context"`
}

type PlayerContextOutput struct {
	Context assembly.PlayerContext `json:"context"`
}

type SearchMemoriesOutput struct {
	Memories []store.Record `json:"memories"`
}

type ListRecordsOutput struct {
	Records []store.Record `json:"records"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "npc_context",
		Description: "Assemble the gated context bundle for an NPC",
	}, s.handleNPCContext)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "player_context",
		Description: "Assemble the gated context bundle for a player",
	}, s.handlePlayerContext)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_memories",
		Description: "Search memory text by substring",
	}, s.handleSearchMemories)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_records",
		Description: "List a campaign's records from one table",
	}, s.handleListRecords)
}

func (s *Server) handleNPCContext(ctx context.Context, req *sdk.CallToolRequest, input NPCContextInput) (*sdk.CallToolResult, NPCContextOutput, error) {
	if input.CampaignID == "" || input.NPCID == "" {
		return nil, NPCContextOutput{}, fmt.Errorf("campaign_id and npc_id are required")
	}
	bundle, err := s.builder.BuildNPCContext(ctx, input.CampaignID, input.NPCID, input.ArcIDs)
	if err != nil {
		return nil, NPCContextOutput{}, err
	}
	return nil, NPCContextOutput{Context: *bundle}, nil
}

func (s *Server) handlePlayerContext(ctx context.Context, req *sdk.CallToolRequest, input PlayerContextInput) (*sdk.CallToolResult, PlayerContextOutput, error) {
	if input.CampaignID == "" || input.PlayerID == "" {
		return nil, PlayerContextOutput{}, fmt.Errorf("campaign_id and player_id are required")
	}
	bundle, err := s.builder.BuildPlayerContext(ctx, input.CampaignID, input.PlayerID, input.ArcIDs)
	if err != nil {
		return nil, PlayerContextOutput{}, err
	}
	return nil, PlayerContextOutput{Context: *bundle}, nil
}

func (s *Server) handleSearchMemories(ctx context.Context, req *sdk.CallToolRequest, input SearchMemoriesInput) (*sdk.CallToolResult, SearchMemoriesOutput, error) {
	if input.CampaignID == "" || input.Query == "" {
		return nil, SearchMemoriesOutput{}, fmt.Errorf("campaign_id and query are required")
	}

	filter := store.Where("campaign_id", input.CampaignID)
	if input.EntityType != "" {
		filter = filter.Eq("entity_type", input.EntityType)
	}
	if input.EntityID != "" {
		filter = filter.Eq("entity_id", input.EntityID)
	}
	limit := input.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	records, err := s.db.SearchByPattern(ctx, schema.TableMemories, filter, "text", input.Query, limit)
	if err != nil {
		return nil, SearchMemoriesOutput{}, err
	}
	return nil, SearchMemoriesOutput{Memories: records}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *sdk.CallToolRequest, input ListRecordsInput) (*sdk.CallToolResult, ListRecordsOutput, error) {
	if input.CampaignID == "" || input.Table == "" {
		return nil, ListRecordsOutput{}, fmt.Errorf("campaign_id and table are required")
	}
	if _, ok := schema.ByName(input.Table); !ok {
		return nil, ListRecordsOutput{}, fmt.Errorf("unknown table: %s", input.Table)
	}

	records, err := s.db.List(ctx, input.Table, store.Where("campaign_id", input.CampaignID), store.ListOptions{})
	if err != nil {
		return nil, ListRecordsOutput{}, err
	}
	return nil, ListRecordsOutput{Records: records}, nil
}

// Package assembly builds the gated context bundles served to storytellers
// and AI game-master assistants. Everything here is a pure read: bundles are
// assembled fresh per request from the record store and never persisted.
package assembly

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"chronicler/internal/schema"
	"chronicler/internal/store"
)

// ErrEntityNotFound reports that the named NPC or player does not exist in
// the given campaign. It does not imply a store failure.
var ErrEntityNotFound = errors.New("entity not found")

// Assembler composes memories, relationships, arcs and current events into
// per-viewer context bundles.
type Assembler struct {
	store store.Store
}

func New(st store.Store) *Assembler {
	return &Assembler{store: st}
}

// BuildNPCContext assembles the bundle an NPC viewer may see: the NPC
// record, its visible memories (most recent first, capped), its relationship
// edges, the arc-scoped current events, and the voice projection.
//
// The sub-fetches are independent reads and run concurrently; any failure
// fails the whole bundle rather than returning a partial one, since an empty
// relationships list would be indistinguishable from "no relationships
// exist".
func (a *Assembler) BuildNPCContext(ctx context.Context, campaignID, npcID string, arcIDs []string) (*NPCContext, error) {
	npc, err := a.store.Get(ctx, schema.TableNPCs, store.Where("id", npcID).Eq("campaign_id", campaignID))
	if err != nil {
		return nil, fmt.Errorf("resolving npc: %w", err)
	}
	if npc == nil {
		return nil, ErrEntityNotFound
	}

	bundle := &NPCContext{NPC: npc, Voice: decodeVoice(npc)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		memories, err := Memories(gctx, a.store, campaignID, "npc", npcID, ViewerNPC, MemoryLimit)
		if err != nil {
			return err
		}
		bundle.Memories = memories
		return nil
	})
	g.Go(func() error {
		edges, err := Relationships(gctx, a.store, campaignID, npcID)
		if err != nil {
			return err
		}
		bundle.Relationships = edges
		return nil
	})
	g.Go(func() error {
		events, err := ScopedEvents(gctx, a.store, campaignID, arcIDs)
		if err != nil {
			return err
		}
		bundle.Events = events
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bundle, nil
}

// BuildPlayerContext assembles the bundle a player viewer may see: the
// player record, its visible memories, the explicitly requested arcs, and
// the arc-scoped current events.
func (a *Assembler) BuildPlayerContext(ctx context.Context, campaignID, playerID string, arcIDs []string) (*PlayerContext, error) {
	player, err := a.store.Get(ctx, schema.TablePlayers, store.Where("id", playerID).Eq("campaign_id", campaignID))
	if err != nil {
		return nil, fmt.Errorf("resolving player: %w", err)
	}
	if player == nil {
		return nil, ErrEntityNotFound
	}

	bundle := &PlayerContext{Player: player}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		memories, err := Memories(gctx, a.store, campaignID, "player", playerID, ViewerPlayer, MemoryLimit)
		if err != nil {
			return err
		}
		bundle.Memories = memories
		return nil
	})
	g.Go(func() error {
		arcs, err := ResolveArcs(gctx, a.store, campaignID, arcIDs)
		if err != nil {
			return err
		}
		bundle.Arcs = arcs
		return nil
	})
	g.Go(func() error {
		events, err := ScopedEvents(gctx, a.store, campaignID, arcIDs)
		if err != nil {
			return err
		}
		bundle.Events = events
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bundle, nil
}

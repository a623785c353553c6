package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"chronicler/internal/assembly"
	"chronicler/internal/config"
)

func queryContextCmd() *cobra.Command {
	var configPath string
	var campaignID string
	var npcID string
	var playerID string
	var arcIDs []string
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Assemble a context bundle for an NPC or player",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryContext(configPath, campaignID, npcID, playerID, arcIDs)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "chronicler.yaml", "Path to the project config")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign id")
	cmd.Flags().StringVar(&npcID, "npc", "", "NPC id")
	cmd.Flags().StringVar(&playerID, "player", "", "Player id")
	cmd.Flags().StringSliceVar(&arcIDs, "arc", nil, "Arc ids to scope events to")
	cmd.MarkFlagRequired("campaign")
	return cmd
}

func runQueryContext(configPath, campaignID, npcID, playerID string, arcIDs []string) error {
	ctx := context.Background()

	if (npcID == "") == (playerID == "") {
		return fmt.Errorf("exactly one of --npc or --player is required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	assembler := assembly.New(db)
	if npcID != "" {
		bundle, err := assembler.BuildNPCContext(ctx, campaignID, npcID, arcIDs)
		if err != nil {
			return err
		}
		return printJSON(bundle)
	}

	bundle, err := assembler.BuildPlayerContext(ctx, campaignID, playerID, arcIDs)
	if err != nil {
		return err
	}
	return printJSON(bundle)
}

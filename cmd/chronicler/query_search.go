package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chronicler/internal/config"
	"chronicler/internal/schema"
	"chronicler/internal/store"
)

func querySearchCmd() *cobra.Command {
	var configPath string
	var campaignID string
	var entityType string
	var entityID string
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memory text by substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuerySearch(configPath, campaignID, entityType, entityID, args[0], limit)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "chronicler.yaml", "Path to the project config")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign id")
	cmd.Flags().StringVar(&entityType, "type", "", "Entity type to filter (npc, player, world)")
	cmd.Flags().StringVar(&entityID, "entity", "", "Entity id to filter")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum results")
	cmd.MarkFlagRequired("campaign")
	return cmd
}

func runQuerySearch(configPath, campaignID, entityType, entityID, query string, limit int) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	filter := store.Where("campaign_id", campaignID)
	if entityType != "" {
		filter = filter.Eq("entity_type", entityType)
	}
	if entityID != "" {
		filter = filter.Eq("entity_id", entityID)
	}

	records, err := db.SearchByPattern(ctx, schema.TableMemories, filter, "text", query, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No memories found.")
		return nil
	}

	return printJSON(records)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chronicler/internal/config"
	"chronicler/internal/schema"
	"chronicler/internal/store"
)

func queryListCmd() *cobra.Command {
	var configPath string
	var campaignID string
	cmd := &cobra.Command{
		Use:   "list <table>",
		Short: "List a campaign's records from one table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryList(configPath, args[0], campaignID)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "chronicler.yaml", "Path to the project config")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign id to filter")
	cmd.MarkFlagRequired("campaign")
	return cmd
}

func runQueryList(configPath, table, campaignID string) error {
	ctx := context.Background()

	if _, ok := schema.ByName(table); !ok {
		return fmt.Errorf("unknown table: %s", table)
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

	records, err := db.List(ctx, table, store.Where("campaign_id", campaignID), store.ListOptions{})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No records found.")
		return nil
	}

	return printJSON(records)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chronicler/internal/config"
)

func initCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database schema if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "chronicler.yaml", "Path to the project config")
	return cmd
}

func runInit(configPath string) error {
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

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Schema is up to date.")
	return nil
}

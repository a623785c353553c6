package main

import (
	"context"

	"github.com/spf13/cobra"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"chronicler/internal/assembly"
	"chronicler/internal/config"
	"chronicler/internal/mcp"
)

func mcpCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "chronicler.yaml", "Path to the project config")
	return cmd
}

func runMCP(configPath string) error {
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

	server := mcp.NewServer(assembly.New(db), db, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}

package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Inspect campaign records from the CLI",
	}
	cmd.AddCommand(queryListCmd())
	cmd.AddCommand(queryContextCmd())
	cmd.AddCommand(querySearchCmd())
	return cmd
}

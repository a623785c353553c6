package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chronicler version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/davnotes/pkg/tools"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved backend and connection state as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(ctx)

		// A login check populates the counters and surfaces credential problems.
		_, _ = svc.CheckConnection(ctx)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tools.Snapshot(svc)); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

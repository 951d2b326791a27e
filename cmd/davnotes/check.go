package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the WebDAV login works",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).CheckConnection(ctx)
		if err != nil {
			fatal("WebDAV login failed", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the /Notes folder if it does not exist",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).EnsureRoot(ctx)
		if err != nil {
			fatal("Failed to prepare notes folder", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
}

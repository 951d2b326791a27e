package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Create, rename or delete categories",
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a category (no-op if it exists)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).CreateCategory(ctx, args[0])
		if err != nil {
			fatal("Failed to create category", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).RenameCategory(ctx, args[0], args[1])
		if err != nil {
			fatal("Failed to rename category", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a category and all of its notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).DeleteCategory(ctx, args[0])
		if err != nil {
			fatal("Failed to delete category", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	categoryCmd.AddCommand(categoryCreateCmd, categoryRenameCmd, categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}

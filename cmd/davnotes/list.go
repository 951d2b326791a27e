package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List notes",
	Long:  `List the notes of a category, or the uncategorized notes directly under /Notes when no category is given.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(ctx)

		var names []string
		var err error
		if len(args) == 1 {
			names, err = svc.ListNotes(ctx, args[0])
		} else {
			names, err = svc.ListUncategorized(ctx)
		}
		if err != nil {
			fatal("Error listing notes", err)
		}
		printNames(cmd.OutOrStdout(), names)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		names, err := openService(ctx).ListCategories(ctx)
		if err != nil {
			fatal("Error listing categories", err)
		}
		printNames(cmd.OutOrStdout(), names)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Find notes by glob, e.g. '**/todo*.md'",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		names, err := openService(ctx).SearchNotes(ctx, args[0])
		if err != nil {
			fatal("Error searching notes", err)
		}
		printNames(cmd.OutOrStdout(), names)
	},
}

func printNames(w io.Writer, names []string) {
	if listJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(names); err != nil {
			fatal("Error encoding JSON", err)
		}
		return
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func init() {
	for _, c := range []*cobra.Command{listCmd, categoriesCmd, searchCmd} {
		c.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
		rootCmd.AddCommand(c)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteCategory string
	noteContent  string
	noteFile     string
)

var readCmd = &cobra.Command{
	Use:   "read <filename>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		content, err := openService(ctx).ReadNote(ctx, args[0], noteCategory)
		if err != nil {
			fatal("Error reading note", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <filename>",
	Short: "Create a note",
	Long:  `Create a note from --content or --file ("-" reads stdin). The category folder is created if needed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readContent(noteContent, noteFile)
		if err != nil {
			fatal("Failed to read content", err)
		}
		ctx := context.Background()
		msg, err := openService(ctx).CreateNote(ctx, args[0], content, noteCategory)
		if err != nil {
			fatal("Failed to create note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <filename>",
	Short: "Overwrite a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := readContent(noteContent, noteFile)
		if err != nil {
			fatal("Failed to read content", err)
		}
		ctx := context.Background()
		msg, err := openService(ctx).EditNote(ctx, args[0], content, noteCategory)
		if err != nil {
			fatal("Failed to update note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).DeleteNote(ctx, args[0], noteCategory)
		if err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <filename> <new-filename>",
	Short: "Rename a note within its category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		msg, err := openService(ctx).RenameNote(ctx, args[0], args[1], noteCategory)
		if err != nil {
			fatal("Failed to rename note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	for _, c := range []*cobra.Command{readCmd, writeCmd, editCmd, deleteCmd, renameCmd} {
		c.Flags().StringVarP(&noteCategory, "category", "c", "", "Category folder (default: /Notes root)")
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{writeCmd, editCmd} {
		c.Flags().StringVar(&noteContent, "content", "", "Note content")
		c.Flags().StringVarP(&noteFile, "file", "f", "", "Read content from a file, or - for stdin")
		c.MarkFlagsMutuallyExclusive("content", "file")
	}
}

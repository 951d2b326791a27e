package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/davnotes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of davnotes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "davnotes version %s\n", strings.TrimSpace(davnotes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

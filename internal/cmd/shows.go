package cmd

import (
	"github.com/Digital-Shane/title-group/internal/resolve"
	"github.com/spf13/cobra"
)

var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "Group episode files in the current directory",
	Long: `Group the episode files below the current directory into logical
episodes.

Files sharing an episode base key ("Show S01E01" with and without a
version suffix) collapse into one entry per episode with a primary file
and its alternate versions; ungroupable files pass through unchanged.`,
	RunE: runShowsCommand,
}

func runShowsCommand(cmd *cobra.Command, args []string) error {
	return RunGroupCommand(CommandConfig{
		CommandName: "shows",
		Kind:        resolve.KindTVShow,
		MaxDepth:    3,
		IncludeDirs: true,
	})
}

func init() {
	rootCmd.AddCommand(showsCmd)
}

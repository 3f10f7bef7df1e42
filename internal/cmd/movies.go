package cmd

import (
	"github.com/Digital-Shane/title-group/internal/resolve"
	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Group movie files in the current directory",
	Long: `Group the movie files below the current directory into logical titles.

Multi-part discs collapse into one entry, bonus content is listed
separately, and with --multi-version different encodes of the same movie
collapse into a primary file plus alternates.`,
	RunE: runMoviesCommand,
}

func runMoviesCommand(cmd *cobra.Command, args []string) error {
	return RunGroupCommand(CommandConfig{
		CommandName: "movies",
		Kind:        resolve.KindMovie,
		MaxDepth:    2,
		IncludeDirs: true,
	})
}

func init() {
	rootCmd.AddCommand(moviesCmd)
}

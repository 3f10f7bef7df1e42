package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "title-group",
	Short: "Group media files into logical titles",
	Long: `title-group resolves a directory of video files into logical titles:
multi-part stacks, standalone movies or episodes, bonus content, and
alternate versions (different resolutions or encodes) of the same title
collapsed into one entry with a primary file and its alternates.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	multiVersion bool
	instant      bool
	jsonOut      bool
	maxDepth     int
	logLevel     string
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().BoolVar(&multiVersion, "multi-version", true, "Collapse alternate versions of the same title")
	rootCmd.PersistentFlags().BoolVarP(&instant, "instant", "i", false, "Print the grouping immediately without interactive preview")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit the grouping as JSON")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "Directory scan depth (0 uses the command default)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (enables logging for the run)")
}

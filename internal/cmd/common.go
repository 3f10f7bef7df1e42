package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/title-group/internal/config"
	"github.com/Digital-Shane/title-group/internal/log"
	"github.com/Digital-Shane/title-group/internal/naming"
	"github.com/Digital-Shane/title-group/internal/resolve"
	"github.com/Digital-Shane/title-group/internal/tui"
	"github.com/Digital-Shane/treeview"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandConfig defines the configuration for a grouping command
type CommandConfig struct {
	CommandName string
	Kind        resolve.MediaKind
	MaxDepth    int
	IncludeDirs bool
}

// RunGroupCommand executes the common logic for all grouping commands:
// load config, scan, resolve, and render or preview the grouping.
func RunGroupCommand(cmdConfig CommandConfig) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	patterns, err := cfg.Compile()
	if err != nil {
		return err
	}

	logger := diagnosticLogger(cfg, logLevel)

	depth := scanDepth(maxDepth, cfg.MaxDepth, cmdConfig.MaxDepth)
	records, err := indexFiles(".", depth, cmdConfig.IncludeDirs)
	if err != nil {
		return err
	}

	enableVersions := cfg.MultiVersion
	if rootCmd.PersistentFlags().Changed("multi-version") {
		enableVersions = multiVersion
	}

	root, err := filepath.Abs(".")
	if err != nil {
		return err
	}

	resolver := resolve.NewResolver(patterns)
	entries, err := resolver.Resolve(records, resolve.Options{
		MultiVersion: enableVersions,
		Kind:         cmdConfig.Kind,
		RootHint:     root,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	switch {
	case jsonOut:
		return writeJSON(os.Stdout, entries)
	case instant:
		fmt.Print(tui.RenderEntries(entries))
		return nil
	default:
		p := tea.NewProgram(tui.NewPreviewModel(cmdConfig.CommandName, entries), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
}

// scanDepth resolves the indexing depth: an explicit --max-depth flag wins,
// then a depth set in the config file, then the command's own default.
func scanDepth(flagDepth, configDepth, commandDepth int) int {
	if flagDepth > 0 {
		return flagDepth
	}
	if configDepth > 0 {
		return configDepth
	}
	return commandDepth
}

// diagnosticLogger builds the resolver's diagnostic sink. An explicit
// --log-level flag enables diagnostics for the run even when the config
// file disables logging.
func diagnosticLogger(cfg *config.Config, flagLevel string) *slog.Logger {
	if !cfg.EnableLogging && flagLevel == "" {
		return log.NewNop()
	}
	level := cfg.LogLevel
	if flagLevel != "" {
		level = flagLevel
	}
	return log.New(log.Options{Level: level})
}

// indexFiles scans path into flat file records for the resolver. With
// includeDirs set, a directory named like one disc part ("Movie disc 1")
// becomes a directory record and its contents are skipped, so multi-part
// disc folders can group as directory stacks.
func indexFiles(path string, depth int, includeDirs bool) ([]*resolve.FileRecord, error) {
	t, err := treeview.NewTreeFromFileSystem(context.Background(), path, false,
		treeview.WithMaxDepth[treeview.FileInfo](depth),
		treeview.WithFilterFunc(func(fi treeview.FileInfo) bool {
			if len(fi.Name()) > 0 && fi.Name()[0] == '.' {
				return false
			}
			return fi.IsDir() || naming.IsVideo(fi.Name())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", path, err)
	}

	var records []*resolve.FileRecord
	for ni := range t.BreadthFirst(context.Background()) {
		data := ni.Node.Data()
		if data.Path == path {
			continue
		}
		if data.IsDir() {
			if includeDirs && isPartDirectory(data.Name()) {
				records = append(records, &resolve.FileRecord{
					Path:        data.Path,
					IsDirectory: true,
					DisplayName: data.Name(),
				})
			}
			continue
		}
		if !naming.IsVideo(data.Name()) {
			continue
		}
		if includeDirs && isPartDirectory(filepath.Base(filepath.Dir(data.Path))) {
			continue
		}
		records = append(records, &resolve.FileRecord{
			Path:        data.Path,
			DisplayName: data.Name(),
		})
	}
	return records, nil
}

// isPartDirectory reports whether name reads as one disc part of a larger
// title.
func isPartDirectory(name string) bool {
	_, _, _, ok := naming.SplitStackPart(name)
	return ok
}

// entryJSON is the stable JSON shape of one logical entry.
type entryJSON struct {
	Name              string   `json:"name"`
	Year              int      `json:"year,omitempty"`
	Files             []string `json:"files"`
	AlternateVersions []string `json:"alternate_versions,omitempty"`
	ExtraKind         string   `json:"extra_kind,omitempty"`
}

func writeJSON(w io.Writer, entries []*resolve.LogicalEntry) error {
	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		je := entryJSON{
			Name:      e.Name,
			Year:      e.Year,
			ExtraKind: e.ExtraKind.String(),
		}
		for _, f := range e.Files {
			je.Files = append(je.Files, f.Path)
		}
		for _, f := range e.AlternateVersions {
			je.AlternateVersions = append(je.AlternateVersions, f.Path)
		}
		out = append(out, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package resolve

import (
	"log/slog"
	"strings"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// episodeGroup accumulates the files sharing one episode base key.
type episodeGroup struct {
	key   string // lower-cased bucket key
	name  string
	year  int
	files []*FileRecord
}

// groupEpisodeVersions collapses entries sharing an episode base key into
// one primary-plus-alternates entry per key. Unlike movie grouping there is
// no all-or-nothing gate: an entry with no version suffix simply forms a
// singleton group under its own name.
func groupEpisodeVersions(entries []*LogicalEntry, patterns *naming.Patterns, logger *slog.Logger) []*LogicalEntry {
	if len(entries) < 2 {
		return entries
	}

	groups := make(map[string]*episodeGroup)
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		base, tag, tagged := naming.SplitVersionSuffix(e.primaryFile().BaseName())
		key := strings.ToLower(base)

		g, ok := groups[key]
		if !ok {
			g = &episodeGroup{key: key, name: e.Name, year: e.Year}
			groups[key] = g
			order = append(order, key)
		}
		for _, f := range e.Files {
			if tagged {
				// Carry the tag alongside the file; DisplayName stays
				// untouched so reprocessing is order-independent.
				tf := *f
				tf.VersionTag = tag
				g.files = append(g.files, &tf)
				continue
			}
			g.files = append(g.files, f)
		}
	}

	out := make([]*LogicalEntry, 0, len(order))
	for _, key := range order {
		out = append(out, collapseEpisodeGroup(groups[key], patterns, logger))
	}
	return out
}

// collapseEpisodeGroup picks a primary for one base key and demotes the
// rest to alternate versions. Groups never fail; a key with a single file
// passes through as-is.
func collapseEpisodeGroup(g *episodeGroup, patterns *naming.Patterns, logger *slog.Logger) *LogicalEntry {
	if len(g.files) > 2 && logger != nil {
		logger.Warn("episode has more than two versions, the naming scheme may be unsupported",
			"base_key", g.key,
			"file_count", len(g.files),
		)
	}

	orderVersions(g.files,
		func(f *FileRecord) string { return f.sortName() },
		func(f *FileRecord) string {
			cleaned, _ := patterns.TryClean(f.sortName())
			return cleaned
		},
	)

	primary := g.files[0]
	for _, f := range g.files {
		if strings.EqualFold(f.BaseName(), g.key) {
			primary = f
			break
		}
	}

	entry := &LogicalEntry{
		Name:  g.name,
		Year:  g.year,
		Files: []*FileRecord{primary},
	}
	for _, f := range g.files {
		if f != primary {
			entry.AlternateVersions = append(entry.AlternateVersions, f)
		}
	}
	return entry
}

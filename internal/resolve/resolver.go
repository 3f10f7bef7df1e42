package resolve

import (
	"fmt"
	"log/slog"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// Options configures one resolution call.
type Options struct {
	// MultiVersion enables collapsing alternate encodes of one title into
	// a single primary-plus-alternates entry.
	MultiVersion bool

	// Kind selects the version-grouping policy. TV shows group per
	// episode; every other known kind uses the movie policy.
	Kind MediaKind

	// RootHint optionally names the library root; its folder name never
	// contributes a title during metadata refinement.
	RootHint string

	// Logger receives non-fatal diagnostics, such as an episode carrying
	// more than two versions. Nil disables diagnostics.
	Logger *slog.Logger
}

// Resolver resolves flat file lists into logical entries. A Resolver is
// immutable after construction and safe for concurrent use as long as each
// call receives its own records.
type Resolver struct {
	patterns *naming.Patterns
	metadata *MetadataResolver
}

// NewResolver builds a resolver over the given pattern configuration.
func NewResolver(patterns *naming.Patterns) *Resolver {
	return &Resolver{
		patterns: patterns,
		metadata: NewMetadataResolver(patterns),
	}
}

// Resolve partitions files into stacks, standalone titles, and extras,
// builds one logical entry per title, optionally collapses alternate
// versions, and re-attaches extras at the end. Every input record surfaces
// in exactly one output entry.
//
// An unknown media kind with multi-version grouping enabled is a caller
// configuration error, not something to guess a policy for.
func (r *Resolver) Resolve(files []*FileRecord, opts Options) ([]*LogicalEntry, error) {
	if opts.MultiVersion && !opts.Kind.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMediaKind, int(opts.Kind))
	}

	p := partitionFiles(files)
	entries := groupTitles(p, files, r.metadata, opts.RootHint)

	if opts.MultiVersion {
		if opts.Kind == KindTVShow {
			entries = groupEpisodeVersions(entries, r.patterns, opts.Logger)
		} else {
			entries = groupMovieVersions(entries, r.patterns)
		}
	}

	for _, extra := range p.extras {
		entries = append(entries, &LogicalEntry{
			Name:      extra.BaseName(),
			Year:      extra.Year,
			Files:     []*FileRecord{extra},
			ExtraKind: extra.ExtraKind,
		})
	}

	return entries, nil
}

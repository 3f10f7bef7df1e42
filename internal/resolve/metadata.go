package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/Digital-Shane/title-group/internal/naming"
	"github.com/patrickmn/go-cache"
)

// MetadataResolver refines raw file records with a parsed title, year, and
// extra kind. Resolutions are memoized per path; library scans resolve the
// same names repeatedly.
type MetadataResolver struct {
	patterns *naming.Patterns
	cache    *cache.Cache
}

// NewMetadataResolver creates a resolver over the given clean patterns.
func NewMetadataResolver(patterns *naming.Patterns) *MetadataResolver {
	return &MetadataResolver{
		patterns: patterns,
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

// parsedName holds the facts derivable from a base name alone; only these
// are memoized, caller-supplied record fields merge in fresh on every call.
type parsedName struct {
	title string
	year  int
	extra ExtraKind
}

// Resolve returns a refined copy of f, or nil when f is nil. The original
// record is never modified. isDirectoryStack marks records that are part
// of a directory stack; parseName disables title parsing for stack members
// whose display name comes from the stack itself. rootHint, when set,
// names the library root; its folder name never contributes a title.
func (r *MetadataResolver) Resolve(f *FileRecord, isDirectoryStack bool, parseName bool, rootHint string) *FileRecord {
	if f == nil {
		return nil
	}

	base := f.BaseName()
	p := r.parse(base, parseName)

	refined := *f
	if refined.ExtraKind == ExtraNone {
		refined.ExtraKind = p.extra
	}
	if refined.Year == 0 {
		refined.Year = p.year
	}
	if parseName && !isRootFolder(f, rootHint) {
		refined.DisplayName = p.title
	} else if refined.DisplayName == "" {
		refined.DisplayName = base
	}
	return &refined
}

func (r *MetadataResolver) parse(base string, parseName bool) parsedName {
	key := fmt.Sprintf("%s|%t", base, parseName)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(parsedName)
	}

	p := parsedName{
		year:  naming.ExtractYear(base),
		extra: extraKindFromToken(naming.ExtraToken(base)),
	}
	if parseName {
		p.title = cleanTitle(base, r.patterns)
	}

	r.cache.Set(key, p, cache.DefaultExpiration)
	return p
}

// isRootFolder reports whether f is the library root itself, whose name
// should stay as-is rather than be parsed into a title.
func isRootFolder(f *FileRecord, rootHint string) bool {
	return rootHint != "" && f.IsDirectory && f.Path == rootHint
}

// cleanTitle strips release tags and normalizes separators into a display
// title.
func cleanTitle(base string, patterns *naming.Patterns) string {
	title, _ := patterns.TryClean(base)
	title = strings.NewReplacer(".", " ", "_", " ").Replace(title)
	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, "-_ ")
	if title == "" {
		return base
	}
	return title
}

func extraKindFromToken(token string) ExtraKind {
	switch token {
	case "trailer":
		return ExtraTrailer
	case "sample":
		return ExtraSample
	case "behindthescenes":
		return ExtraBehindTheScenes
	case "deleted", "deletedscene":
		return ExtraDeletedScene
	case "featurette":
		return ExtraFeaturette
	case "interview":
		return ExtraInterview
	case "scene":
		return ExtraScene
	case "short":
		return ExtraShort
	default:
		return ExtraNone
	}
}

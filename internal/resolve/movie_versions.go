package resolve

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// groupMovieVersions collapses a folder's entries into one primary entry
// with alternate versions. The whole list is one candidate: either every
// entry passes the eligibility gate and the list merges, or the input is
// returned untouched. Movies never merge partially.
func groupMovieVersions(entries []*LogicalEntry, patterns *naming.Patterns) []*LogicalEntry {
	// Fewer than two entries means nothing to collapse; an already-merged
	// group passes through untouched, which keeps grouping idempotent.
	if len(entries) < 2 {
		return entries
	}

	folderName := filepath.Base(filepath.Dir(entries[0].primaryFile().Path))
	if !eligibleForMerge(entries, folderName, patterns) {
		return entries
	}
	return []*LogicalEntry{mergeVersions(entries, folderName)}
}

// eligibleForMerge is the pure gate half of movie grouping: folder name
// usable, one shared year, and every non-extra file named as a version of
// the folder's title.
func eligibleForMerge(entries []*LogicalEntry, folderName string, patterns *naming.Patterns) bool {
	if utf8.RuneCountInString(folderName) <= 1 {
		return false
	}

	year := entries[0].Year
	for _, e := range entries {
		if e.Year != year {
			return false
		}
		// Stack membership and version-alternation are mutually exclusive:
		// a merged group must end up with a single primary file.
		if len(e.Files) > 1 {
			return false
		}
	}

	for _, e := range entries {
		if e.ExtraKind != ExtraNone {
			continue
		}
		if !eligibleVersionName(e.primaryFile().BaseName(), folderName, patterns) {
			return false
		}
	}
	return true
}

// eligibleVersionName reports whether baseName reads as "<folder><suffix>"
// where the cleaned suffix is empty, dash-led, or a bracketed version tag.
func eligibleVersionName(baseName, folderName string, patterns *naming.Patterns) bool {
	if len(baseName) < len(folderName) ||
		!strings.EqualFold(baseName[:len(folderName)], folderName) {
		return false
	}
	rest := strings.TrimSpace(baseName[len(folderName):])
	if rest == "" {
		return true
	}
	cleaned, _ := patterns.TryClean(rest)
	return cleaned == "" ||
		strings.HasPrefix(cleaned, "-") ||
		naming.HasStartVersionTag(cleaned)
}

// mergeVersions is the mechanical half: order the entries, pick the
// primary, and fold the rest into its alternate versions.
func mergeVersions(entries []*LogicalEntry, folderName string) *LogicalEntry {
	ordered := make([]*LogicalEntry, len(entries))
	copy(ordered, entries)
	if len(ordered) > 1 {
		orderVersions(ordered,
			func(e *LogicalEntry) string { return e.primaryFile().BaseName() },
			func(e *LogicalEntry) string {
				return naming.StripBracketTags(e.primaryFile().BaseName())
			},
		)
	}

	primary := ordered[0]
	for _, e := range ordered {
		if e.primaryFile().BaseName() == folderName {
			primary = e
			break
		}
	}

	merged := &LogicalEntry{
		Name:      folderName,
		Year:      primary.Year,
		Files:     primary.Files,
		ExtraKind: primary.ExtraKind,
	}
	for _, e := range ordered {
		if e == primary {
			continue
		}
		merged.AlternateVersions = append(merged.AlternateVersions, e.Files...)
	}
	return merged
}

package resolve

import (
	"slices"

	"github.com/Digital-Shane/title-group/internal/naming"
)

// orderVersions sorts items in place for version ranking. Items whose
// resolution key carries a marker like 1080p come first, highest resolution
// first (natural order on the matched token, name as tie-break); the rest
// follow in natural name order. name supplies the ordering name, resName
// the string searched for the resolution marker; the two differ for
// episodes, where the marker is matched against the cleaned name.
func orderVersions[T any](items []T, name, resName func(T) string) {
	type ranked struct {
		item       T
		name       string
		resolution string
	}

	marked := make([]ranked, 0, len(items))
	unmarked := make([]ranked, 0, len(items))
	for _, it := range items {
		r := ranked{item: it, name: name(it)}
		r.resolution = naming.ResolutionToken(resName(it))
		if r.resolution != "" {
			marked = append(marked, r)
		} else {
			unmarked = append(unmarked, r)
		}
	}

	slices.SortStableFunc(marked, func(a, b ranked) int {
		if c := naming.NaturalCompare(b.resolution, a.resolution); c != 0 {
			return c
		}
		return naming.NaturalCompare(a.name, b.name)
	})
	slices.SortStableFunc(unmarked, func(a, b ranked) int {
		return naming.NaturalCompare(a.name, b.name)
	})

	i := 0
	for _, r := range marked {
		items[i] = r.item
		i++
	}
	for _, r := range unmarked {
		items[i] = r.item
		i++
	}
}

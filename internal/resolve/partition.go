package resolve

import (
	"github.com/Digital-Shane/title-group/internal/stack"
)

// partition splits the input into detected stacks, standalone records, and
// extras awaiting re-attachment. Extras never feed stack detection: a stack
// is strictly consecutive parts of primary content, and a trailer named
// "Movie-trailer" must not be absorbed as a part of "Movie".
type partition struct {
	stacks     []*stack.Stack
	standalone []*FileRecord
	extras     []*FileRecord
}

func partitionFiles(files []*FileRecord) partition {
	primaries := make([]*FileRecord, 0, len(files))
	refs := make([]stack.FileRef, 0, len(files))
	var extras []*FileRecord

	for _, f := range files {
		if f.ExtraKind != ExtraNone {
			extras = append(extras, f)
			continue
		}
		primaries = append(primaries, f)
		refs = append(refs, stack.FileRef{Path: f.Path, IsDirectory: f.IsDirectory})
	}

	stacks := stack.Detect(refs)

	var standalone []*FileRecord
	for _, f := range primaries {
		claimed := false
		for _, s := range stacks {
			if s.ContainsFile(f.Path, f.IsDirectory) {
				claimed = true
				break
			}
		}
		if !claimed {
			standalone = append(standalone, f)
		}
	}

	return partition{stacks: stacks, standalone: standalone, extras: extras}
}

// recordForRef maps a stack member back to its input record.
func recordForRef(files []*FileRecord, ref stack.FileRef) *FileRecord {
	for _, f := range files {
		if f.Path == ref.Path && f.IsDirectory == ref.IsDirectory {
			return f
		}
	}
	return nil
}

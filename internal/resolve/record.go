// Package resolve turns a flat list of discovered video files into logical
// entries: multi-part stacks, standalone titles, bonus content, and (when
// multi-version grouping is enabled) primary-plus-alternates groups of
// the same movie or episode.
package resolve

import (
	"errors"
	"path/filepath"
)

// ExtraKind classifies bonus content. ExtraNone marks primary content.
type ExtraKind int

const (
	ExtraNone ExtraKind = iota
	ExtraTrailer
	ExtraSample
	ExtraBehindTheScenes
	ExtraDeletedScene
	ExtraFeaturette
	ExtraInterview
	ExtraScene
	ExtraShort
)

// String returns the filename token for the extra kind.
func (k ExtraKind) String() string {
	switch k {
	case ExtraTrailer:
		return "trailer"
	case ExtraSample:
		return "sample"
	case ExtraBehindTheScenes:
		return "behindthescenes"
	case ExtraDeletedScene:
		return "deletedscene"
	case ExtraFeaturette:
		return "featurette"
	case ExtraInterview:
		return "interview"
	case ExtraScene:
		return "scene"
	case ExtraShort:
		return "short"
	default:
		return ""
	}
}

// MediaKind selects the version-grouping policy. Every known kind except
// KindTVShow takes the movie path.
type MediaKind int

const (
	KindMovie MediaKind = iota
	KindMusicVideo
	KindTVShow
)

// String returns a human-readable kind name.
func (k MediaKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindMusicVideo:
		return "music video"
	case KindTVShow:
		return "tv show"
	default:
		return "unknown"
	}
}

func (k MediaKind) known() bool {
	switch k {
	case KindMovie, KindMusicVideo, KindTVShow:
		return true
	}
	return false
}

// ErrUnknownMediaKind is returned when multi-version grouping is requested
// for a media kind this resolver has no policy for.
var ErrUnknownMediaKind = errors.New("resolve: unknown media kind")

// FileRecord is one physical file or directory supplied by the caller.
// Records are never mutated by the resolver; VersionTag is a derived field
// populated during episode grouping on the refined copies it owns.
type FileRecord struct {
	Path        string
	IsDirectory bool
	DisplayName string
	Year        int // 0 when unknown
	ExtraKind   ExtraKind

	// VersionTag carries the captured version suffix ("HEVC", "1080p")
	// alongside the untouched DisplayName.
	VersionTag string
}

// BaseName returns the record's file name without directory or extension.
func (f *FileRecord) BaseName() string {
	name := filepath.Base(f.Path)
	if f.IsDirectory {
		return name
	}
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}

// sortName is the name version ordering sees: the version tag when one was
// captured, the raw base name otherwise.
func (f *FileRecord) sortName() string {
	if f.VersionTag != "" {
		return f.VersionTag
	}
	return f.BaseName()
}

// LogicalEntry is one logical title. Files holds more than one record only
// for multi-part stacks; after version grouping a group entry holds exactly
// one primary file plus zero or more alternates.
type LogicalEntry struct {
	Name              string
	Year              int
	Files             []*FileRecord
	AlternateVersions []*FileRecord
	ExtraKind         ExtraKind
}

// primaryFile returns the entry's representative file.
func (e *LogicalEntry) primaryFile() *FileRecord {
	return e.Files[0]
}

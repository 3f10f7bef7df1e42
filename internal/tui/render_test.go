package tui

import (
	"strings"
	"testing"

	"github.com/Digital-Shane/title-group/internal/resolve"
)

func TestRenderEntriesEmpty(t *testing.T) {
	if got := RenderEntries(nil); got != "" {
		t.Errorf("RenderEntries(nil) = %q, want empty", got)
	}
}

func TestRenderEntriesHeader(t *testing.T) {
	entries := []*resolve.LogicalEntry{
		{
			Name: "Movie",
			Year: 2020,
			Files: []*resolve.FileRecord{
				{Path: "/m/Movie (2020)/Movie (2020).mkv"},
			},
		},
	}

	got := RenderEntries(entries)
	if !strings.Contains(got, "Movie") {
		t.Errorf("RenderEntries() = %q, want entry name", got)
	}
	if !strings.Contains(got, "(2020)") {
		t.Errorf("RenderEntries() = %q, want year badge", got)
	}
	if !strings.Contains(got, "/m/Movie (2020)/Movie (2020).mkv") {
		t.Errorf("RenderEntries() = %q, want file path", got)
	}
}

func TestRenderEntriesAlternates(t *testing.T) {
	entries := []*resolve.LogicalEntry{
		{
			Name: "Show S01E01",
			Files: []*resolve.FileRecord{
				{Path: "/tv/Show S01E01.mkv"},
			},
			AlternateVersions: []*resolve.FileRecord{
				{Path: "/tv/Show S01E01 - [1080p].mkv", VersionTag: "1080p"},
			},
		},
	}

	got := RenderEntries(entries)
	if !strings.Contains(got, "↳") {
		t.Errorf("RenderEntries() = %q, want alternate marker", got)
	}
	if !strings.Contains(got, "(1080p)") {
		t.Errorf("RenderEntries() = %q, want version tag", got)
	}
}

func TestRenderEntriesExtraBadge(t *testing.T) {
	entries := []*resolve.LogicalEntry{
		{
			Name:      "Movie-trailer",
			Files:     []*resolve.FileRecord{{Path: "/m/Movie-trailer.mkv"}},
			ExtraKind: resolve.ExtraTrailer,
		},
	}

	if got := RenderEntries(entries); !strings.Contains(got, "[trailer]") {
		t.Errorf("RenderEntries() = %q, want extra badge", got)
	}
}

func TestTruncatePath(t *testing.T) {
	short := "/m/Movie.mkv"
	if got := truncatePath(short); got != short {
		t.Errorf("truncatePath(%q) = %q, want unchanged", short, got)
	}

	long := "/media/library/" + strings.Repeat("a", 100) + ".mkv"
	got := truncatePath(long)
	if len([]rune(got)) > maxPathWidth {
		t.Errorf("truncatePath() width = %d, want <= %d", len([]rune(got)), maxPathWidth)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncatePath() = %q, want ellipsis suffix", got)
	}
}

package resolve

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func episodeEntry(path string) *LogicalEntry {
	f := &FileRecord{Path: path}
	return &LogicalEntry{Name: f.BaseName(), Files: []*FileRecord{f}}
}

func TestGroupEpisodeVersionsSingleEntryUnchanged(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{episodeEntry("/tv/Show S01E01.mkv")}
	got := groupEpisodeVersions(entries, testPatterns(t), nil)
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("single entry changed (-want +got):\n%s", diff)
	}
}

func TestGroupEpisodeVersionsCollapsesByBaseKey(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{
		episodeEntry("/tv/Show S01E01.mkv"),
		episodeEntry("/tv/Show S01E01 - [1080p].mkv"),
		episodeEntry("/tv/Show S01E02.mkv"),
	}

	got := groupEpisodeVersions(entries, testPatterns(t), nil)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	// Exact base-key match wins the primary slot.
	if diff := cmp.Diff([]string{"/tv/Show S01E01.mkv"}, paths(got[0].Files)); diff != "" {
		t.Errorf("primary mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/tv/Show S01E01 - [1080p].mkv"}, paths(got[0].AlternateVersions)); diff != "" {
		t.Errorf("alternates mismatch (-want +got):\n%s", diff)
	}
	if got[0].AlternateVersions[0].VersionTag != "1080p" {
		t.Errorf("VersionTag = %q, want %q", got[0].AlternateVersions[0].VersionTag, "1080p")
	}

	// The E02 episode forms its own singleton group.
	if diff := cmp.Diff([]string{"/tv/Show S01E02.mkv"}, paths(got[1].Files)); diff != "" {
		t.Errorf("second group mismatch (-want +got):\n%s", diff)
	}
	if len(got[1].AlternateVersions) != 0 {
		t.Errorf("second group has %d alternates, want 0", len(got[1].AlternateVersions))
	}
}

func TestGroupEpisodeVersionsDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	tagged := &FileRecord{Path: "/tv/Show S01E01 - [HEVC].mkv", DisplayName: "Show S01E01 - [HEVC].mkv"}
	entries := []*LogicalEntry{
		episodeEntry("/tv/Show S01E01.mkv"),
		{Name: "Show S01E01 - [HEVC]", Files: []*FileRecord{tagged}},
	}

	groupEpisodeVersions(entries, testPatterns(t), nil)

	if tagged.VersionTag != "" || tagged.DisplayName != "Show S01E01 - [HEVC].mkv" {
		t.Errorf("input record mutated: %+v", tagged)
	}
}

func TestGroupEpisodeVersionsBaseKeyCaseInsensitive(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{
		episodeEntry("/tv/show s01e01.mkv"),
		episodeEntry("/tv/Show S01E01 - [720p].mkv"),
	}

	got := groupEpisodeVersions(entries, testPatterns(t), nil)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if len(got[0].AlternateVersions) != 1 {
		t.Errorf("got %d alternates, want 1", len(got[0].AlternateVersions))
	}
}

func TestGroupEpisodeVersionsEpisodeCodeNotATag(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{
		episodeEntry("/tv/Some Show - S01E01.mkv"),
		episodeEntry("/tv/Some Show - S01E02.mkv"),
	}

	got := groupEpisodeVersions(entries, testPatterns(t), nil)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2 (an episode code must not count as a version tag)", len(got))
	}
}

func TestGroupEpisodeVersionsResolutionRanking(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{
		episodeEntry("/tv/Show S01E01 - 720p.mkv"),
		episodeEntry("/tv/Show S01E01 - 2160p.mkv"),
		episodeEntry("/tv/Show S01E01 - 1080p.mkv"),
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	got := groupEpisodeVersions(entries, testPatterns(t), logger)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	// No file matches the bare base key, so the highest resolution is
	// primary and the rest rank descending.
	if diff := cmp.Diff([]string{"/tv/Show S01E01 - 2160p.mkv"}, paths(got[0].Files)); diff != "" {
		t.Errorf("primary mismatch (-want +got):\n%s", diff)
	}
	want := []string{"/tv/Show S01E01 - 1080p.mkv", "/tv/Show S01E01 - 720p.mkv"}
	if diff := cmp.Diff(want, paths(got[0].AlternateVersions)); diff != "" {
		t.Errorf("alternates mismatch (-want +got):\n%s", diff)
	}

	// Three versions of one episode triggers the unsupported-scheme warning.
	if !strings.Contains(buf.String(), "base_key") {
		t.Errorf("expected a diagnostic warning naming the base key, got %q", buf.String())
	}
}

func TestGroupEpisodeVersionsGroupOrderIsFirstAppearance(t *testing.T) {
	t.Parallel()
	entries := []*LogicalEntry{
		episodeEntry("/tv/Show S01E02.mkv"),
		episodeEntry("/tv/Show S01E01.mkv"),
		episodeEntry("/tv/Show S01E02 - [HEVC].mkv"),
	}

	got := groupEpisodeVersions(entries, testPatterns(t), nil)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Name != "Show S01E02" || got[1].Name != "Show S01E01" {
		t.Errorf("group order = [%q, %q], want first-appearance order", got[0].Name, got[1].Name)
	}
}

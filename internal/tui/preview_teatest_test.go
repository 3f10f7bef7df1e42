package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/Digital-Shane/title-group/internal/resolve"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func previewEntries() []*resolve.LogicalEntry {
	return []*resolve.LogicalEntry{
		{
			Name: "Movie (2020)",
			Year: 2020,
			Files: []*resolve.FileRecord{
				{Path: "/m/Movie (2020)/Movie (2020).mkv"},
			},
			AlternateVersions: []*resolve.FileRecord{
				{Path: "/m/Movie (2020)/Movie (2020) - [1080p].mkv"},
			},
		},
		{
			Name:  "Other",
			Files: []*resolve.FileRecord{{Path: "/m/Other.mkv"}},
		},
	}
}

func startPreviewTestModel(t *testing.T, model *PreviewModel) *teatest.TestModel {
	t.Helper()
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(100, 24))
	t.Cleanup(func() {
		_ = tm.Quit()
	})
	return tm
}

func waitForPreviewOutput(t *testing.T, tm *teatest.TestModel, contains ...string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		for _, s := range contains {
			if !bytes.Contains(b, []byte(s)) {
				return false
			}
		}
		return true
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(25*time.Millisecond))
}

func TestPreviewModelShowsEntries(t *testing.T) {
	model := NewPreviewModel("movies", previewEntries())
	tm := startPreviewTestModel(t, model)

	tm.Send(tea.WindowSizeMsg{Width: 100, Height: 24})
	waitForPreviewOutput(t, tm, "Movie (2020)", "2 entries, 1 version groups")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestPreviewModelQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyType
	}{
		{name: "esc", key: tea.KeyEsc},
		{name: "ctrl_c", key: tea.KeyCtrlC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model := NewPreviewModel("shows", previewEntries())
			tm := startPreviewTestModel(t, model)

			tm.Send(tea.WindowSizeMsg{Width: 100, Height: 24})
			tm.Send(tea.KeyMsg{Type: tc.key})
			tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

			final := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second))
			if _, ok := final.(*PreviewModel); !ok {
				t.Fatalf("Final model type = %T, want *PreviewModel", final)
			}
		})
	}
}

func TestPreviewModelSizing(t *testing.T) {
	model := NewPreviewModel("movies", previewEntries())
	tm := startPreviewTestModel(t, model)

	tm.Send(tea.WindowSizeMsg{Width: 100, Height: 24})
	waitForPreviewOutput(t, tm, "Other")
	if !model.ready {
		t.Error("ready = false, want true after first WindowSizeMsg")
	}

	tm.Send(tea.WindowSizeMsg{Width: 60, Height: 12})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(*PreviewModel)
	if !ok {
		t.Fatal("final model is not *PreviewModel")
	}
	if final.viewport.Width != 60 {
		t.Errorf("viewport.Width = %d, want 60", final.viewport.Width)
	}
}

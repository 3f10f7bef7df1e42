// Package tui renders grouping results, either as a one-shot listing or an
// interactive scrollable preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/title-group/internal/resolve"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const maxPathWidth = 76

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	yearStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	alternateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	extraStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// RenderEntries renders the grouping as an indented listing, one block per
// logical entry.
func RenderEntries(entries []*resolve.LogicalEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(renderEntry(e))
	}
	return b.String()
}

func renderEntry(e *resolve.LogicalEntry) string {
	var b strings.Builder

	header := titleStyle.Render(e.Name)
	if e.Year != 0 {
		header += " " + yearStyle.Render(fmt.Sprintf("(%d)", e.Year))
	}
	if e.ExtraKind != resolve.ExtraNone {
		header += " " + extraStyle.Render("["+e.ExtraKind.String()+"]")
	}
	b.WriteString(header)
	b.WriteString("\n")

	for _, f := range e.Files {
		b.WriteString("  ")
		b.WriteString(fileStyle.Render(truncatePath(f.Path)))
		b.WriteString("\n")
	}
	for _, f := range e.AlternateVersions {
		line := truncatePath(f.Path)
		if f.VersionTag != "" {
			line += "  (" + f.VersionTag + ")"
		}
		b.WriteString("  ")
		b.WriteString(alternateStyle.Render("↳ " + line))
		b.WriteString("\n")
	}
	return b.String()
}

func truncatePath(path string) string {
	return runewidth.Truncate(path, maxPathWidth, "…")
}

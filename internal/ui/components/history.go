// Package components provides reusable TUI building blocks.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/growwithdv/Modern-Calculator/internal/calculator"
	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

// Palette carries the theme colors a component needs. Components do not own
// theme state; the active colors are injected on every render so a theme
// switch takes effect immediately.
type Palette struct {
	Primary  lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Border   lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor
}

// HistoryList is a navigable pane of recorded calculations, most recent
// first.
type HistoryList struct {
	Title       string
	Entries     []calculator.HistoryEntry
	Selected    int
	Width       int
	Height      int
	ShowNumbers bool
}

// NewHistoryList creates a history pane with sensible defaults.
func NewHistoryList(title string) *HistoryList {
	return &HistoryList{
		Title:       title,
		Width:       40,
		Height:      12,
		ShowNumbers: true,
	}
}

// SetEntries replaces the listed calculations and clamps the selection.
func (l *HistoryList) SetEntries(entries []calculator.HistoryEntry) {
	l.Entries = entries
	if l.Selected >= len(entries) {
		l.Selected = len(entries) - 1
	}
	if l.Selected < 0 {
		l.Selected = 0
	}
}

// SetSize sets the pane dimensions
func (l *HistoryList) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// MoveUp moves selection up
func (l *HistoryList) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *HistoryList) MoveDown() {
	if l.Selected < len(l.Entries)-1 {
		l.Selected++
	}
}

// SelectedEntry returns the currently selected calculation.
func (l *HistoryList) SelectedEntry() (calculator.HistoryEntry, bool) {
	if l.Selected >= 0 && l.Selected < len(l.Entries) {
		return l.Entries[l.Selected], true
	}
	return calculator.HistoryEntry{}, false
}

// Render renders the pane
func (l *HistoryList) Render(p Palette) string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	content.WriteString(titleStyle.Render(l.Title))
	content.WriteString("\n")

	if len(l.Entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true)
		content.WriteString(emptyStyle.Render("no calculations yet"))
		return content.String()
	}

	maxVisible := l.Height - 4
	if maxVisible < 1 {
		maxVisible = 1
	}

	startIndex := 0
	if l.Selected >= maxVisible {
		startIndex = l.Selected - maxVisible + 1
	}
	endIndex := startIndex + maxVisible
	if endIndex > len(l.Entries) {
		endIndex = len(l.Entries)
	}

	for i := startIndex; i < endIndex; i++ {
		content.WriteString(l.renderEntry(p, i))
		content.WriteString("\n")
	}

	if len(l.Entries) > maxVisible {
		scrollStyle := lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true)
		scrollInfo := fmt.Sprintf("(%d-%d of %d)", startIndex+1, endIndex, len(l.Entries))
		content.WriteString(scrollStyle.Render(scrollInfo))
	}

	return content.String()
}

func (l *HistoryList) renderEntry(p Palette, index int) string {
	entry := l.Entries[index]

	var line strings.Builder
	if l.ShowNumbers {
		fmt.Fprintf(&line, "%2d. ", index+1)
	}
	line.WriteString(symbol.Render(entry.Expression))
	line.WriteString(" = ")
	line.WriteString(entry.Result)

	text := line.String()
	if l.Width > 4 {
		text = truncate(text, l.Width-2)
	}

	if index == l.Selected {
		selectedStyle := lipgloss.NewStyle().
			Background(p.Selected).
			Foreground(p.Primary).
			Bold(true).
			Width(l.Width - 2)
		return selectedStyle.Render(symbol.Get("pointer") + " " + text)
	}

	itemStyle := lipgloss.NewStyle().
		Foreground(p.Muted).
		PaddingLeft(2)
	return itemStyle.Render(text)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

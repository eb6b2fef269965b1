// Package ui holds the lipgloss styles and small render helpers
// shared by the CLI and TUI surfaces.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the style palette plus checkbox symbols.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style

	Selected, Done, Help lipgloss.Style

	BoxUnchecked, BoxChecked string

	Border lipgloss.Style
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects one of the built-in palettes: classic (default),
// neon, or mono (no color, ASCII checkboxes).
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:         lipgloss.NewStyle().Faint(true),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			Border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("13")).
				Padding(0, 1),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain, Help: plain,
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			Border: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
		}
	default: // classic
		current = Theme{
			Title:        lipgloss.NewStyle().Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:         lipgloss.NewStyle().Faint(true),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			Border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1),
		}
	}
}

// Current returns the active theme.
func Current() Theme { return current }

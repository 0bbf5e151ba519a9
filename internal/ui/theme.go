package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                      string
	Title, Muted, Accent, Success, Error, Dim lipgloss.Style
	Selected, Night, Eyes                     lipgloss.Style
	Border                                    lipgloss.Border
	BorderColor                               lipgloss.TerminalColor
	Shelf                                     string
	SymOK, SymFail, SymStreak                 string
	ArmRight, ArmLeft, Hand, Switch           string
	Mono                                      bool
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Night:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("0")),
		Eyes:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("0")).Bold(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		Shelf:       "═",
		SymOK:       "✔", SymFail: "✖", SymStreak: "🔥",
		ArmRight: "=", ArmLeft: "=", Hand: "ᗢ", Switch: "⏻",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		t.BorderColor = lipgloss.Color("13")
		t.Shelf = "━"
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Dim: plain,
			Selected: plain.Reverse(true), Night: plain.Reverse(true), Eyes: plain.Reverse(true),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			Shelf:       "-",
			SymOK:       "x", SymFail: "!", SymStreak: "*",
			ArmRight: "=", ArmLeft: "=", Hand: "o", Switch: "#",
			Mono: true,
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the chrome colors around the pixel canvas. Pixels are
// always drawn in their own colors.
type Theme struct {
	Name string

	Background string
	Surface    string // header and footer bars
	Border     string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Pane   lipgloss.Style
}

// HelpStyles styles the bubbles help bar with theme colors.
func (t Theme) HelpStyles() help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Phosphor": phosphorTheme(),
	"Amber":    amberTheme(),
	"Mono":     monoTheme(),
}

var themeOrder = []string{"Phosphor", "Amber", "Mono"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return phosphorTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func phosphorTheme() Theme {
	// P1 green monitor phosphor
	return Theme{
		Name: "Phosphor",

		Background: "#050a05",
		Surface:    "#0d1a0d",
		Border:     "#1f3d1f",

		Text:    "#b8f5b8",
		Muted:   "#6fb36f",
		Faint:   "#3f6e3f",
		Accent:  "#33ff66",
		Success: "#33ff66",
		Warning: "#e6e65c",
		Danger:  "#ff5c5c",
	}
}

func amberTheme() Theme {
	// P3 amber monitor phosphor
	return Theme{
		Name: "Amber",

		Background: "#0f0900",
		Surface:    "#1f1400",
		Border:     "#4d3300",

		Text:    "#ffcc80",
		Muted:   "#cc9240",
		Faint:   "#805a1f",
		Accent:  "#ffb000",
		Success: "#ffd24d",
		Warning: "#ffe680",
		Danger:  "#ff6040",
	}
}

func monoTheme() Theme {
	return Theme{
		Name: "Mono",

		Background: "#000000",
		Surface:    "#1c1c1c",
		Border:     "#444444",

		Text:    "#e4e4e4",
		Muted:   "#a8a8a8",
		Faint:   "#6c6c6c",
		Accent:  "#ffffff",
		Success: "#d0d0d0",
		Warning: "#ffffff",
		Danger:  "#ffffff",
	}
}

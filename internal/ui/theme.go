package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Card background
	FocusBg    string // Cursor card background

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Per-category badge colors; missing labels fall back to Muted.
	TypeColors map[string]string
}

// TypeColor returns the badge color for a category label.
func (t Theme) TypeColor(label string) string {
	if c, ok := t.TypeColors[strings.ToLower(strings.TrimSpace(label))]; ok {
		return c
	}
	return t.Muted
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		theme: t,
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

	Bar       lipgloss.Style
	Logo      lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style

	theme Theme
}

// Badge renders a category label on its type color.
func (s Styles) Badge(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.Background)).
		Background(lipgloss.Color(s.theme.TypeColor(label))).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(label))
}

// TypeText renders a category label in its type color without a background.
func (s Styles) TypeText(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.theme.TypeColor(label))).
		Render(label)
}

// Theme definitions

// Canonical type palette shared by the bright themes.
var classicTypeColors = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

var themes = map[string]Theme{
	"Pokedex":  pokedexTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Pokedex", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name, defaulting to Pokedex.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return pokedexTheme()
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

// ThemeNames lists the available themes in cycle order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func pokedexTheme() Theme {
	return Theme{
		Name: "Pokedex",

		Background: "#111318",
		Surface:    "#B3262E", // dex shell red
		SurfaceAlt: "#1B1E25",
		FocusBg:    "#2A2F3A",

		Border:      "#3A3F4B",
		BorderFocus: "#F7D02C",

		Text:    "#F2F2F2",
		Muted:   "#A9B0BC",
		Faint:   "#6B7280",
		Accent:  "#4FC3F7",
		Success: "#7AC74C",
		Warning: "#F7D02C",
		Danger:  "#FF5A5F",

		TypeColors: classicTypeColors,
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#192330", // bg0
		Surface:    "#212e3f", // bg1
		SurfaceAlt: "#29394f", // bg2
		FocusBg:    "#2b3b51", // sel0

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#aeafb0", // fg2
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		TypeColors: map[string]string{
			"normal":   "#aeafb0",
			"fire":     "#f4a261",
			"water":    "#719cd6",
			"electric": "#dbc074",
			"grass":    "#81b29a",
			"ice":      "#63cdcf",
			"fighting": "#c94f6d",
			"poison":   "#9d79d6",
			"ground":   "#d67ad2",
			"flying":   "#86abdc",
			"psychic":  "#d67ad2",
			"bug":      "#8ebaa4",
			"rock":     "#e0c989",
			"ghost":    "#baa1e2",
			"dragon":   "#9d79d6",
			"dark":     "#71839b",
			"steel":    "#cdcecf",
			"fairy":    "#d67ad2",
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2D4F67", // waveBlue1

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed

		TypeColors: map[string]string{
			"normal":   "#C8C093",
			"fire":     "#FFA066", // surimiOrange
			"water":    "#7E9CD8",
			"electric": "#E6C384",
			"grass":    "#98BB6C",
			"ice":      "#7FB4CA", // springBlue
			"fighting": "#E46876",
			"poison":   "#957FB8", // oniViolet
			"ground":   "#C0A36E", // boatYellow2
			"flying":   "#9CABCA", // springViolet2
			"psychic":  "#D27E99", // sakuraPink
			"bug":      "#76946A", // autumnGreen
			"rock":     "#C0A36E",
			"ghost":    "#938AA9", // springViolet1
			"dragon":   "#957FB8",
			"dark":     "#727169",
			"steel":    "#DCD7BA",
			"fairy":    "#D27E99",
		},
	}
}

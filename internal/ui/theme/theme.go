// Package theme provides the semantic colors used by the combobox styling
// slots.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named set of semantic colors. Every color adapts to light and
// dark terminals.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor // focused borders, active option marker
	Secondary lipgloss.AdaptiveColor // labels
	Accent    lipgloss.AdaptiveColor // selection badges
	Error     lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor // placeholders, hints, empty listbox

	Background    lipgloss.AdaptiveColor
	BackgroundAlt lipgloss.AdaptiveColor // active option row, portal surface

	BorderNormal lipgloss.AdaptiveColor
	BorderDim    lipgloss.AdaptiveColor
}

var tokyoNight = Theme{
	Name:          "tokyonight",
	Primary:       lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
	Secondary:     lipgloss.AdaptiveColor{Dark: "#c099ff", Light: "#9854f1"},
	Accent:        lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
	Error:         lipgloss.AdaptiveColor{Dark: "#ff757f", Light: "#f52a65"},
	Text:          lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
	Background:    lipgloss.AdaptiveColor{Dark: "#222436", Light: "#e1e2e7"},
	BackgroundAlt: lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
	BorderDim:     lipgloss.AdaptiveColor{Dark: "#292e42", Light: "#c8c9ce"},
}

var dracula = Theme{
	Name:          "dracula",
	Primary:       lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7e57c2"},
	Secondary:     lipgloss.AdaptiveColor{Dark: "#8be9fd", Light: "#0097a7"},
	Accent:        lipgloss.AdaptiveColor{Dark: "#f1fa8c", Light: "#f9a825"},
	Error:         lipgloss.AdaptiveColor{Dark: "#ff5555", Light: "#d32f2f"},
	Text:          lipgloss.AdaptiveColor{Dark: "#f8f8f2", Light: "#212121"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#757575"},
	Background:    lipgloss.AdaptiveColor{Dark: "#282a36", Light: "#ffffff"},
	BackgroundAlt: lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e0e0e0"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#bdbdbd"},
	BorderDim:     lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e0e0e0"},
}

var nord = Theme{
	Name:          "nord",
	Primary:       lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"},
	Secondary:     lipgloss.AdaptiveColor{Dark: "#81a1c1", Light: "#81a1c1"},
	Accent:        lipgloss.AdaptiveColor{Dark: "#8fbcbb", Light: "#8fbcbb"},
	Error:         lipgloss.AdaptiveColor{Dark: "#bf616a", Light: "#bf616a"},
	Text:          lipgloss.AdaptiveColor{Dark: "#eceff4", Light: "#2e3440"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#8b95a7", Light: "#3b4252"},
	Background:    lipgloss.AdaptiveColor{Dark: "#2e3440", Light: "#eceff4"},
	BackgroundAlt: lipgloss.AdaptiveColor{Dark: "#3b4252", Light: "#e5e9f0"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#4c566a"},
	BorderDim:     lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#d8dee9"},
}

var solarized = Theme{
	Name:          "solarized",
	Primary:       lipgloss.AdaptiveColor{Dark: "#268bd2", Light: "#268bd2"},
	Secondary:     lipgloss.AdaptiveColor{Dark: "#6c71c4", Light: "#6c71c4"},
	Accent:        lipgloss.AdaptiveColor{Dark: "#b58900", Light: "#b58900"},
	Error:         lipgloss.AdaptiveColor{Dark: "#dc322f", Light: "#dc322f"},
	Text:          lipgloss.AdaptiveColor{Dark: "#93a1a1", Light: "#586e75"},
	TextMuted:     lipgloss.AdaptiveColor{Dark: "#586e75", Light: "#93a1a1"},
	Background:    lipgloss.AdaptiveColor{Dark: "#002b36", Light: "#fdf6e3"},
	BackgroundAlt: lipgloss.AdaptiveColor{Dark: "#073642", Light: "#eee8d5"},
	BorderNormal:  lipgloss.AdaptiveColor{Dark: "#586e75", Light: "#93a1a1"},
	BorderDim:     lipgloss.AdaptiveColor{Dark: "#073642", Light: "#eee8d5"},
}

func init() {
	RegisterTheme(tokyoNight)
	RegisterTheme(dracula)
	RegisterTheme(nord)
	RegisterTheme(solarized)
}

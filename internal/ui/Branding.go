package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colors both games draw with.
type Theme struct {
	Snake  lipgloss.Color
	Head   lipgloss.Color
	Food   lipgloss.Color
	Void   lipgloss.Color
	Brick  lipgloss.Color
	Knight lipgloss.Color
	Accent lipgloss.Color
}

var DefaultTheme = Theme{
	Snake:  lipgloss.Color("34"),
	Head:   lipgloss.Color("46"),
	Food:   lipgloss.Color("196"),
	Void:   lipgloss.Color("233"),
	Brick:  lipgloss.Color("130"),
	Knight: lipgloss.Color("252"),
	Accent: lipgloss.Color("148"),
}

var (
	MonoTheme = Theme{
		Snake:  lipgloss.Color("250"),
		Head:   lipgloss.Color("15"),
		Food:   lipgloss.Color("244"),
		Void:   lipgloss.Color("232"),
		Brick:  lipgloss.Color("240"),
		Knight: lipgloss.Color("15"),
		Accent: lipgloss.Color("255"),
	}

	AmberTheme = Theme{
		Snake:  lipgloss.Color("214"),
		Head:   lipgloss.Color("220"),
		Food:   lipgloss.Color("202"),
		Void:   lipgloss.Color("234"),
		Brick:  lipgloss.Color("94"),
		Knight: lipgloss.Color("229"),
		Accent: lipgloss.Color("214"),
	}

	themes = map[string]Theme{
		"default": DefaultTheme,
		"mono":    MonoTheme,
		"amber":   AmberTheme,
	}
)

// ThemeByName looks up a theme by its case-insensitive name.
func ThemeByName(name string) (Theme, bool) {
	theme, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return theme, ok
}

// Branding is the cabinet dressing shared by every game: who sponsors it and how it looks.
type Branding struct {
	Sponsor string
	Theme   Theme
}

func NewBranding(sponsor string) Branding {
	b := Branding{Theme: DefaultTheme}
	b.SetSponsor(sponsor)
	return b
}

func (b *Branding) SetSponsor(sponsorName string) {
	b.Sponsor = strings.TrimSpace(sponsorName)
}

func (b *Branding) SetTheme(theme Theme) {
	b.Theme = theme
}

func (b Branding) footer() string {
	if b.Sponsor == "" {
		return ""
	}
	return lipgloss.NewStyle().Faint(true).Render("Sponsored by ") +
		lipgloss.NewStyle().Foreground(b.Theme.Accent).Bold(true).Render(b.Sponsor)
}

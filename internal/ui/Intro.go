package ui

import (
	"strings"

	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel is the game select screen.
type IntroModel struct {
	selected int
	width    int
	height   int
}

func NewIntroModel(selected game.GameKind, w, h int) IntroModel {
	m := IntroModel{width: w, height: h}
	for i, k := range game.GameKinds {
		if k == selected {
			m.selected = i
		}
	}
	return m
}

const scoresEntry = "Scores"

func introEntries() int { return len(game.GameKinds) + 1 }

// Selected is the highlighted game; false when the scores entry is highlighted.
func (m IntroModel) Selected() (game.GameKind, bool) {
	if m.selected >= len(game.GameKinds) {
		return "", false
	}
	return game.GameKinds[m.selected], true
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left), msg.String() == "h", msg.String() == "shift+tab":
			m.selected = (m.selected - 1 + introEntries()) % introEntries()
		case key.Matches(msg, keys.Right), msg.String() == "l", msg.String() == "tab":
			m.selected = (m.selected + 1) % introEntries()
		case key.Matches(msg, keys.Enter):
			kind, ok := m.Selected()
			if !ok {
				return m, func() tea.Msg { return ShowLeaderboardMsg{} }
			}
			return m, func() tea.Msg { return IntroSubmitMsg(kind) }
		}
	}
	return m, nil
}

var arcadeAscii = `
 ▄▄▄  ▄▄▄   ▄▄▄  ▄▄▄  ▄▄▄  ▄▄▄
█▄▄▄█ █▄▄▀ █    █▄▄▄█ █  █ █▄▄
█   █ █  █ ▀▄▄▄ █   █ █▄▄▀ █▄▄▄
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("148"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("148")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(arcadeAscii))
	sb.WriteString("\n")

	labels := make([]string, 0, introEntries())
	for _, k := range game.GameKinds {
		labels = append(labels, string(k))
	}
	labels = append(labels, scoresEntry)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == m.selected {
			buttons = append(buttons, introSelectedButtonStyle.Render(label))
		} else {
			buttons = append(buttons, introButtonStyle.Render(label))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		sb.String(),
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		helpStyle.Render("←/→ choose, enter to play or see the scores, ctrl+c to quit"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

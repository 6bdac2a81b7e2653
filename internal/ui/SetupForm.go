package ui

import (
	"strings"

	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)

	modeStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedModeStyle = modeStyle.Background(focusedColor).Foreground(lipgloss.Color("0"))
)

const (
	focusName = iota
	focusMode
	focusSubmit
	focusCount
)

// SetupModel asks for a name and the controls before a snake game.
type SetupModel struct {
	nameInput   textinput.Model
	defaultName string
	modeIndex   int
	focusIndex  int
	width       int
	height      int
}

func NewInitialSetupModel(defaultName string, w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = defaultName
	if ti.Placeholder == "" {
		ti.Placeholder = "Your snake's name"
	}
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:   ti,
		defaultName: defaultName,
		width:       w,
		height:      h,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) name() string {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = m.defaultName
	}
	if name == "" {
		name = "anonymous"
	}
	return name
}

func (m *SetupModel) setFocus(i int) {
	m.focusIndex = (i + focusCount) % focusCount
	if m.focusIndex == focusName {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		switch s {
		case "tab":
			m.setFocus(m.focusIndex + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focusIndex - 1)
			return m, nil
		case "enter":
			if m.focusIndex != focusSubmit {
				m.setFocus(m.focusIndex + 1)
				return m, nil
			}
			submit := SetupSubmitMsg{Name: m.name(), Mode: game.DeviceModes[m.modeIndex]}
			return m, func() tea.Msg { return submit }
		case "esc":
			return m, func() tea.Msg { return QuitGameMsg{} }
		}

		if m.focusIndex == focusMode {
			switch {
			case key.Matches(msg, keys.Left):
				m.modeIndex = (m.modeIndex - 1 + len(game.DeviceModes)) % len(game.DeviceModes)
			case key.Matches(msg, keys.Right):
				m.modeIndex = (m.modeIndex + 1) % len(game.DeviceModes)
			}
			return m, nil
		}

		if m.focusIndex == focusName {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	prompt := "Controls (use arrows)"
	if m.focusIndex == focusMode {
		b.WriteString(center(focusedStyle.Render(prompt)))
	} else {
		b.WriteString(center(blurredStyle.Render(prompt)))
	}
	b.WriteString("\n")

	modes := make([]string, 0, len(game.DeviceModes))
	for i, mode := range game.DeviceModes {
		if i == m.modeIndex {
			modes = append(modes, selectedModeStyle.Render(mode.String()))
		} else {
			modes = append(modes, modeStyle.Render(mode.String()))
		}
	}
	b.WriteString(center(lipgloss.JoinHorizontal(lipgloss.Center, modes...)))
	b.WriteString("\n\n")

	if m.focusIndex == focusSubmit {
		b.WriteString(center(submitButtonStyle.Render("Start")))
	} else {
		b.WriteString(center(blurredButtonStyle.Render("Start")))
	}
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

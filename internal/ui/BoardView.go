package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardTickMsg time.Time

// BoardViewModel plays the board walk demo. The walk is owned by this model
// and only touched from Update.
type BoardViewModel struct {
	walk         *game.BoardWalk
	startedAt    time.Time
	branding     Branding
	ScreenWidth  int
	ScreenHeight int
}

func NewBoardModel(walk *game.BoardWalk, branding Branding, w, h int) BoardViewModel {
	return BoardViewModel{
		walk:         walk,
		startedAt:    time.Now(),
		branding:     branding,
		ScreenWidth:  w,
		ScreenHeight: h,
	}
}

func (m BoardViewModel) Init() tea.Cmd {
	return boardTick()
}

func boardTick() tea.Cmd {
	return tea.Tick(game.GameTickDuration, func(t time.Time) tea.Msg { return boardTickMsg(t) })
}

func (m BoardViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
	case boardTickMsg:
		m.walk.Update(time.Time(msg).Sub(m.startedAt))
		return m, boardTick()
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit, keys.Back) {
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
	}
	return m, nil
}

func (m BoardViewModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderBoard()),
		statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel()),
	)
}

func (m BoardViewModel) renderBoard() string {
	theme := m.branding.Theme
	grid := m.walk.Grid()

	voidCell := lipgloss.NewStyle().Background(theme.Void).Render(strings.Repeat(" ", cellWidth))
	brickCell := lipgloss.NewStyle().Background(theme.Brick).Foreground(lipgloss.Color("52")).Render("▚▚")
	knightCell := lipgloss.NewStyle().Background(theme.Brick).Foreground(theme.Knight).Bold(true).Render("♞ ")

	bricks := make(game.CellSet)
	for _, c := range m.walk.Bricks() {
		bricks[c] = struct{}{}
	}
	knight, onPath := m.walk.KnightCell()

	var sb strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := game.Cell{X: x, Y: y}
			switch {
			case onPath && c == knight:
				sb.WriteString(knightCell)
			case bricks.Has(c):
				sb.WriteString(brickCell)
			default:
				sb.WriteString(voidCell)
			}
		}
		if y < grid.Height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m BoardViewModel) renderStatusPanel() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Board ---") + "\n")

	if c, ok := m.walk.KnightCell(); ok {
		pos := m.walk.KnightPosition()
		sb.WriteString(fmt.Sprintf("Step: %d\n", m.walk.Step()+1))
		sb.WriteString(fmt.Sprintf("Knight: %s\n", c))
		sb.WriteString(fmt.Sprintf("Pixels: %d,%d\n", pos.X, pos.Y))
	} else {
		sb.WriteString("The knight is getting ready...\n")
	}
	sb.WriteString(fmt.Sprintf("Bricks: %d\n", len(m.walk.Bricks())))

	sb.WriteString("\n" + helpLine(keys.Quit) + "\n")
	if footer := m.branding.footer(); footer != "" {
		sb.WriteString("\n" + footer + "\n")
	}
	return sb.String()
}

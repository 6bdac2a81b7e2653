package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
	StateLeaderboard
)

type (
	frameTickMsg    struct{}
	scoresLoadedMsg struct {
		scores []game.Score
		err    error
	}
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	headRunes = map[game.Heading]string{
		game.Up:    "▲▲",
		game.Down:  "▼▼",
		game.Left:  "◀◀",
		game.Right: "▶▶",
	}
)

const (
	cellWidth        = 2
	statusPanelWidth = 30
)

// GameViewModel renders one snake session and forwards input to its loop.
type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	gameManager *game.GameManager
	leaderboard Leaderboard
	branding    Branding
	snapshot    game.Snapshot

	gameState     GameState
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, initial game.Snapshot, leaderboard Leaderboard, branding Branding, screenWidth, screenHeight int) GameViewModel {
	return GameViewModel{
		gameManager:  gm,
		leaderboard:  leaderboard,
		branding:     branding,
		snapshot:     initial,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.gameOverState.ScreenWidth, m.gameOverState.ScreenHeight = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.gameState != StatePlaying {
			return m.updateGameOver(msg)
		}
		return m.updatePlaying(msg)

	case tea.MouseMsg:
		if m.gameState == StatePlaying {
			m.sendPointer(msg)
		}
		return m, nil

	case game.FrameMsg:
		m.snapshot = msg.Snapshot
		return m, m.listenForGameUpdates()

	case game.SessionOverMsg:
		log.Info("Session over", "player", msg.Result.PlayerName, "status", msg.Result.Status, "eaten", msg.Result.Eaten)
		m.snapshot = msg.Snapshot
		m.gameState = StateGameOver
		m.gameOverState.Result = msg.Result
		m.gameOverState.SelectedButton = 0
		return m, nil

	case frameTickMsg:
		return m, m.listenForGameUpdates()

	case scoresLoadedMsg:
		m.gameOverState.Scores = msg.scores
		m.gameOverState.ScoresErr = msg.err
		return m, nil
	}

	return m, nil
}

func (m GameViewModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if h, ok := headingFor(msg); ok {
		m.send(game.KeyEvent{Heading: h})
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Mode):
		next := game.DeviceModes[(int(m.snapshot.Mode)+1)%len(game.DeviceModes)]
		m.snapshot.Mode = next
		m.send(game.ModeEvent{Mode: next})
	case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Back):
		return m, func() tea.Msg { return QuitGameMsg{} }
	}
	return m, nil
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit, keys.Back):
		if m.gameState == StateLeaderboard {
			m.gameState = StateGameOver
			return m, nil
		}
		return m, func() tea.Msg { return QuitGameMsg{} }
	case key.Matches(msg, keys.Left), msg.String() == "h":
		if m.gameState == StateGameOver {
			m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
		}
	case key.Matches(msg, keys.Right), msg.String() == "l":
		if m.gameState == StateGameOver {
			m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
		}
	case key.Matches(msg, keys.Enter):
		switch m.gameState {
		case StateGameOver:
			if m.gameOverState.SelectedButton == 0 {
				return m, func() tea.Msg { return QuitGameMsg{} }
			}
			m.gameState = StateLeaderboard
			return m, m.loadScores()
		case StateLeaderboard:
			m.gameState = StateGameOver
		}
	}
	return m, nil
}

// send never blocks the UI; input dropped while the loop is busy is not worth waiting for.
func (m GameViewModel) send(input any) {
	select {
	case m.gameManager.InputChannel <- input:
	default:
		log.Debug("Input dropped, game loop is busy", "input", input)
	}
}

func (m GameViewModel) sendPointer(msg tea.MouseMsg) {
	pos := game.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.send(game.PointerEvent{Action: game.PointerPress, Position: pos})
		}
	case tea.MouseActionMotion:
		m.send(game.PointerEvent{Action: game.PointerMove, Position: pos})
	case tea.MouseActionRelease:
		m.send(game.PointerEvent{Action: game.PointerRelease, Position: pos})
	}
}

func (m GameViewModel) loadScores() tea.Cmd {
	return loadScores(m.leaderboard)
}

func loadScores(leaderboard Leaderboard) tea.Cmd {
	return func() tea.Msg {
		if leaderboard == nil {
			return scoresLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		scores, err := leaderboard.GetHighScores(ctx, leaderboardSize, 0)
		if err != nil {
			log.Error("Could not load high scores", "error", err)
		}
		return scoresLoadedMsg{scores: scores, err: err}
	}
}

func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.gameManager.UpdateChannel
	return tea.Tick(game.GameTickDuration, func(time.Time) tea.Msg {
		select {
		case msg := <-updates:
			return msg
		default:
			return frameTickMsg{}
		}
	})
}

func (m GameViewModel) View() string {
	switch m.gameState {
	case StateGameOver:
		return m.gameOverState.RenderGameOverScreen()
	case StateLeaderboard:
		return m.gameOverState.RenderLeaderboardScreen()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderMap()),
		statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel()),
	)
}

func (m GameViewModel) renderMap() string {
	snap := m.snapshot
	theme := m.branding.Theme

	voidCell := lipgloss.NewStyle().Background(theme.Void).Render(strings.Repeat(" ", cellWidth))
	bodyCell := lipgloss.NewStyle().Background(theme.Void).Foreground(theme.Snake).Render("██")
	foodCell := lipgloss.NewStyle().Background(theme.Void).Foreground(theme.Food).Render("<>")
	headStyle := lipgloss.NewStyle().Background(theme.Head).Foreground(lipgloss.Color("0")).Bold(true)
	if snap.Status == game.StatusDead {
		headStyle = headStyle.Background(theme.Food)
	}

	occupied := make(game.CellSet, len(snap.Body))
	for _, c := range snap.Body {
		occupied[c] = struct{}{}
	}

	var sb strings.Builder
	for y := 0; y < snap.Grid.Height; y++ {
		for x := 0; x < snap.Grid.Width; x++ {
			c := game.Cell{X: x, Y: y}
			switch {
			case c == snap.Head:
				sb.WriteString(headStyle.Render(headRunes[snap.Direction]))
			case occupied.Has(c):
				sb.WriteString(bodyCell)
			case c == snap.Food:
				sb.WriteString(foodCell)
			default:
				sb.WriteString(voidCell)
			}
		}
		if y < snap.Grid.Height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m GameViewModel) renderStatusPanel() string {
	snap := m.snapshot
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Player: %s\n", snap.PlayerName))
	statusContent.WriteString(fmt.Sprintf("Food eaten: %d\n", snap.Eaten))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(snap.Body)))
	statusContent.WriteString(fmt.Sprintf("Speed: %dms\n", snap.Speed.Milliseconds()))
	statusContent.WriteString(fmt.Sprintf("Head: %s %s\n", snap.Head, snap.Direction))
	statusContent.WriteString(fmt.Sprintf("Controls: %s\n", snap.Mode))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	switch snap.Mode {
	case game.ModeTouch:
		statusContent.WriteString("Drag with the mouse to steer\n")
	case game.ModeAutopilot:
		statusContent.WriteString("Sit back, the bot is driving\n")
	default:
		statusContent.WriteString(helpLine(keys.Up, keys.Down) + "\n")
		statusContent.WriteString(helpLine(keys.Left, keys.Right) + "\n")
	}
	statusContent.WriteString(helpLine(keys.Mode) + "\n")
	statusContent.WriteString(helpLine(keys.Quit) + "\n")

	if footer := m.branding.footer(); footer != "" {
		statusContent.WriteString("\n" + footer + "\n")
	}
	return statusContent.String()
}

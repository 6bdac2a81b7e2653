package ui

import (
	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LeaderboardModel shows the high scores from the game select screen.
type LeaderboardModel struct {
	leaderboard Leaderboard
	scores      []game.Score
	scoresErr   error
	loaded      bool
	width       int
	height      int
}

func NewLeaderboardModel(leaderboard Leaderboard, w, h int) LeaderboardModel {
	return LeaderboardModel{leaderboard: leaderboard, width: w, height: h}
}

func (m LeaderboardModel) Init() tea.Cmd {
	return loadScores(m.leaderboard)
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case scoresLoadedMsg:
		m.scores, m.scoresErr, m.loaded = msg.scores, msg.err, true
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit, keys.Back, keys.Enter) {
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
	}
	return m, nil
}

func (m LeaderboardModel) View() string {
	if !m.loaded {
		return "Loading scores..."
	}
	return renderLeaderboard(m.scores, m.scoresErr, "", "Press ESC or ENTER to return to the game select screen.", m.width, m.height)
}

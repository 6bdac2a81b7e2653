package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/arcade/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds what the game over and leaderboard screens show.
type GameOverState struct {
	Result         game.Result
	Scores         []game.Score
	ScoresErr      error
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

const leaderboardSize = 10

var (
	GameOverbuttonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = GameOverbuttonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

func (g *GameOverState) RenderGameOverScreen() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Padding(2, 5).
		Align(lipgloss.Center)

	headline := "G A M E   O V E R"
	if g.Result.Status == game.StatusWon {
		headline = "B O A R D   C L E A R E D"
		messageStyle = messageStyle.Foreground(lipgloss.Color("10"))
	}
	title := messageStyle.Render(headline)

	stats := fmt.Sprintf("\nFinal Stats:\nFood eaten: %d\nSnake length: %d\n\n", g.Result.Eaten, g.Result.Length)

	labels := []string{"EXIT (Enter)", "LEADERBOARD"}
	buttons := make([]string, len(labels))
	for i, label := range labels {
		if g.SelectedButton == i {
			buttons[i] = selectedButtonStyle.Render(label)
		} else {
			buttons[i] = GameOverbuttonStyle.Render(label)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		stats,
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

func (g *GameOverState) RenderLeaderboardScreen() string {
	return renderLeaderboard(g.Scores, g.ScoresErr, g.Result.SessionID,
		"Press ESC or ENTER to return to Game Over screen.", g.ScreenWidth, g.ScreenHeight)
}

// renderLeaderboard draws the score table; the row of highlightSession is emphasised.
func renderLeaderboard(scores []game.Score, scoresErr error, highlightSession, hint string, width, height int) string {
	var tableContent strings.Builder

	const (
		rankWidth   = 4
		nameWidth   = 20
		eatenWidth  = 8
		lengthWidth = 8
	)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(rankWidth).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(eatenWidth).Render("Food"),
		leaderboardHeaderStyle.Width(lengthWidth).Render("Length"),
	)
	tableContent.WriteString(header + "\n")

	switch {
	case scoresErr != nil:
		tableContent.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Could not load scores.") + "\n")
	case len(scores) == 0:
		tableContent.WriteString(helpStyle.Render("No scores yet.") + "\n")
	}

	for i, score := range scores {
		nameStyle := leaderboardRowStyle
		if highlightSession != "" && score.SessionID == highlightSession {
			nameStyle = nameStyle.Foreground(lipgloss.Color("205")).Bold(true)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(rankWidth).Render(strconv.Itoa(i+1)),
			nameStyle.Width(nameWidth).Render(score.PlayerName),
			leaderboardRowStyle.Width(eatenWidth).Render(strconv.Itoa(score.Eaten)),
			leaderboardRowStyle.Width(lengthWidth).Render(strconv.Itoa(score.Length)),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("HIGH SCORES")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render(hint)

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}

package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Mshel/arcade/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type memoryPreferences struct {
	values map[string]string
	err    error
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{values: make(map[string]string)}
}

func (p *memoryPreferences) GetPreference(_ context.Context, owner, key string) (string, bool, error) {
	if p.err != nil {
		return "", false, p.err
	}
	v, ok := p.values[owner+"/"+key]
	return v, ok, nil
}

func (p *memoryPreferences) SetPreference(_ context.Context, owner, key, value string) error {
	if p.err != nil {
		return p.err
	}
	p.values[owner+"/"+key] = value
	return nil
}

func TestControllerRestoresGamePreference(t *testing.T) {
	prefs := newMemoryPreferences()
	prefs.values["alice/"+game.GamePreferenceKey] = string(game.GameBoard)

	m := NewControllerModel(context.Background(), "alice", Dependencies{Preferences: prefs}, 80, 24)
	if got := selectedGame(t, m.IntroModel); got != game.GameBoard {
		t.Fatalf("got %s, want Board", got)
	}

	prefs.values["alice/"+game.GamePreferenceKey] = "Pong"
	m = NewControllerModel(context.Background(), "alice", Dependencies{Preferences: prefs}, 80, 24)
	if got := selectedGame(t, m.IntroModel); got != game.GameSnake {
		t.Fatalf("unknown games should fall back to Snake, got %s", got)
	}

	prefs.err = errors.New("disk on fire")
	m = NewControllerModel(context.Background(), "alice", Dependencies{Preferences: prefs}, 80, 24)
	if got := selectedGame(t, m.IntroModel); got != game.GameSnake {
		t.Fatalf("store errors should fall back to Snake, got %s", got)
	}
}

func TestControllerBoardFlow(t *testing.T) {
	prefs := newMemoryPreferences()
	m := NewControllerModel(context.Background(), "alice", Dependencies{Preferences: prefs}, 80, 24)

	model, cmd := m.Update(IntroSubmitMsg(game.GameBoard))
	m = model.(ControllerModel)
	if m.CurrentScreen != BoardScreen {
		t.Fatalf("got screen %d, want board", m.CurrentScreen)
	}
	if _, ok := m.GameModel.(BoardViewModel); !ok || cmd == nil {
		t.Fatalf("board model not started: %T", m.GameModel)
	}
	if got := prefs.values["alice/"+game.GamePreferenceKey]; got != string(game.GameBoard) {
		t.Fatalf("stored preference %q, want Board", got)
	}

	model, _ = m.Update(QuitGameMsg{})
	m = model.(ControllerModel)
	if m.CurrentScreen != IntroScreen || m.GameModel != nil {
		t.Fatalf("quit should return to the intro, got screen %d", m.CurrentScreen)
	}
	if got := selectedGame(t, m.IntroModel); got != game.GameBoard {
		t.Fatalf("intro should remember Board, got %s", got)
	}
}

func TestControllerSnakeFlow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewControllerModel(ctx, "alice", Dependencies{}, 80, 24)

	model, _ := m.Update(IntroSubmitMsg(game.GameSnake))
	m = model.(ControllerModel)
	if m.CurrentScreen != SetupScreen {
		t.Fatalf("got screen %d, want setup", m.CurrentScreen)
	}

	model, cmd := m.Update(SetupSubmitMsg{Name: "alice", Mode: game.ModeAutopilot})
	m = model.(ControllerModel)
	if m.CurrentScreen != SnakeScreen || cmd == nil {
		t.Fatalf("got screen %d, want snake", m.CurrentScreen)
	}
	view, ok := m.GameModel.(GameViewModel)
	if !ok {
		t.Fatalf("got %T, want GameViewModel", m.GameModel)
	}
	if view.snapshot.PlayerName != "alice" || view.snapshot.Mode != game.ModeAutopilot {
		t.Fatalf("unexpected initial snapshot %+v", view.snapshot)
	}
	if m.stopGame == nil {
		t.Fatal("game loop should be cancellable")
	}

	model, _ = m.Update(QuitGameMsg{})
	m = model.(ControllerModel)
	if m.CurrentScreen != IntroScreen || m.stopGame != nil {
		t.Fatal("quit should stop the game and return to the intro")
	}
}

type staticLeaderboard struct {
	scores []game.Score
}

func (l staticLeaderboard) GetHighScores(_ context.Context, limit, offset int) ([]game.Score, error) {
	return l.scores, nil
}

func TestControllerLeaderboardFromIntro(t *testing.T) {
	board := staticLeaderboard{scores: []game.Score{{SessionID: "s1", PlayerName: "ada", Eaten: 12, Length: 13}}}
	m := NewControllerModel(context.Background(), "alice", Dependencies{Leaderboard: board}, 100, 40)

	model, cmd := m.Update(ShowLeaderboardMsg{})
	m = model.(ControllerModel)
	if m.CurrentScreen != LeaderboardScreen || cmd == nil {
		t.Fatalf("got screen %d, want leaderboard", m.CurrentScreen)
	}

	model, _ = m.Update(cmd())
	m = model.(ControllerModel)
	if view := m.View(); !strings.Contains(view, "ada") || !strings.Contains(view, "HIGH SCORES") {
		t.Fatalf("leaderboard should list the stored scores, got:\n%s", view)
	}

	model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should leave the leaderboard")
	}
	model, _ = model.Update(cmd())
	m = model.(ControllerModel)
	if m.CurrentScreen != IntroScreen || m.GameModel != nil {
		t.Fatalf("got screen %d, want intro", m.CurrentScreen)
	}
}

func TestLeaderboardWithoutStore(t *testing.T) {
	model := NewLeaderboardModel(nil, 100, 40)
	updated, _ := model.Update(model.Init()())
	if !strings.Contains(updated.View(), "No scores yet.") {
		t.Fatalf("got:\n%s", updated.View())
	}
}

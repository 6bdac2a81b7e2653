package ui

import (
	"context"
	"time"

	"github.com/Mshel/arcade/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	SnakeScreen
	BoardScreen
	LeaderboardScreen
)

// Messages for screen transitions.
type (
	IntroSubmitMsg game.GameKind

	SetupSubmitMsg struct {
		Name string
		Mode game.DeviceMode
	}

	// ShowLeaderboardMsg opens the high scores from the game select screen.
	ShowLeaderboardMsg struct{}

	// QuitGameMsg leaves the current game and returns to the game select screen.
	QuitGameMsg struct{}
)

type Preferences interface {
	GetPreference(ctx context.Context, owner, key string) (string, bool, error)
	SetPreference(ctx context.Context, owner, key, value string) error
}

type Leaderboard interface {
	GetHighScores(ctx context.Context, limit, offset int) ([]game.Score, error)
}

// Dependencies are shared by every controller; any of them may be nil.
type Dependencies struct {
	Preferences Preferences
	Leaderboard Leaderboard
	ScoreKeeper *game.ScoreKeeper
	// NewAutopilot builds the strategy for one session.
	NewAutopilot func() (game.Strategy, error)
	Branding     Branding
}

const storeTimeout = 2 * time.Second

type ControllerModel struct {
	CurrentScreen Screen
	Owner         string

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int

	ctx      context.Context
	deps     Dependencies
	stopGame context.CancelFunc
}

// NewControllerModel builds the screens for one player; owner keys their
// stored preferences. Game loops started by the controller stop with ctx.
func NewControllerModel(ctx context.Context, owner string, deps Dependencies, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		Owner:         owner,
		IntroModel:    NewIntroModel(loadGamePreference(ctx, deps.Preferences, owner), screenWidth, screenHeight),
		SetupModel:    NewInitialSetupModel(owner, screenWidth, screenHeight),
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
		ctx:           ctx,
		deps:          deps,
	}
}

func loadGamePreference(ctx context.Context, prefs Preferences, owner string) game.GameKind {
	if prefs == nil {
		return game.GameSnake
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	value, ok, err := prefs.GetPreference(ctx, owner, game.GamePreferenceKey)
	if err != nil {
		log.Error("Could not load game preference", "owner", owner, "error", err)
		return game.GameSnake
	}
	if !ok {
		return game.GameSnake
	}
	kind, err := game.ParseGameKind(value)
	if err != nil {
		log.Warn("Ignoring stored game preference", "owner", owner, "value", value)
	}
	return kind
}

func (m ControllerModel) saveGamePreference(kind game.GameKind) {
	if m.deps.Preferences == nil {
		return
	}
	ctx, cancel := context.WithTimeout(m.ctx, storeTimeout)
	defer cancel()

	if err := m.deps.Preferences.SetPreference(ctx, m.Owner, game.GamePreferenceKey, string(kind)); err != nil {
		log.Error("Could not store game preference", "owner", m.Owner, "error", err)
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case SnakeScreen, BoardScreen, LeaderboardScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.endGame()
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.IntroModel, cmd = m.IntroModel.Update(msg)
		cmds = append(cmds, cmd)
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case IntroSubmitMsg:
		kind := game.GameKind(msg)
		m.saveGamePreference(kind)
		m.endGame()
		m.IntroModel = NewIntroModel(kind, m.ScreenWidth, m.ScreenHeight)

		if kind == game.GameBoard {
			return m.startBoard()
		}
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		return m.startSnake(msg)

	case ShowLeaderboardMsg:
		m.endGame()
		m.GameModel = NewLeaderboardModel(m.deps.Leaderboard, m.ScreenWidth, m.ScreenHeight)
		m.CurrentScreen = LeaderboardScreen
		return m, m.GameModel.Init()

	case QuitGameMsg:
		m.endGame()
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case SnakeScreen, BoardScreen, LeaderboardScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	}
	return m, cmd
}

func (m ControllerModel) startBoard() (tea.Model, tea.Cmd) {
	walk, err := game.NewBoardWalk(game.KnightPath)
	if err != nil {
		log.Error("Could not build the board", "error", err)
		m.CurrentScreen = IntroScreen
		return m, nil
	}

	m.GameModel = NewBoardModel(walk, m.deps.Branding, m.ScreenWidth, m.ScreenHeight)
	m.CurrentScreen = BoardScreen
	return m, m.GameModel.Init()
}

func (m ControllerModel) startSnake(msg SetupSubmitMsg) (tea.Model, tea.Cmd) {
	opts := game.DefaultSessionOptions(msg.Name, msg.Mode)
	if m.deps.NewAutopilot != nil {
		strategy, err := m.deps.NewAutopilot()
		if err != nil {
			log.Error("Autopilot unavailable, using the default strategy", "error", err)
			strategy = game.DefaultStrategy{}
		}
		opts.Autopilot = strategy
	} else {
		opts.Autopilot = game.DefaultStrategy{}
	}

	session, err := game.NewSession(opts)
	if err != nil {
		log.Error("Could not start a snake session", "player", msg.Name, "error", err)
		return m, nil
	}

	gm := game.NewGameManager(session)
	if m.deps.ScoreKeeper != nil {
		gm.OnFinish = m.deps.ScoreKeeper.Submit
	}

	initial := session.Snapshot()
	ctx, cancel := context.WithCancel(m.ctx)
	m.stopGame = cancel
	go func() {
		defer cancel()
		gm.StartGameLoop(ctx)
		if closer, ok := opts.Autopilot.(interface{ Close() }); ok {
			closer.Close()
		}
	}()

	m.GameModel = NewGameModel(gm, initial, m.deps.Leaderboard, m.deps.Branding, m.ScreenWidth, m.ScreenHeight)
	m.CurrentScreen = SnakeScreen
	return m, m.GameModel.Init()
}

// endGame stops the running game loop, if any.
func (m *ControllerModel) endGame() {
	if m.stopGame != nil {
		m.stopGame()
		m.stopGame = nil
	}
	m.GameModel = nil
}

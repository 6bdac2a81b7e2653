package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/arcade/internal/game"
	"github.com/Mshel/arcade/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}
	settings := game.LoadSettings()
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", settings.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	scores, err := game.NewHighScoreService(settings.DBPath)
	if err != nil {
		log.Fatal("Could not open high scores", "path", settings.DBPath, "error", err)
	}
	defer scores.Close()

	keeper := game.NewScoreKeeper(scores)
	defer keeper.Close()

	arcade := &arcadeHandler{
		deps: ui.Dependencies{
			Preferences:  scores,
			Leaderboard:  scores,
			ScoreKeeper:  keeper,
			NewAutopilot: game.NewAutopilotFactory(settings.AutopilotScript),
			Branding:     newBranding(settings),
		},
	}
	limiter := newConnectionLimiter(settings.MaxConnectionsPer)

	addr := net.JoinHostPort(settings.Host, settings.Port)
	sshServer, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(settings.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(arcade.viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware,
		),
	)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", addr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

type arcadeHandler struct {
	deps ui.Dependencies
}

func (h *arcadeHandler) viewHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()
	model := ui.NewControllerModel(s.Context(), s.User(), h.deps, pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

func newBranding(settings game.Settings) ui.Branding {
	branding := ui.NewBranding(settings.Sponsor)
	theme, ok := ui.ThemeByName(settings.Theme)
	if !ok {
		log.Warn("Unknown theme, using the default", "theme", settings.Theme)
		return branding
	}
	branding.SetTheme(theme)
	return branding
}

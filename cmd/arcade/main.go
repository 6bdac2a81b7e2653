package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mshel/arcade/internal/game"
	"github.com/Mshel/arcade/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}
	settings := game.LoadSettings()
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// The alt screen owns stdout, so logs go to a file when asked for.
	if path := os.Getenv("ARCADE_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetLevel(log.FatalLevel)
	}

	scores, err := game.NewHighScoreService(settings.DBPath)
	if err != nil {
		fmt.Printf("could not open high scores: %v\n", err)
		os.Exit(1)
	}
	defer scores.Close()

	keeper := game.NewScoreKeeper(scores)
	defer keeper.Close()

	owner := os.Getenv("USER")
	if owner == "" {
		owner = "player"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := ui.Dependencies{
		Preferences:  scores,
		Leaderboard:  scores,
		ScoreKeeper:  keeper,
		NewAutopilot: game.NewAutopilotFactory(settings.AutopilotScript),
		Branding:     newBranding(settings),
	}

	p := tea.NewProgram(
		ui.NewControllerModel(ctx, owner, deps, 0, 0),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/boardroom/internal/commentary"
	"github.com/csheth/boardroom/internal/config"
	"github.com/csheth/boardroom/internal/feed"
	"github.com/csheth/boardroom/internal/kanban"
	"github.com/csheth/boardroom/internal/logging"
	"github.com/csheth/boardroom/internal/meeting"
	"github.com/csheth/boardroom/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	minutesPath := flag.String("minutes", "", "override the minutes archive path")
	intervalMS := flag.Int("interval-ms", 0, "override the mock stream cadence in milliseconds")
	logPath := flag.String("log", "", "override the log file path")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	if *configPath != "" {
		os.Setenv(config.EnvConfigPath, *configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("invalid configuration:", err)
		os.Exit(1)
	}
	if *minutesPath != "" {
		cfg.MinutesPath = *minutesPath
	}
	if *intervalMS > 0 {
		cfg.UpdateIntervalMS = *intervalMS
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid configuration:", err)
		os.Exit(1)
	}

	absMinutes, err := filepath.Abs(cfg.MinutesPath)
	if err != nil {
		fmt.Println("failed to resolve minutes path:", err)
		os.Exit(1)
	}

	logger, closeLogs, err := logging.New(logging.Config{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		fmt.Println("logging disabled:", err)
	}
	defer func() { _ = closeLogs() }()

	store := meeting.NewStore(meeting.Seed()...)
	gen := commentary.New(nil)
	sim := feed.New(store, gen, nil, cfg.InsightProbability)

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Store:          store,
			Feed:           sim,
			Gen:            gen,
			Board:          kanban.NewBoard(),
			UpdateInterval: cfg.UpdateInterval(),
			PreviewLength:  cfg.PreviewLength,
			MinutesPath:    absMinutes,
			Logger:         logger,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

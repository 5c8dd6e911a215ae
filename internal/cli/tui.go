package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"pomodo7o/internal/core/cycle"
	"pomodo7o/internal/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
)

const tuiLogFile = "tui.log"

func runTUI(session Session) error {
	logger := session.Logger

	// The alternate screen owns the terminal; logs go next to the settings.
	logPath := filepath.Join(filepath.Dir(session.SettingsPath), tuiLogFile)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)

	orchestrator, err := cycle.Build(session.Settings.CycleConfig(), cycle.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("build cycle: %w", err)
	}
	defer orchestrator.Close()

	model := tui.NewModel(orchestrator, orchestrator.Subscribe(eventBuffer))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

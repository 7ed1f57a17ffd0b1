package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing and playback control.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	cfg := r.configFor(cmd)

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := filepath.Join(os.TempDir(), "slimctl-tui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	r.logger = shared.NewLogger(logFile)

	syncer, channel, err := r.newSyncer(cfg)
	if err != nil {
		return err
	}
	defer channel.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go syncer.Run(runCtx)

	model := ui.New(r.store, syncer, r.logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

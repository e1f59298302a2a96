package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/cheatmenu/internal/clipboard"
	"github.com/atomicstack/cheatmenu/internal/logging/events"
	"github.com/atomicstack/cheatmenu/internal/store"
	"github.com/atomicstack/cheatmenu/internal/ui"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SourcePath string
	Width      int
	Height     int
	ShowFooter bool
	PrintOnly  bool
	Group      string
}

// Output is where a finished session hands its selection.
type Output struct {
	Clipboard clipboard.Writer
	Stdout    io.Writer
	Stderr    io.Writer
}

// DefaultOutput uses the system clipboard and the process streams.
func DefaultOutput() Output {
	return Output{Clipboard: clipboard.System(), Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if cfg.SourcePath == "" {
		return fmt.Errorf("source path: %w", store.ErrNoPath)
	}
	nav := state.New(cfg.SourcePath)
	model := ui.NewModel(nav, options(cfg))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Exit("killed")
		return nil
	}
	if err != nil {
		return err
	}
	if err := model.Err(); err != nil {
		return err
	}
	return Finish(nav, cfg, DefaultOutput())
}

func options(cfg Config) ui.Options {
	return ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Focus:        cfg.Group,
		TickInterval: ui.DefaultTickInterval,
	}
}

// Finish delivers the selected command, if any, once the program has exited.
func Finish(nav *state.Model, cfg Config, out Output) error {
	command, ok := nav.Selection()
	if !ok {
		events.App.Exit("quit")
		return nil
	}
	copied, err := clipboard.Deliver(out.Clipboard, out.Stdout, command, cfg.PrintOnly)
	if err != nil {
		return err
	}
	events.App.Selected(command, copied)
	if copied && out.Stderr != nil {
		fmt.Fprintf(out.Stderr, "Copied to clipboard: %s\n", command)
	}
	events.App.Exit("selected")
	return nil
}

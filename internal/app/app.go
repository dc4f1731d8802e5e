package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/logging/events"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/atomicstack/pkgpick/internal/tab"
	"github.com/atomicstack/pkgpick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width    int
	Height   int
	TickRate time.Duration
	Manager  string
}

// Result is what the picker produced when the program exited.
type Result struct {
	Submitted bool
	Selection selection.Selection
}

// NewModel wires the tab model, event handler and UI model together without
// starting a terminal program.
func NewModel(cfg Config, cat catalog.Catalog) (*ui.Model, *event.Handler, error) {
	tabs, err := tab.New(cat)
	if err != nil {
		return nil, nil, fmt.Errorf("build tabs: %w", err)
	}
	mgr, err := pkgmgr.Resolve(cfg.Manager)
	if err != nil {
		return nil, nil, err
	}
	handler := event.NewHandler(cfg.TickRate)
	model := ui.NewModel(ui.Options{
		Tabs:    tabs,
		Events:  handler,
		Manager: mgr,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	return model, handler, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, cat catalog.Catalog) (Result, error) {
	model, handler, err := NewModel(cfg, cat)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		handler.Stop()
		handler.Wait()
	}()

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("run terminal program: %w", err)
	}
	return finish(final)
}

func finish(final tea.Model) (Result, error) {
	m, ok := final.(*ui.Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	if err := m.Err(); err != nil {
		events.App.Error(err)
		return Result{}, fmt.Errorf("event source: %w", err)
	}
	res := Result{Submitted: m.Submitted()}
	if res.Submitted {
		res.Selection = m.Selection()
	}
	events.App.Exit(res.Submitted, res.Selection.Len())
	return res, nil
}

package update

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/remindlist/internal/presenter"
	"github.com/sandeepkv93/remindlist/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Quitting    bool
	LastError   error

	ctx       context.Context
	presenter *presenter.ReminderList
	screen    *screen
	logger    *slog.Logger
	keys      keyMap
	now       func() time.Time
	// Bubble components used for rich TUI controls
	commandInput textinput.Model
	helpModel    help.Model
	helpViewport viewport.Model
	storeLabel   string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddReminderMsg struct{}

type UpdateReminderMsg struct{}

type DeleteReminderMsg struct{}

type SelectReminderMsg struct {
	Index int
}

type Options struct {
	Logger *slog.Logger
	// StoreLabel is shown in the header, e.g. "sqlite ~/.local/share/...".
	StoreLabel string
	Now        func() time.Time
}

// NewModel loads the reminder list once and wires the presenter to the
// screen. A failing initial load is returned to the caller.
func NewModel(ctx context.Context, store storage.Repository, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := newScreen()
	m := Model{
		ctx:        ctx,
		screen:     s,
		logger:     logger,
		keys:       defaultKeyMap(),
		now:        now,
		storeLabel: opts.StoreLabel,
		presenter:  presenter.New(store, s, logger),
	}
	m.initBubbleComponents()
	if err := m.presenter.Initialize(ctx); err != nil {
		return Model{}, fmt.Errorf("initialize reminder list: %w", err)
	}
	m.screen.setFocus(focusList)
	return m, nil
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpViewport = viewport.New(80, 16)
	m.helpViewport.SetContent(m.renderHelpMarkdown())
}

// Presenter exposes the underlying presenter, mainly for tests.
func (m Model) Presenter() *presenter.ReminderList {
	return m.presenter
}

// Alert is the message currently blocking input, if any.
func (m Model) Alert() string {
	return m.screen.alert
}

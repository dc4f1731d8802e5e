package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/pkgpick/internal/event"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/atomicstack/pkgpick/internal/tab"
	"github.com/atomicstack/pkgpick/internal/theme"
	uistate "github.com/atomicstack/pkgpick/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

const infoDuration = 3 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Tabs    *tab.Model
	Events  *event.Handler
	Manager pkgmgr.Manager
	Keys    *KeyMap
	// Width and Height pin the frame size; zero follows the terminal.
	Width  int
	Height int
}

// Model implements the Bubble Tea model for the tabbed picker.
type Model struct {
	running   bool
	submitted bool
	current   tab.Tab
	filtering bool

	summaryOffset int

	tabs    *tab.Model
	levels  map[tab.Tab]*level
	events  *event.Handler
	ctx     context.Context
	keys    KeyMap
	manager pkgmgr.Manager

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	fatal      error
	now        func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker on the Intro tab with every category's
// selection seeded from the catalog defaults.
func NewModel(opts Options) *Model {
	m := &Model{
		running: true,
		current: tab.Intro,
		tabs:    opts.Tabs,
		levels:  make(map[tab.Tab]*level),
		events:  opts.Events,
		ctx:     context.Background(),
		keys:    DefaultKeyMap(),
		manager: opts.Manager,
		now:     time.Now,
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.tabs != nil {
		for _, t := range tab.All() {
			if !t.IsCategory() {
				continue
			}
			m.levels[t] = uistate.NewLevel(t.String(), m.tabs.Label(t), m.tabs.Entries(t))
		}
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(eventMsg{}):          m.handleEventMsg,
		reflect.TypeOf(eventErrMsg{}):       m.handleEventErrMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// Running reports whether the picker is still accepting events.
func (m *Model) Running() bool { return m.running }

// Submitted reports whether the user confirmed the Summary tab.
func (m *Model) Submitted() bool { return m.submitted }

// CurrentTab returns the tab on screen.
func (m *Model) CurrentTab() tab.Tab { return m.current }

// Filtering reports whether typed keys edit the filter.
func (m *Model) Filtering() bool { return m.filtering }

// Err returns the event source failure that stopped the picker, if any.
func (m *Model) Err() error { return m.fatal }

// Level returns the checklist state of a category tab.
func (m *Model) Level(t tab.Tab) *uistate.Level { return m.levels[t] }

// Selection returns the checked entries of every category tab in tab order.
func (m *Model) Selection() selection.Selection {
	var items []selection.Item
	for _, t := range tab.All() {
		l := m.levels[t]
		if l == nil {
			continue
		}
		for _, item := range l.SelectedItems() {
			items = append(items, selection.Item{Category: l.Title, Name: item.ID})
		}
	}
	return selection.New(m.manager, items)
}

func (m *Model) currentLevel() *level {
	return m.levels[m.current]
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoDuration)
}

func (m *Model) expireInfo() {
	if m.infoMsg == "" || m.infoExpire.IsZero() {
		return
	}
	if m.now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

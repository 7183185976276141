package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
)

// footerHeight is the number of rows below the playfield.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a terminal session.
//
// Terminals report key presses but not releases, so a key counts as held
// for a short window after its last press. Auto-repeat keeps it held.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	canvas   *canvas
	audio    *statusAudio
	keys     DriveKeyMap
	help     help.Model
	held     map[core.Action]time.Time // Action -> hold deadline
	holdFor  time.Duration
	tickRate int
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for a fresh session sized to the terminal.
func NewModel(cfg config.GameConfig, runtime core.RuntimeConfig, width, height int) Model {
	audio := &statusAudio{}

	// The simulation always runs in world units; only the canvas knows about cells.
	runtime.ScreenW = float64(cfg.Window.Width)
	runtime.ScreenH = float64(cfg.Window.Height)
	session := game.New(cfg, game.Metrics{}, runtime, audio)

	screen := core.NewScreen(width, max(height-footerHeight, 1))

	h := help.New()
	h.Width = width

	return Model{
		session:  session,
		screen:   screen,
		canvas:   newCanvas(screen, cfg, session.Kinds()),
		audio:    audio,
		keys:     DefaultDriveKeyMap(),
		help:     h,
		held:     make(map[core.Action]time.Time),
		holdFor:  time.Duration(cfg.Terminal.KeyHoldMs) * time.Millisecond,
		tickRate: cfg.Terminal.TickRate,
	}
}

// Session returns the session this model drives.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey marks the pressed key's action as held until now+holdFor.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.held[action] = now.Add(m.holdFor)
	return m, nil
}

// handleTick steps the session by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.session.Step(dt, m.input(now))
	return m, tickCmd(m.tickRate)
}

// input returns the actions still held at now.
func (m Model) input(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for action, until := range m.held {
		if now.Before(until) {
			in.Set(action)
		} else {
			delete(m.held, action)
		}
	}
	return in
}

// View renders the playfield and footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	footer := m.help.View(m.keys)
	if status := m.audio.status(); status != "" {
		footer = status + "  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/desert-dash/internal/registry"
)

// ID is the frontend's registry identifier.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays a session in the terminal.
type Frontend struct{}

func (*Frontend) ID() string { return ID }
func (*Frontend) Title() string { return "Terminal rendition, no assets needed" }

// TerminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func TerminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// Run plays one session in the alternate screen until the player quits.
func (*Frontend) Run(opts registry.Options) error {
	w, h := TerminalSize()
	model := NewModel(opts.Config, opts.Runtime, w, h)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	start := time.Now()
	opts.Logger.Info("session started", "frontend", ID, "seed", opts.Runtime.Seed, "size", fmt.Sprintf("%dx%d", w, h))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	st := model.Session().State()
	opts.Logger.Info("terminal closed", "score", st.Score, "crashed", st.GameOver)
	opts.RecordRun(ID, st, time.Since(start))
	return nil
}

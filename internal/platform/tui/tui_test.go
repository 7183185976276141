package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
	"github.com/vovakirdan/desert-dash/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDriveKeyMapAction(t *testing.T) {
	keys := DefaultDriveKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a is not steering", runeKey('a'), core.ActionNone},
		{"d is not steering", runeKey('d'), core.ActionNone},
		{"w is not steering", runeKey('w'), core.ActionNone},
		{"s is not steering", runeKey('s'), core.ActionNone},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
		{"x", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func newTestCanvas() (*canvas, *core.Screen) {
	cfg := config.DefaultGameConfig()
	screen := core.NewScreen(80, 24) // 10x25 world units per cell
	kinds := game.KindsFromConfig(cfg.Obstacles.Kinds, nil)
	return newCanvas(screen, cfg, kinds), screen
}

func TestCanvasBackground(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawBackground()

	assert.Equal(t, '░', s.Get(0, 0), "desert left of the road")
	assert.Equal(t, core.ColorSand, s.GetCell(0, 0).Color)
	assert.Equal(t, '│', s.Get(15, 0), "left road edge at x=150")
	assert.Equal(t, '│', s.Get(62, 23), "right road edge at x=620")
	assert.Equal(t, ' ', s.Get(30, 10), "road surface")
	assert.Equal(t, '░', s.Get(79, 23), "desert right of the road")
}

func TestCanvasVehicleCells(t *testing.T) {
	c, s := newTestCanvas()

	// 60x110 car: columns 37..42, rows 18..23
	c.DrawVehicle(core.V(370, 470))

	assert.Equal(t, '▲', s.Get(37, 18))
	assert.Equal(t, '▲', s.Get(42, 23))
	assert.Equal(t, ' ', s.Get(43, 18))
	assert.Equal(t, ' ', s.Get(37, 17))
}

func TestCanvasObstacleUsesKindGlyph(t *testing.T) {
	c, s := newTestCanvas()

	// Sedan scaled to 60x108: columns 30..35, rows 0..4
	c.DrawObstacle(0, core.V(300, 0), 0.3)

	cell := s.GetCell(30, 0)
	assert.Equal(t, '▓', cell.Rune)
	assert.Equal(t, core.ColorRed, cell.Color)
	assert.Equal(t, '▓', s.Get(35, 4))
	assert.Equal(t, ' ', s.Get(36, 0))
	assert.Equal(t, ' ', s.Get(30, 5))

	c.DrawObstacle(1, core.V(500, 300), 0.3)
	assert.Equal(t, '█', s.Get(50, 12))
	assert.Equal(t, core.ColorCyan, s.GetCell(50, 12).Color)

	// Unknown kinds draw nothing
	c.DrawObstacle(7, core.V(0, 0), 0.3)
	assert.Equal(t, ' ', s.Get(0, 0))
}

func TestCanvasTinyBoxCoversOneCell(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawExplosion(core.V(401, 301), 0.001)

	assert.Equal(t, '*', s.Get(40, 12))
}

func TestCanvasHUDPlacement(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawText(core.V(10, 10), "Score: 3")

	assert.Equal(t, 'S', s.Get(1, 0))
	assert.Equal(t, '3', s.Get(8, 0))
	assert.Equal(t, core.ColorBrightWhite, s.GetCell(1, 0).Color)
}

func TestCanvasTextAnchorStaysOnScreen(t *testing.T) {
	c, s := newTestCanvas()

	c.DrawText(core.V(5000, 5000), "X")
	c.DrawText(core.V(-300, -300), "Y")

	assert.Equal(t, 'X', s.Get(79, 23))
	assert.Equal(t, 'Y', s.Get(0, 0))
}

func newTestModel() Model {
	return NewModel(config.DefaultGameConfig(), core.RuntimeConfig{Seed: 1}, 80, 25)
}

func TestModelKeyHoldWindow(t *testing.T) {
	m := newTestModel()
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = next.(Model)

	assert.True(t, m.input(t0.Add(100*time.Millisecond)).Has(core.ActionLeft))
	assert.False(t, m.input(t0.Add(200*time.Millisecond)).Has(core.ActionLeft), "hold window is 150ms")

	// Expired actions are forgotten
	assert.Empty(t, m.held)
}

func TestModelTickUsesElapsedTime(t *testing.T) {
	m := newTestModel()
	t0 := time.Unix(1000, 0)

	next, cmd := m.handleTick(t0)
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.Equal(t, 0.0, m.Session().Elapsed(), "first tick has no previous time")
	assert.Equal(t, 1, m.Session().State().Score, "first frame spawns")

	next, _ = m.handleTick(t0.Add(500 * time.Millisecond))
	m = next.(Model)
	assert.InDelta(t, 0.5, m.Session().Elapsed(), 1e-9)
	assert.Equal(t, 2, m.Session().Frames())
}

func TestModelSteersWhileHeld(t *testing.T) {
	m := newTestModel()
	t0 := time.Unix(1000, 0)
	startX := m.Session().Vehicle().X

	m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)
	next, _ := m.handleTick(t0)
	m = next.(Model)
	next, _ = m.handleTick(t0.Add(100 * time.Millisecond))
	m = next.(Model)

	assert.InDelta(t, startX+20, m.Session().Vehicle().X, 1e-9)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(runeKey('q'))

	assert.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel()
	m.handleTick(time.Unix(1000, 0))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	m = next.(Model)

	assert.Equal(t, 40, m.screen.Width())
	assert.Equal(t, 10, m.screen.Height(), "one row is kept for the footer")
	assert.Equal(t, 1, m.Session().State().Score)
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	m.Init()

	view := m.View()

	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "♪ playing")
	assert.Contains(t, view, "quit")
}

func TestStatusAudio(t *testing.T) {
	a := &statusAudio{}
	assert.Equal(t, "", a.status())

	a.PlayMusic()
	assert.Equal(t, "♪ playing", a.status())

	a.StopMusic()
	a.PlayCrash()
	assert.Equal(t, "💥 CRASH", a.status())
}

func TestRunRows(t *testing.T) {
	runs := []storage.Run{
		{Score: 42, Duration: 12500 * time.Millisecond, EndReason: storage.EndCrash, Frontend: "window"},
		{Score: 3, Duration: time.Second, EndReason: storage.EndClosed, Frontend: "tui"},
	}

	rows := RunRows(runs)

	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "42", rows[0][1])
	assert.Equal(t, "12.5s", rows[0][2])
	assert.Equal(t, "crash", rows[0][3])
	assert.Equal(t, "window", rows[0][4])
	assert.Equal(t, "closed", rows[1][3])
}

func TestScoreboardEmptyLog(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	assert.Contains(t, m.View(), "No runs recorded yet.")
}

func TestScoreboardSwitchView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, score := range []int{5, 40, 12} {
		_, err := store.SaveRun(storage.Run{Frontend: "window", Score: score, EndReason: storage.EndCrash})
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	require.Len(t, m.runs, 3)
	assert.Equal(t, ViewTop, m.view)
	assert.Equal(t, 40, m.runs[0].Score)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	assert.Equal(t, ViewRecent, m.view)
	assert.Equal(t, 12, m.runs[0].Score)
	assert.Contains(t, m.View(), "RECENT RUNS")
}

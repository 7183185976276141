package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/desert-dash/internal/game"
	"github.com/vovakirdan/desert-dash/internal/registry"
)

// ID is the frontend's registry identifier.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays a session in a desktop window.
type Frontend struct{}

func (*Frontend) ID() string { return ID }
func (*Frontend) Title() string { return "Desktop window with textures and sound" }

// Run loads the assets, opens the window and blocks until it is closed.
func (*Frontend) Run(opts registry.Options) error {
	cfg := opts.Config
	logger := opts.Logger

	assets, err := LoadAssets(cfg)
	if err != nil {
		return err
	}
	logger.Debug("assets loaded", "dir", cfg.Assets.Dir, "kinds", len(cfg.Obstacles.Kinds))

	speaker, err := NewSpeaker(audio.NewContext(sampleRate), assets, logger)
	if err != nil {
		return err
	}
	defer speaker.Close()

	session := game.New(cfg, assets.Metrics(), opts.Runtime, speaker)

	w, h := cfg.Window.Width, cfg.Window.Height
	g := newWindowGame(session, newCanvas(assets, cfg.HUD.FontSize, float64(w), float64(h)), w, h, logger)
	if opts.Debug {
		g.overlay = newOverlay(h)
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	start := time.Now()
	session.Start()
	logger.Info("session started", "frontend", ID, "seed", opts.Runtime.Seed)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	st := session.State()
	logger.Info("window closed", "score", st.Score, "crashed", st.GameOver)
	opts.RecordRun(ID, st, time.Since(start))
	return nil
}

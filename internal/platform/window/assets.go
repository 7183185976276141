// Package window runs Desert Dash in a desktop window using ebiten.
package window

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // PNG textures
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/game"
)

const sampleRate = 44100

// sources holds decoded assets before any GPU resources exist.
type sources struct {
	background image.Image
	vehicle    image.Image
	obstacles  []image.Image // Indexed by ObstacleKind
	explosion  image.Image
	music      *vorbis.Stream
	crash      []byte // 16-bit stereo PCM
	font       *text.GoTextFaceSource
}

// Assets are the textures, sounds and font a window session uses.
type Assets struct {
	Background *ebiten.Image
	Vehicle    *ebiten.Image
	Explosion  *ebiten.Image
	Obstacles  *intmap.Map[game.ObstacleKind, *ebiten.Image]
	Music      *vorbis.Stream
	Crash      []byte
	Font       *text.GoTextFaceSource

	kindCount int
}

// LoadAssets reads every asset named in cfg. The first missing or
// undecodable file aborts the load with an error naming it.
func LoadAssets(cfg config.GameConfig) (*Assets, error) {
	src, err := readSources(cfg)
	if err != nil {
		return nil, err
	}

	a := &Assets{
		Background: ebiten.NewImageFromImage(src.background),
		Vehicle:    ebiten.NewImageFromImage(src.vehicle),
		Explosion:  ebiten.NewImageFromImage(src.explosion),
		Obstacles:  intmap.New[game.ObstacleKind, *ebiten.Image](len(src.obstacles)),
		Music:      src.music,
		Crash:      src.crash,
		Font:       src.font,
		kindCount:  len(src.obstacles),
	}
	for i, img := range src.obstacles {
		a.Obstacles.Put(game.ObstacleKind(i), ebiten.NewImageFromImage(img))
	}
	return a, nil
}

// Metrics reports the texture sizes the session lays out with.
func (a *Assets) Metrics() game.Metrics {
	m := game.Metrics{
		Vehicle:   imageSize(a.Vehicle),
		Explosion: imageSize(a.Explosion),
		Obstacles: make([]core.Vec, a.kindCount),
	}
	for i := range m.Obstacles {
		if img, ok := a.Obstacles.Get(game.ObstacleKind(i)); ok {
			m.Obstacles[i] = imageSize(img)
		}
	}
	return m
}

func imageSize(img *ebiten.Image) core.Vec {
	b := img.Bounds()
	return core.V(float64(b.Dx()), float64(b.Dy()))
}

// readSources loads and decodes files in a fixed order: textures,
// then sounds, then the font.
func readSources(cfg config.GameConfig) (*sources, error) {
	ac := cfg.Assets
	var src sources
	var err error

	if src.background, err = readImage(ac.AssetPath(ac.Background)); err != nil {
		return nil, err
	}
	if src.vehicle, err = readImage(ac.AssetPath(ac.Vehicle)); err != nil {
		return nil, err
	}
	if w, road := float64(src.vehicle.Bounds().Dx()), cfg.Corridor.Right-cfg.Corridor.Left; w >= road {
		return nil, fmt.Errorf("window: vehicle %s is %gpx wide, corridor is only %gpx", ac.Vehicle, w, road)
	}
	for _, k := range cfg.Obstacles.Kinds {
		img, err := readImage(ac.AssetPath(k.Texture))
		if err != nil {
			return nil, err
		}
		src.obstacles = append(src.obstacles, img)
	}
	if src.explosion, err = readImage(ac.AssetPath(ac.Explosion)); err != nil {
		return nil, err
	}

	if src.music, err = readMusic(ac.AssetPath(ac.Music)); err != nil {
		return nil, err
	}
	if src.crash, err = readClip(ac.AssetPath(ac.Crash)); err != nil {
		return nil, err
	}

	data, err := readFile(ac.AssetPath(ac.Font))
	if err != nil {
		return nil, err
	}
	if src.font, err = text.NewGoTextFaceSource(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("window: cannot parse font %s: %w", ac.Font, err)
	}

	return &src, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot load %s: %w", path, err)
	}
	return data, nil
}

func readImage(path string) (image.Image, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode image %s: %w", path, err)
	}
	return img, nil
}

func readMusic(path string) (*vorbis.Stream, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode music %s: %w", path, err)
	}
	return stream, nil
}

func readClip(path string) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("window: cannot read sound %s: %w", path, err)
	}
	return pcm, nil
}

package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Speaker plays the session's music and crash clip through ebiten audio.
type Speaker struct {
	music  *audio.Player
	crash  *audio.Player
	logger *log.Logger
}

// NewSpeaker creates players for the loaded sounds. The music loops
// for as long as it plays.
func NewSpeaker(ctx *audio.Context, a *Assets, logger *log.Logger) (*Speaker, error) {
	loop := audio.NewInfiniteLoop(a.Music, a.Music.Length())
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("window: cannot create music player: %w", err)
	}

	return &Speaker{
		music:  music,
		crash:  ctx.NewPlayerFromBytes(a.Crash),
		logger: logger,
	}, nil
}

// PlayMusic starts or resumes the background loop.
func (s *Speaker) PlayMusic() {
	s.music.Play()
}

// StopMusic pauses the background loop.
func (s *Speaker) StopMusic() {
	s.music.Pause()
}

// PlayCrash plays the crash clip from the start.
func (s *Speaker) PlayCrash() {
	if err := s.crash.SetPosition(0); err != nil && s.logger != nil {
		s.logger.Warn("cannot rewind crash sound", "error", err)
	}
	s.crash.Play()
}

// Close releases both players.
func (s *Speaker) Close() {
	s.music.Close()
	s.crash.Close()
}

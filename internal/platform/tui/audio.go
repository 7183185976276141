package tui

// statusAudio stands in for sound in the terminal: it tracks what
// would be playing so the footer can show it.
type statusAudio struct {
	music   bool
	crashed bool
}

func (a *statusAudio) PlayMusic() { a.music = true }
func (a *statusAudio) StopMusic() { a.music = false }
func (a *statusAudio) PlayCrash() { a.crashed = true }

// status returns the footer's sound indicator.
func (a *statusAudio) status() string {
	switch {
	case a.crashed:
		return "💥 CRASH"
	case a.music:
		return "♪ playing"
	}
	return ""
}

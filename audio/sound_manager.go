package audio

import (
	"fmt"
)

// Sound names
const (
	Eat      = "eat"
	GameOver = "gameover"
	PowerUp  = "powerup"
	Music    = "music"
)

// musicGain keeps the loop under the effects
const musicGain = 0.3

// Backend loads and plays generated tones
type Backend interface {
	Load(name string, tone Tone) error
	Play(name string)
	Stop(name string)
	IsPlaying(name string) bool
	SetVolume(name string, volume float32)
	Close()
}

type SoundManager struct {
	backend Backend
	muted   bool
	volume  float32
}

// NewSoundManager generates every sound and hands it to the backend
func NewSoundManager(backend Backend, volume float32, muted bool) (*SoundManager, error) {
	sm := &SoundManager{
		backend: backend,
		muted:   muted,
		volume:  volume,
	}

	tones := []struct {
		name string
		gen  func() Tone
	}{
		{Eat, EatTone},
		{GameOver, GameOverTone},
		{PowerUp, PowerUpTone},
		{Music, MusicLoop},
	}
	for _, t := range tones {
		if err := backend.Load(t.name, t.gen()); err != nil {
			return nil, fmt.Errorf("audio: load %s: %w", t.name, err)
		}
	}
	sm.SetVolume(volume)
	return sm, nil
}

func (sm *SoundManager) play(name string) {
	if !sm.muted {
		sm.backend.Play(name)
	}
}

func (sm *SoundManager) PlayEatSound()      { sm.play(Eat) }
func (sm *SoundManager) PlayGameOverSound() { sm.play(GameOver) }
func (sm *SoundManager) PlayPowerUpSound()  { sm.play(PowerUp) }
func (sm *SoundManager) PlayMusic()         { sm.play(Music) }

func (sm *SoundManager) StopMusic() {
	sm.backend.Stop(Music)
}

// Update restarts the background loop when it runs out. Call once per frame.
func (sm *SoundManager) Update() {
	if sm.muted {
		return
	}
	if !sm.backend.IsPlaying(Music) {
		sm.backend.Play(Music)
	}
}

func (sm *SoundManager) ToggleMute() {
	sm.muted = !sm.muted
	if sm.muted {
		sm.backend.Stop(Music)
	} else {
		sm.backend.Play(Music)
	}
}

func (sm *SoundManager) SetVolume(volume float32) {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	sm.volume = volume
	sm.backend.SetVolume(Eat, volume)
	sm.backend.SetVolume(GameOver, volume)
	sm.backend.SetVolume(PowerUp, volume)
	sm.backend.SetVolume(Music, volume*musicGain)
}

func (sm *SoundManager) IsMuted() bool {
	return sm.muted
}

func (sm *SoundManager) Volume() float32 {
	return sm.volume
}

func (sm *SoundManager) Close() {
	sm.backend.Close()
}

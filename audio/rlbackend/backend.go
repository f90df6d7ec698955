package rlbackend

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/audio"
)

// Backend plays tones through the raylib audio device
type Backend struct {
	sounds map[string]rl.Sound
}

func New() (*Backend, error) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, errors.New("audio device not ready")
	}
	return &Backend{sounds: make(map[string]rl.Sound)}, nil
}

func (b *Backend) Load(name string, tone audio.Tone) error {
	if len(tone.Samples) == 0 {
		return fmt.Errorf("empty tone %q", name)
	}
	wave := rl.NewWave(uint32(tone.Frames), uint32(tone.SampleRate), 16, uint32(tone.Channels), tone.Bytes())
	if old, ok := b.sounds[name]; ok {
		rl.UnloadSound(old)
	}
	b.sounds[name] = rl.LoadSoundFromWave(wave)
	return nil
}

func (b *Backend) Play(name string) {
	if s, ok := b.sounds[name]; ok {
		rl.PlaySound(s)
	}
}

func (b *Backend) Stop(name string) {
	if s, ok := b.sounds[name]; ok {
		rl.StopSound(s)
	}
}

func (b *Backend) IsPlaying(name string) bool {
	s, ok := b.sounds[name]
	return ok && rl.IsSoundPlaying(s)
}

func (b *Backend) SetVolume(name string, volume float32) {
	if s, ok := b.sounds[name]; ok {
		rl.SetSoundVolume(s, volume)
	}
}

func (b *Backend) Close() {
	for name, s := range b.sounds {
		rl.UnloadSound(s)
		delete(b.sounds, name)
	}
	rl.CloseAudioDevice()
}

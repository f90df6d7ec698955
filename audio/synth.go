package audio

import (
	"encoding/binary"
	"math"
)

const SampleRate = 48000

// Tone is 16-bit PCM, interleaved when Channels > 1
type Tone struct {
	Frames     int
	SampleRate int
	Channels   int
	Samples    []int16
}

// Bytes returns the samples as little-endian PCM
func (t Tone) Bytes() []byte {
	out := make([]byte, len(t.Samples)*2)
	for i, s := range t.Samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// Seconds is the playback length
func (t Tone) Seconds() float64 {
	if t.SampleRate == 0 {
		return 0
	}
	return float64(t.Frames) / float64(t.SampleRate)
}

// sweep renders a mono sine whose frequency and amplitude are functions of time
func sweep(frames int, freq, amp func(t float64) float64) Tone {
	samples := make([]int16, frames)
	for i := range samples {
		t := float64(i) / SampleRate
		samples[i] = clamp16(math.Sin(2*math.Pi*freq(t)*t) * amp(t))
	}
	return Tone{Frames: frames, SampleRate: SampleRate, Channels: 1, Samples: samples}
}

func clamp16(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// EatTone is a short downward chirp
func EatTone() Tone {
	return sweep(4800,
		func(t float64) float64 { return 800 - t*2000 },
		func(t float64) float64 { return 15000 * (1 - t*10) })
}

// GameOverTone falls in pitch and fades over half a second
func GameOverTone() Tone {
	return sweep(24000,
		func(t float64) float64 { return 400 * (1 - t) },
		func(t float64) float64 { return 20000 * (1 - t*2) })
}

// PowerUpTone is a rising chirp
func PowerUpTone() Tone {
	return sweep(9600,
		func(t float64) float64 { return 400 + t*1000 },
		func(t float64) float64 { return 18000 * (1 - t*5) })
}

var musicNotes = [...]float64{220, 247, 262, 294}

// MusicLoop is a two second stereo arpeggio, one note per half second
func MusicLoop() Tone {
	const frames = 96000
	samples := make([]int16, frames*2)
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		note := musicNotes[int(t*2)%len(musicNotes)]
		v := clamp16(math.Sin(2*math.Pi*note*t) * 8000)
		samples[i*2] = v
		samples[i*2+1] = v
	}
	return Tone{Frames: frames, SampleRate: SampleRate, Channels: 2, Samples: samples}
}

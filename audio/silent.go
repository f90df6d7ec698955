package audio

// Silent is a Backend that plays nothing. Used when no audio device is available.
type Silent struct{}

func (Silent) Load(string, Tone) error   { return nil }
func (Silent) Play(string)               {}
func (Silent) Stop(string)               {}
func (Silent) IsPlaying(string) bool     { return false }
func (Silent) SetVolume(string, float32) {}
func (Silent) Close()                    {}

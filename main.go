package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"snake-game/audio"
	"snake-game/audio/rlbackend"
	"snake-game/config"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/ui"
)

func main() {
	configPath := flag.String("config", "snake.yaml", "Path to the YAML tuning file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	mute := flag.Bool("mute", false, "Start with sound muted")
	dataDir := flag.String("data", "data", "Directory for saved stats")
	watch := flag.Bool("watch", true, "Reload the config file when it changes")
	flag.Parse()

	log.SetPrefix("[snake] ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("using default config: %v", err)
	}
	overrides := flagOverrides{seed: *seed, mute: *mute, dataDir: *dataDir}
	overrides.apply(&cfg)

	seedValue := cfg.Gameplay.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(uint64(seedValue)))
	log.Printf("grid %dx%d, seed %d", cfg.Grid().Width, cfg.Grid().Height, seedValue)

	stats := manager.NewStateManager(cfg.DataDir)

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	sounds := newSoundManager(cfg)
	defer sounds.Close()

	var watcher *config.Watcher
	if *watch {
		if watcher, err = config.NewWatcher(*configPath); err != nil {
			log.Printf("config watch disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	renderer := ui.NewRenderer(cfg.Window.CellSize, cfg.Gameplay.EffectDisplayWindow)
	session := startSession(cfg, rng, sounds)
	newHighScore := false

	for !rl.WindowShouldClose() {
		in := ui.ReadInput()
		if in.ToggleMute {
			sounds.ToggleMute()
		}
		if session.IsGameOver() && in.Restart {
			session = startSession(cfg, rng, sounds)
			newHighScore = false
		}
		session.SetDirection(in.Direction)

		if watcher != nil {
			if _, ok := watcher.Poll(); ok {
				cfg = reloadConfig(*configPath, cfg, overrides, renderer, sounds)
			}
		}

		if !session.IsGameOver() {
			sounds.Update()
		}

		ev := session.Update(frameDuration())
		if ev.Ate {
			sounds.PlayEatSound()
		}
		if ev.Collected {
			sounds.PlayPowerUpSound()
		}
		if ev.Died {
			sounds.PlayGameOverSound()
			sounds.StopMusic()
			newHighScore = endSession(session, stats)
		}

		renderer.Draw(session, ui.HUD{
			HighScore:    stats.GetHighScore(),
			NewHighScore: newHighScore,
			Muted:        sounds.IsMuted(),
		})
	}

	if err := stats.Save(); err != nil {
		log.Printf("save stats: %v", err)
	}
}

type flagOverrides struct {
	seed    int64
	mute    bool
	dataDir string
}

// apply copies explicitly set flags over the file config
func (o flagOverrides) apply(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Gameplay.Seed = o.seed
		case "mute":
			cfg.Audio.Muted = o.mute
		case "data":
			cfg.DataDir = o.dataDir
		}
	})
}

func newSoundManager(cfg config.Config) *audio.SoundManager {
	var backend audio.Backend = audio.Silent{}
	if b, err := rlbackend.New(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		backend = b
	}

	sounds, err := audio.NewSoundManager(backend, cfg.Audio.Volume, cfg.Audio.Muted)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		backend.Close()
		sounds, _ = audio.NewSoundManager(audio.Silent{}, cfg.Audio.Volume, cfg.Audio.Muted)
	}
	return sounds
}

func startSession(cfg config.Config, rng *rand.Rand, sounds *audio.SoundManager) *game.Session {
	session := game.NewSession(cfg.Settings(), rng)
	sounds.PlayMusic()
	log.Printf("session %s started", session.UUID)
	return session
}

func endSession(session *game.Session, stats *manager.StateManager) bool {
	newHigh := stats.RecordSession(session.UUID, session.StartTime, session.EndTime, session.Score())
	log.Printf("session %s over: score %d, %s collision, %.1fs",
		session.UUID, session.Score(), session.LastCollision(), session.ElapsedTime())
	if err := stats.Save(); err != nil {
		log.Printf("save stats: %v", err)
	}
	return newHigh
}

// reloadConfig applies a changed tuning file. Window geometry is fixed for the process;
// gameplay values take effect from the next session.
func reloadConfig(path string, current config.Config, o flagOverrides, r *ui.Renderer, sounds *audio.SoundManager) config.Config {
	next, err := config.Load(path)
	if err != nil {
		log.Printf("config reload: %v", err)
		return current
	}
	o.apply(&next)
	next.Window = current.Window

	r.SetEffectWindow(next.Gameplay.EffectDisplayWindow)
	sounds.SetVolume(next.Audio.Volume)
	log.Printf("config reloaded from %s", path)
	return next
}

func frameDuration() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}

package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/config"
	"github.com/automoto/balloon/fonts"
	"github.com/automoto/balloon/scenes"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts scenes.WorldOptions) *Game {
	if err := fonts.LoadFont(fonts.HUD, goregular.TTF, config.HUD.FontSize); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := fonts.LoadFont(fonts.HUDSmall, goregular.TTF, config.HUD.FontSize/2); err != nil {
		log.Printf("Warning: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelsDir := flag.String("levels", config.Level.Dir, "directory holding the level .tmx files")
	soundsDir := flag.String("sounds", "assets", "directory the sound clip paths are relative to")
	tuning := flag.String("tuning", "", "optional TOML file overriding tuning values")
	watch := flag.Bool("watch", false, "reload level files when they change on disk")
	level := flag.Int("level", config.Level.FirstLevel, "level index to start on")
	debug := flag.Bool("debug", false, "draw collision outlines")
	flag.Parse()

	config.Debug.DrawGrid = *debug
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	project, err := leveldata.LoadProject(os.DirFS(*levelsDir), ".", leveldata.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
	}
	log.Printf("Loaded %d levels from %s", len(project.Names()), *levelsDir)

	opts := scenes.WorldOptions{
		Project:    project,
		StartLevel: *level,
	}

	// Initialize persistence; without it settings simply aren't saved
	store, err := systems.OpenSettingsStore()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	opts.Store = store

	audioCtx := audio.NewContext(config.Audio.SampleRate)
	sink := assets.NewAudioSink(audioCtx, os.DirFS(*soundsDir))
	clips := append([]string{config.Sound.InflateClip, config.Sound.DeathClip}, config.Sound.ImpactClips...)
	if err := sink.Preload(clips...); err != nil {
		log.Printf("Warning: some cues are unavailable: %v", err)
	}
	opts.Sink = sink

	if *watch {
		watcher, err := assets.WatchLevels(*levelsDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *levelsDir, err)
		} else {
			opts.Watcher = watcher
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := NewGame(opts)
	defer func() {
		if c, ok := game.scene.(interface{ Close() }); ok {
			c.Close()
		}
	}()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

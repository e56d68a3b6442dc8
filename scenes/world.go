package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/sim"
	"github.com/automoto/balloon/systems"
	"github.com/automoto/balloon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldOptions are the collaborators the world scene runs with. Sink, Store and
// Watcher are optional.
type WorldOptions struct {
	Project    *leveldata.Project
	Sink       *assets.AudioSink
	Store      *systems.SettingsStore
	Watcher    *assets.LevelWatcher
	StartLevel int
}

// WorldScene plays the levels of a project with keyboard input.
type WorldScene struct {
	opts     WorldOptions
	sim      *sim.Simulation
	settings func()
	once     sync.Once
}

func NewWorldScene(opts WorldOptions) *WorldScene {
	return &WorldScene{opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	ws.reloadChangedLevels()
	ws.settings()
	systems.UpdateDebug(ws.sim.ECS)
	ws.sim.Step()
	if ws.opts.Sink != nil {
		ws.opts.Sink.Update(cfg.TickSeconds())
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.sim == nil {
		return
	}
	ws.sim.ECS.Draw(screen)
}

// Close releases audio voices and the level watcher.
func (ws *WorldScene) Close() {
	if ws.opts.Sink != nil {
		ws.opts.Sink.Close()
	}
	if ws.opts.Watcher != nil {
		_ = ws.opts.Watcher.Close()
	}
}

func (ws *WorldScene) configure() {
	loader := factory.NewLoader(ws.opts.Project)
	loader.Art = assets.LevelArt(ws.opts.Project.FS(), leveldata.DefaultOptions())

	var sink components.AudioSink
	if ws.opts.Sink != nil {
		sink = ws.opts.Sink
	}
	ws.sim = sim.New(loader, &systems.KeyboardInput{}, sink)

	saved, err := ws.opts.Store.Load()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplySavedSettings(ws.sim.ECS, saved)
	if saved != nil && saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	update := systems.UpdateSettings(ws.opts.Store)
	ws.settings = func() { update(ws.sim.ECS) }

	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawEntities)
	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawPlayerMarker)
	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawDebug)
	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.sim.ECS.AddRenderer(cfg.Default, systems.DrawFade)

	if err := ws.sim.Start(ws.opts.StartLevel); err != nil {
		log.Printf("Can't load level %d: %v", ws.opts.StartLevel, err)
	}
}

// reloadChangedLevels re-reads edited level files and restarts the current level
// when it was one of them.
func (ws *WorldScene) reloadChangedLevels() {
	if ws.opts.Watcher == nil {
		return
	}
	current := systems.LevelIdentifier(ws.sim.Progress().CurrentLevel)
	for _, id := range ws.opts.Watcher.Drain() {
		if err := ws.opts.Project.Reload(id); err != nil {
			log.Printf("Can't reload %s: %v", id, err)
			continue
		}
		log.Printf("Reloaded %s", id)
		if id == current {
			systems.RequestLevel(ws.sim.ECS, ws.sim.Progress().CurrentLevel)
		}
	}
}

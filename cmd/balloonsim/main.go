// Command balloonsim replays a YAML input script through the game simulation
// without a window or audio device and prints the resulting progress.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/leveldata"
	"github.com/automoto/balloon/sim"
	"github.com/automoto/balloon/systems"
	"github.com/automoto/balloon/systems/factory"
)

func main() {
	levelsDir := flag.String("levels", config.Level.Dir, "directory holding the level .tmx files")
	scriptPath := flag.String("script", "", "YAML input script to replay")
	tuning := flag.String("tuning", "", "optional TOML file overriding tuning values")
	realtime := flag.Bool("realtime", false, "step at the game's tick rate instead of as fast as possible")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	f, err := os.Open(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to open script: %v", err)
	}
	script, err := sim.ParseScript(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	project, err := leveldata.LoadProject(os.DirFS(*levelsDir), ".", leveldata.DefaultOptions())
	if err != nil {
		log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
	}

	input := script.Input()
	sink := sim.NewSilentSink()
	s := sim.New(factory.NewLoader(project), input, sink)
	if err := s.Start(script.Level); err != nil {
		log.Fatalf("Failed to start level %d: %v", script.Level, err)
	}

	ticks := 0
	if *realtime {
		loop := sim.NewGameLoop(s, config.Physics.TickRate, func(tick int) bool {
			ticks = tick
			return input.Advance()
		})
		if input.Advance() {
			loop.Run()
		}
	} else {
		for input.Advance() {
			s.Step()
			ticks++
		}
	}

	p := s.Progress()
	fmt.Printf("ticks: %d\n", ticks)
	fmt.Printf("level: %s\n", systems.LevelIdentifier(p.CurrentLevel))
	fmt.Printf("deaths: %d\n", p.Deaths)
	fmt.Printf("air: %.0f%%\n", p.Air*100)
	fmt.Printf("cues: %d\n", sink.Total())
}

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/armageddon/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log gameplay events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningName := flag.String("tuning", prefabs.DefaultTuningFile, "tuning file (name in prefabs/ or a path)")
	assetsDir := flag.String("assets", "", "directory of PNG sprites that override the generated art")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	watch := flag.Bool("watch", false, "reload tuning and scripts when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Config{
		TuningName: *tuningName,
		AssetsDir:  *assetsDir,
		Seed:       *seed,
		Debug:      *debug,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatalf("armageddon: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(game.FieldSize())
	ebiten.SetWindowTitle("Armageddon")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

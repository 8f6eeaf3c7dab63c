package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/armageddon/assets"
	"github.com/milk9111/armageddon/prefabs"
	"github.com/milk9111/armageddon/system"
)

type Game struct {
	screen tcell.Screen
	world  *system.World
	keys   *heldKeys
	view   viewport
	debug  bool
}

func NewGame(world *system.World, debug bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &Game{
		screen: screen,
		world:  world,
		keys:   newHeldKeys(keyHoldFrames),
		debug:  debug,
	}
	g.resize()
	return g, nil
}

func (g *Game) resize() {
	cols, rows := g.screen.Size()
	g.view = newViewport(g.world.Tuning.Field.Width, g.world.Tuning.Field.Height, cols, rows-hudRows)
}

// handleInput returns false when the terminal asks to stop.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a, ok := actionFor(ev); ok {
			g.keys.press(a)
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	}
	return true
}

func (g *Game) run(fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			state, err := g.world.Update(g.keys.input())
			if err != nil {
				return err
			}
			g.keys.tick()
			for _, evt := range g.world.Events().Drain() {
				if g.debug {
					log.Printf("event %s", evt)
				}
			}
			if state == system.StateEnded {
				return nil
			}
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	debug := flag.Bool("debug", false, "log gameplay events to armageddon-tty.log")
	tuningName := flag.String("tuning", prefabs.DefaultTuningFile, "tuning file (name in prefabs/ or a path)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	if *debug {
		f, err := os.Create("armageddon-tty.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	opts := []system.Option{}
	if *seed != 0 {
		opts = append(opts, system.WithSeed(*seed))
	}
	if tuning.Enemy.FireScript != "" {
		policy, err := system.LoadScriptFirePolicy(tuning.Enemy.FireScript)
		if err != nil {
			log.Printf("fire script: %v, using the default fire rule", err)
		} else {
			opts = append(opts, system.WithFirePolicy(policy))
		}
	}

	world, err := system.NewWorld(tuning, assets.NewLibrary(""), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(world, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	runErr := game.run(tuning.FPS)
	game.cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "armageddon: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Reached level %d\n", world.Level)
}

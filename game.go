package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/armageddon/assets"
	"github.com/milk9111/armageddon/prefabs"
	"github.com/milk9111/armageddon/system"
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modePaused
)

// Config is the command-line configuration of the ebiten front end.
type Config struct {
	TuningName string
	AssetsDir  string
	Seed       int64
	Debug      bool
	Watch      bool
}

type Game struct {
	cfg     Config
	tuning  prefabs.Tuning
	library *assets.Library

	surface    *Surface
	hud        *HUD
	background *ebiten.Image
	menu       *ebitenui.UI
	pause      *ebitenui.UI

	world   *system.World
	watcher *prefabs.Watcher
	mode    mode
	quit    bool

	// sessions counts started sessions so a fixed seed still varies
	// between restarts.
	sessions int64
}

func NewGame(cfg Config) (*Game, error) {
	tuning, err := prefabs.LoadTuning(cfg.TuningName)
	if err != nil {
		return nil, err
	}
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		tuning:  tuning,
		library: assets.NewLibrary(cfg.AssetsDir),
		surface: NewSurface(),
		hud:     hud,
	}
	g.applyTuning()
	g.menu = NewMenuUI(g)
	g.pause = NewPauseUI(g)

	if cfg.Watch {
		dirs := watchDirs(cfg.TuningName)
		if len(dirs) == 0 {
			log.Printf("watch: no tuning directory on disk, hot reload disabled")
		} else if w, err := prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
			log.Printf("watch: reloading from %v", dirs)
		}
	}
	return g, nil
}

// FieldSize returns the play field size in pixels.
func (g *Game) FieldSize() (int, int) {
	f := g.field()
	return int(f.Width), int(f.Height)
}

// field is the size the screen is laid out at. A running session keeps the
// field it started with; reloaded sizes wait for the session to end.
func (g *Game) field() prefabs.FieldSpec {
	if g.world != nil {
		return g.world.Tuning.Field
	}
	return g.tuning.Field
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reload()

	switch g.mode {
	case modeMenu:
		g.menu.Update()
	case modePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePlaying
			return nil
		}
		g.pause.Update()
	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.mode = modePaused
			return nil
		}
		state, err := g.world.Update(readInput())
		if err != nil {
			return err
		}
		g.flushEvents()
		if state == system.StateEnded {
			g.endSession()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.background, nil)

	switch g.mode {
	case modeMenu:
		g.menu.Draw(screen)
	case modePlaying, modePaused:
		g.surface.Begin(screen)
		g.world.Draw(g.surface)
		g.hud.Draw(screen, g.world)
		if g.mode == modePaused {
			g.pause.Draw(screen)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	f := g.field()
	return f.Width, f.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// startSession replaces any running session with a fresh one.
func (g *Game) startSession() {
	opts := []system.Option{}
	if g.cfg.Seed != 0 {
		opts = append(opts, system.WithSeed(g.cfg.Seed+g.sessions))
	}
	policy, err := g.firePolicy()
	if err != nil {
		log.Printf("fire script: %v, using the default fire rule", err)
	} else {
		opts = append(opts, system.WithFirePolicy(policy))
	}

	w, err := system.NewWorld(g.tuning, g.library, opts...)
	if err != nil {
		log.Printf("start session: %v", err)
		return
	}
	g.sessions++
	g.world = w
	g.mode = modePlaying
	if g.cfg.Debug {
		log.Printf("session %d started", g.sessions)
	}
}

func (g *Game) endSession() {
	if g.cfg.Debug && g.world != nil {
		log.Printf("session %d ended at level %d", g.sessions, g.world.Level)
	}
	g.world = nil
	g.mode = modeMenu
	if w, h := g.FieldSize(); g.background.Bounds().Dx() != w || g.background.Bounds().Dy() != h {
		g.applyTuning()
	}
}

func (g *Game) firePolicy() (system.FirePolicy, error) {
	if g.tuning.Enemy.FireScript == "" {
		return system.RandomFirePolicy{}, nil
	}
	return system.LoadScriptFirePolicy(g.tuning.Enemy.FireScript)
}

func (g *Game) flushEvents() {
	for _, evt := range g.world.Events().Drain() {
		if g.cfg.Debug {
			log.Printf("event %s", evt)
		}
	}
}

// applyTuning pushes tuning values that live outside the simulation.
func (g *Game) applyTuning() {
	ebiten.SetTPS(g.tuning.FPS)
	w, h := g.FieldSize()
	g.background = ebiten.NewImageFromImage(assets.Background(w, h))
}

// reload applies pending tuning and script changes. Invalid files are
// logged and the previous values stay in effect.
func (g *Game) reload() {
	var specChanged, scriptChanged bool
	for _, name := range g.watcher.Pending() {
		switch {
		case prefabs.IsSpecFile(name):
			specChanged = true
		case prefabs.IsScriptFile(name):
			scriptChanged = true
		}
	}

	if specChanged {
		t, err := prefabs.LoadTuning(g.cfg.TuningName)
		if err != nil {
			log.Printf("reload: %v", err)
		} else {
			resized := t.Field != g.field()
			g.tuning = t
			if g.world != nil {
				if err := g.world.SetTuning(t); err != nil {
					log.Printf("reload: %v", err)
				}
			}
			if resized && g.world == nil {
				g.applyTuning()
			} else {
				ebiten.SetTPS(t.FPS)
			}
			scriptChanged = true
			log.Printf("reload: applied %s", g.cfg.TuningName)
		}
	}

	if scriptChanged && g.world != nil {
		policy, err := g.firePolicy()
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		g.world.SetFirePolicy(policy)
	}
}

// watchDirs returns the on-disk directories holding the tuning file and
// the fire scripts.
func watchDirs(tuningName string) []string {
	candidates := []string{
		filepath.Join("prefabs", "scripts"),
		"prefabs",
	}
	if _, err := os.Stat(tuningName); err == nil {
		candidates = append(candidates, filepath.Dir(tuningName))
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, dir := range candidates {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			continue
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			continue
		}
		seen[abs] = true
		dirs = append(dirs, abs)
	}
	return dirs
}

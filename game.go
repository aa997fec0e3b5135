package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roofhopper/config"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
	"github.com/milk9111/roofhopper/ecs/entity"
	"github.com/milk9111/roofhopper/ecs/system"
	"github.com/milk9111/roofhopper/prefabs"
	"golang.org/x/image/colornames"
)

var errQuit = errors.New("quit")

type gameMode int

const (
	modePlaying gameMode = iota
	modePaused
	modeFallen
)

func (m gameMode) String() string {
	switch m {
	case modePlaying:
		return "playing"
	case modePaused:
		return "paused"
	case modeFallen:
		return "fallen"
	default:
		return "unknown"
	}
}

type GameOptions struct {
	Config     *config.GameConfiguration
	ConfigPath string
	Level      string
	Debug      bool
	Watch      bool
}

type Game struct {
	opts GameOptions
	cfg  *config.GameConfiguration

	scene     *entity.Scene
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	mode     gameMode
	pauseUI  *ebitenui.UI
	fallenUI *ebitenui.UI
	quit     bool

	watcher *prefabs.Watcher
}

// NewGame loads the level and fails if it cannot be built; the game never
// starts on a partially built scene.
func NewGame(opts GameOptions) (*Game, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("game: missing configuration")
	}

	g := &Game{opts: opts, cfg: opts.Config}
	if err := g.loadScene(g.cfg); err != nil {
		return nil, err
	}
	g.pauseUI = NewOverlayUI(g, "Paused", true)
	g.fallenUI = NewOverlayUI(g, "You fell!", false)

	if opts.Watch {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) loadScene(cfg *config.GameConfiguration) error {
	scene, err := entity.LoadLevel(cfg, g.opts.Level)
	if err != nil {
		return fmt.Errorf("game: load scene: %w", err)
	}
	g.cfg = cfg
	g.scene = scene
	g.scheduler = system.NewTickScheduler(scene.Player, scene.Camera, scene.Physics, cfg)
	g.render = system.NewRenderSystem(scene.Camera)
	g.mode = modePlaying
	return nil
}

func (g *Game) startWatcher() {
	dirs := []string{"prefabs", "levels", config.DefaultDir}
	if g.opts.ConfigPath != "" {
		dirs = append(dirs, filepath.Dir(g.opts.ConfigPath))
	}

	var existing []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	if len(existing) == 0 {
		log.Warn("watch: nothing on disk to watch", "dirs", dirs)
		return
	}

	watcher, err := prefabs.NewWatcher(existing...)
	if err != nil {
		log.Error("watch: start watcher", "err", err)
		return
	}
	g.watcher = watcher
	log.Info("watching for changes", "dirs", existing)
}

// Restart rebuilds the current level from the current configuration.
func (g *Game) Restart() {
	if err := g.loadScene(g.cfg); err != nil {
		log.Error("restart failed", "err", err)
		return
	}
	log.Info("level restarted")
}

// Resume leaves the pause overlay.
func (g *Game) Resume() {
	if g.mode == modePaused {
		g.mode = modePlaying
	}
}

// reload reads config, prefabs and the level from disk again. A failed
// reload keeps the running scene.
func (g *Game) reload(changed string) {
	cfg := g.cfg
	if isConfigFile(changed, g.opts.ConfigPath) {
		loaded, err := config.Load(g.opts.ConfigPath)
		if err != nil {
			log.Error("reload config failed, keeping current scene", "file", changed, "err", err)
			return
		}
		cfg = loaded
	}
	if err := g.loadScene(cfg); err != nil {
		log.Error("reload failed, keeping current scene", "file", changed, "err", err)
		return
	}
	log.Info("reloaded", "file", changed)
}

func isConfigFile(changed, configPath string) bool {
	if configPath != "" {
		return filepath.Clean(changed) == filepath.Clean(configPath)
	}
	return filepath.Base(changed) == config.DefaultFile
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("watch error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch g.mode {
		case modePlaying:
			g.mode = modePaused
		case modePaused:
			g.mode = modePlaying
		}
	}

	switch g.mode {
	case modePaused:
		g.pauseUI.Update()
		return nil
	case modeFallen:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.Restart()
			return nil
		}
		g.fallenUI.Update()
		return nil
	}

	g.tick()
	return nil
}

// tick runs one simulation step and reacts to the events it raised.
func (g *Game) tick() {
	w := g.scene.World
	g.scheduler.Update(w)

	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventPlayerOutOfBounds:
			if g.mode == modePlaying {
				log.Info("hopper fell", "y", evt.Data)
				g.mode = modeFallen
			}
		default:
			log.Debug("unhandled event", "type", evt.Type)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.render.Draw(g.scene.World, screen)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.debugLine())
	}

	switch g.mode {
	case modePaused:
		g.pauseUI.Draw(screen)
	case modeFallen:
		g.fallenUI.Draw(screen)
	}
}

func (g *Game) debugLine() string {
	hopper, ok := ecs.Get(g.scene.World, g.scene.Player, component.HopperComponent)
	if !ok {
		return "no hopper"
	}
	transform, _ := ecs.Get(g.scene.World, g.scene.Player, component.TransformComponent)
	return fmt.Sprintf("TPS: %.0f  mode: %s\nstate: %s  jump: %.0f  nudge: %.0f\nx: %.1f  y: %.1f",
		ebiten.ActualTPS(), g.mode, hopper.State.Name(), hopper.JumpForce, hopper.NudgeForce, transform.X, transform.Y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Close stops the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

var overlayTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

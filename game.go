package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
	"github.com/milk9111/propanim/ecs/entity"
	"github.com/milk9111/propanim/ecs/system"
	"github.com/milk9111/propanim/prefabs"
)

const (
	baseWidth  = 640
	baseHeight = 480
	tickRate   = 60
)

type Game struct {
	frames int
	paused bool
	log    zerolog.Logger

	scenePath string
	watcher   *prefabs.Watcher

	world  *ecs.World
	anims  *anim.World
	curves *easing.Registry
	scene  *entity.Scene
	pixel  *ebiten.Image
}

func NewGame(scenePath string, watch bool, log zerolog.Logger) (*Game, error) {
	w := ecs.NewWorld()
	curves := easing.NewRegistry()
	aw := anim.NewWorld(w, anim.WithLogger(log), anim.WithEasing(curves))
	w.AddSystem(system.NewAnimationSystem(w, aw))
	w.AddSystem(system.NewEventLogSystem(log))

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(colornames.White)

	g := &Game{
		log:       log,
		scenePath: scenePath,
		world:     w,
		anims:     aw,
		curves:    curves,
		pixel:     pixel,
	}
	if err := g.reload(); err != nil {
		return nil, err
	}

	if watch {
		dirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
		if dir := filepath.Dir(scenePath); dir != "." {
			dirs = append(dirs, dir)
		}
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadScene() (*prefabs.SceneSpec, error) {
	if _, err := os.Stat(g.scenePath); err == nil {
		return prefabs.LoadSceneFile(g.scenePath)
	}
	return prefabs.LoadScene(g.scenePath)
}

// reload rebuilds the scene from its spec. The running scene is kept when
// the new one fails to load or build.
func (g *Game) reload() error {
	spec, err := g.loadScene()
	if err != nil {
		return err
	}
	scene, err := entity.ReplaceScene(g.world, g.anims, g.curves, g.scene, spec, entity.SceneOptions{
		Stopped: system.PushStopped(g.world),
	})
	g.scene = scene
	if err != nil {
		return err
	}
	g.log.Info().Str("scene", spec.Name).Int("objects", len(scene.Entities)).Int("animations", g.anims.Len()).Msg("scene loaded")
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.log.Debug().Str("file", name).Msg("change detected")
		if err := g.reload(); err != nil {
			g.log.Error().Err(err).Msg("reload failed")
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn().Err(err).Msg("watch error")
		}
	default:
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.reload(); err != nil {
			g.log.Error().Err(err).Msg("reload failed")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.scene != nil {
			for _, e := range g.scene.Entities {
				g.anims.CancelAllAnimations(e)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	}

	if !g.paused {
		g.world.Update(1.0 / tickRate)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	ecs.ForEach2(g.world, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(float64(s.Size[0]*t.Scale[0]), float64(s.Size[1]*t.Scale[1]))
		op.GeoM.Rotate(float64(t.Euler()[2]) * math.Pi / 180)
		op.GeoM.Translate(float64(t.Position[0]), float64(t.Position[1]))
		a := s.Tint[3]
		op.ColorScale.Scale(s.Tint[0]*a, s.Tint[1]*a, s.Tint[2]*a, a)
		screen.DrawImage(g.pixel, op)
		if s.Frame != 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(s.Frame), int(t.Position[0]), int(t.Position[1]))
		}
	})

	stats := g.anims.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  animations: %d/%d  instances: %d\nR reload  Space cancel  P pause",
		ebiten.ActualFPS(), stats.Animations, stats.Capacity, stats.Instances))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

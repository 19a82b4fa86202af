package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/ballpit/common"
	"github.com/milk9111/ballpit/physics"
	"github.com/milk9111/ballpit/scenarios"
)

// stepMs is the fixed tick fed into the physics world. Ebiten calls
// Update at 60 Hz, so one Update is one simulation tick.
const stepMs = 1000.0 / 60

// escapeFactor times the boundary diagonal is how far a body may drift
// from the boundary center before it gets removed.
const escapeFactor = 10.0

var background = color.RGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}

var palette = []color.RGBA{
	colornames.Skyblue,
	colornames.Coral,
	colornames.Mediumseagreen,
	colornames.Gold,
	colornames.Orchid,
	colornames.Sandybrown,
	colornames.Turquoise,
}

type Game struct {
	world        *physics.World
	scenario     *scenarios.Scenario
	scenarioName string
	spawner      spawner
	watcher      *scenarios.Watcher
	pauseUI      *ebitenui.UI
	rng          *rand.Rand

	paused      bool
	quit        bool
	debug       bool
	clipboardOK bool
	simTime     float64
}

func NewGame(scenarioName string, debug bool) (*Game, error) {
	sc, err := scenarios.Load(scenarioName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scenario:     sc,
		scenarioName: scenarioName,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		debug:        debug,
	}
	g.world = physics.NewWorld(
		physics.Vec2{X: sc.Gravity.X, Y: sc.Gravity.Y},
		physics.NewAABB(0, 0, common.BaseWidth, common.BaseHeight),
	)

	g.spawner, err = newSpawner(sc.Spawner, g.rng)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenarioName, err)
	}

	if w, err := scenarios.NewWatcher("scenarios"); err != nil {
		log.Printf("scenario hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// Close releases the scenario watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollScenarioReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.spawnAtCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	if g.spawner != nil && g.world.Len() < g.scenario.Spawner.MaxBodies {
		if req, ok := g.spawner.update(stepMs / 1000); ok {
			g.spawn(req)
		}
	}

	g.world.Step(stepMs)
	g.simTime += stepMs / 1000
	g.removeEscaped()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	// Draw only bodies whose box intersects the visible boundary.
	screenBox := physics.NewAABB(0, 0, common.BaseWidth, common.BaseHeight)
	for _, b := range g.world.Bodies() {
		box, ok := b.Bounds()
		if !ok || !box.Overlaps(screenBox) {
			continue
		}
		c, ok := b.(*physics.Circle)
		if !ok {
			continue
		}
		pos := c.Position()
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(c.Radius()), c.Color(), true)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"scenario: %s    bodies: %d    sim: %.1fs    FPS: %.2f",
			g.scenario.Name, g.world.Len(), g.simTime, ebiten.ActualFPS(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// spawnAtCursor drops a body at the mouse position with a small random
// velocity and a palette color.
func (g *Game) spawnAtCursor() {
	if g.world.Len() >= g.scenario.Spawner.MaxBodies {
		return
	}
	x, y := ebiten.CursorPosition()
	cfg := g.scenario.Spawner
	g.spawn(spawnRequest{
		pos:    physics.Vec2{X: float64(x), Y: float64(y)},
		vel:    physics.Vec2{X: common.Lerp(-120, 120, g.rng.Float64())},
		radius: common.Lerp(cfg.MinRadius, cfg.MaxRadius, g.rng.Float64()),
	})
}

func (g *Game) spawn(req spawnRequest) {
	c, err := g.world.SpawnCircle(req.pos, req.vel, req.radius)
	if err != nil {
		log.Printf("spawn rejected: %v", err)
		return
	}
	c.SetBaseColor(palette[g.rng.Intn(len(palette))])
}

// removeEscaped drops bodies that drifted far outside the boundary so
// runaway bodies don't accumulate forever.
func (g *Game) removeEscaped() {
	bounds := g.world.Bounds()
	center := bounds.Center()
	limit := escapeFactor * math.Hypot(bounds.Width(), bounds.Height())
	for _, b := range g.world.Bodies() {
		if b.Position().Subtracted(center).Magnitude() > limit {
			g.world.RemoveBody(b.ID())
		}
	}
}

// resetWorld drops every body and restarts the sim clock. Scenario and
// gravity are kept.
func (g *Game) resetWorld() {
	g.world = physics.NewWorld(g.world.Gravity(), g.world.Bounds())
	g.simTime = 0
}

// pollScenarioReload applies scenario file edits without restarting.
// Gravity and the spawner swap in place; live bodies are kept.
func (g *Game) pollScenarioReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		sc, err := scenarios.Load(g.scenarioName)
		if err != nil {
			log.Printf("scenario reload: %v", err)
			return
		}
		sp, err := newSpawner(sc.Spawner, g.rng)
		if err != nil {
			log.Printf("scenario reload: %v", err)
			return
		}
		g.scenario = sc
		g.spawner = sp
		g.world.SetGravity(physics.Vec2{X: sc.Gravity.X, Y: sc.Gravity.Y})
		log.Printf("reloaded scenario %s after change to %s", sc.Name, path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("scenario watcher: %v", err)
		}
	default:
	}
}

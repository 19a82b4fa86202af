// Command bench measures headless stepping throughput of the ballpit
// physics world, with an optional run of the same setup in a Chipmunk
// space as an external baseline.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/ballpit/common"
	"github.com/milk9111/ballpit/physics"
)

const stepMs = 1000.0 / 60

func main() {
	bodies := flag.Int("n", 500, "number of circles")
	steps := flag.Int("steps", 3600, "ticks to simulate (3600 = one minute at 60 Hz)")
	seed := flag.Int64("seed", 1, "placement seed")
	baseline := flag.Bool("cp", false, "also run the setup in a Chipmunk space")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	type circle struct {
		x, y, vx, vy, r float64
	}
	setup := make([]circle, *bodies)
	for i := range setup {
		r := 4 + rng.Float64()*12
		setup[i] = circle{
			x:  r + rng.Float64()*(common.BaseWidth-2*r),
			y:  r + rng.Float64()*(common.BaseHeight-2*r),
			vx: rng.Float64()*200 - 100,
			vy: rng.Float64()*200 - 100,
			r:  r,
		}
	}

	world := physics.NewWorld(physics.Vec2{Y: 980}, physics.NewAABB(0, 0, common.BaseWidth, common.BaseHeight))
	for _, c := range setup {
		if _, err := world.SpawnCircle(physics.Vec2{X: c.x, Y: c.y}, physics.Vec2{X: c.vx, Y: c.vy}, c.r); err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	for i := 0; i < *steps; i++ {
		world.Step(stepMs)
	}
	report("ballpit", *bodies, *steps, time.Since(start))

	if !*baseline {
		return
	}

	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: 980})
	floor := space.AddShape(cp.NewSegment(space.StaticBody,
		cp.Vector{X: 0, Y: common.BaseHeight}, cp.Vector{X: common.BaseWidth, Y: common.BaseHeight}, 0))
	floor.SetElasticity(physics.FloorRestitution)
	for _, c := range setup {
		mass := c.r * c.r
		body := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, c.r, cp.Vector{})))
		body.SetPosition(cp.Vector{X: c.x, Y: c.y})
		body.SetVelocity(c.vx, c.vy)
		shape := space.AddShape(cp.NewCircle(body, c.r, cp.Vector{}))
		shape.SetElasticity(physics.Restitution)
	}

	start = time.Now()
	for i := 0; i < *steps; i++ {
		space.Step(stepMs / 1000)
	}
	report("chipmunk", *bodies, *steps, time.Since(start))
}

func report(name string, bodies, steps int, elapsed time.Duration) {
	perStep := elapsed / time.Duration(steps)
	log.Printf("%-8s  %d bodies  %d steps  %v total  %v/step  %.0f steps/s",
		name, bodies, steps, elapsed.Round(time.Millisecond), perStep, float64(time.Second)/float64(perStep))
}

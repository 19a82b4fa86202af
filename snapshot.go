package main

import (
	"log"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/ballpit/physics"
)

type bodySnapshot struct {
	ID     uint64  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius,omitempty"`
}

type worldSnapshot struct {
	Scenario string         `yaml:"scenario"`
	SimTime  float64        `yaml:"sim_time"`
	Bodies   []bodySnapshot `yaml:"bodies"`
}

// copySnapshot serializes the live body state to YAML and puts it on the
// system clipboard, for pasting into bug reports.
func (g *Game) copySnapshot() {
	if !g.clipboardOK {
		return
	}

	snap := worldSnapshot{
		Scenario: g.scenario.Name,
		SimTime:  g.simTime,
	}
	for _, b := range g.world.Bodies() {
		bs := bodySnapshot{
			ID: b.ID(),
			X:  b.Position().X,
			Y:  b.Position().Y,
			VX: b.Velocity().X,
			VY: b.Velocity().Y,
		}
		if c, ok := b.(*physics.Circle); ok {
			bs.Radius = c.Radius()
		}
		snap.Bodies = append(snap.Bodies, bs)
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("copied %d bodies to clipboard", len(snap.Bodies))
}

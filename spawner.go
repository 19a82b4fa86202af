package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/ballpit/common"
	"github.com/milk9111/ballpit/physics"
	"github.com/milk9111/ballpit/scenarios"
)

type spawnRequest struct {
	pos    physics.Vec2
	vel    physics.Vec2
	radius float64
}

// spawner produces automatic spawn requests on the scenario's cadence.
type spawner interface {
	// update advances the spawner clock by dt seconds and returns the
	// spawn due this tick, if any.
	update(dt float64) (spawnRequest, bool)
}

func newSpawner(cfg scenarios.Spawner, rng *rand.Rand) (spawner, error) {
	switch cfg.Mode {
	case scenarios.ModeNone:
		return nil, nil
	case scenarios.ModeRandom:
		return &randomSpawner{cfg: cfg, rng: rng}, nil
	case scenarios.ModeScript:
		return newScriptSpawner(cfg)
	}
	return nil, fmt.Errorf("unknown spawner mode %q", cfg.Mode)
}

// randomSpawner drops a random-sized body from just above the top edge
// every interval.
type randomSpawner struct {
	cfg     scenarios.Spawner
	rng     *rand.Rand
	elapsed float64
}

func (s *randomSpawner) update(dt float64) (spawnRequest, bool) {
	s.elapsed += dt
	if s.elapsed < s.cfg.Interval {
		return spawnRequest{}, false
	}
	s.elapsed = 0

	r := common.Lerp(s.cfg.MinRadius, s.cfg.MaxRadius, s.rng.Float64())
	return spawnRequest{
		pos:    physics.Vec2{X: common.Lerp(r, common.BaseWidth-r, s.rng.Float64()), Y: -r},
		vel:    physics.Vec2{X: common.Lerp(-60, 60, s.rng.Float64())},
		radius: r,
	}, true
}

// scriptSpawner lets a tengo script decide placement, velocity, and size.
// Every interval the script runs with t, width, height, and the radius
// bounds as globals, and leaves its answer in a `spawn` map with x, y,
// vx, vy, r entries.
type scriptSpawner struct {
	cfg      scenarios.Spawner
	compiled *tengo.Compiled
	elapsed  float64
	simTime  float64
}

func newScriptSpawner(cfg scenarios.Spawner) (*scriptSpawner, error) {
	src, err := scenarios.LoadScript(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("load spawn script %s: %w", cfg.Script, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))
	_ = script.Add("t", 0.0)
	_ = script.Add("width", float64(common.BaseWidth))
	_ = script.Add("height", float64(common.BaseHeight))
	_ = script.Add("min_radius", cfg.MinRadius)
	_ = script.Add("max_radius", cfg.MaxRadius)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile spawn script %s: %w", cfg.Script, err)
	}
	return &scriptSpawner{cfg: cfg, compiled: compiled}, nil
}

func (s *scriptSpawner) update(dt float64) (spawnRequest, bool) {
	s.simTime += dt
	s.elapsed += dt
	if s.elapsed < s.cfg.Interval {
		return spawnRequest{}, false
	}
	s.elapsed = 0

	if err := s.compiled.Set("t", s.simTime); err != nil {
		log.Printf("spawn script %s: %v", s.cfg.Script, err)
		return spawnRequest{}, false
	}
	if err := s.compiled.Run(); err != nil {
		log.Printf("spawn script %s: %v", s.cfg.Script, err)
		return spawnRequest{}, false
	}

	m := s.compiled.Get("spawn").Map()
	if m == nil {
		return spawnRequest{}, false
	}
	return spawnRequest{
		pos:    physics.Vec2{X: scriptNum(m["x"]), Y: scriptNum(m["y"])},
		vel:    physics.Vec2{X: scriptNum(m["vx"]), Y: scriptNum(m["vy"])},
		radius: common.Clamp(scriptNum(m["r"]), s.cfg.MinRadius, s.cfg.MaxRadius),
	}, true
}

// scriptNum accepts the int64 or float64 values tengo hands back.
func scriptNum(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

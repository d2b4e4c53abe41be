package system

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/ecs"
	"github.com/milk9111/brickbreaker/ecs/component"
	"github.com/milk9111/brickbreaker/levels"
)

// Hazard launch tuning. Launches alternate left/right at a shallow random
// angle so consecutive spawns never stack on one trajectory.
const (
	HazardMinHorizontalSpeed = 3.0
	hazardLaunchSpeed        = 6.0
	hazardMinLaunchDeg       = 5.0
	hazardMaxLaunchDeg       = 20.0
)

var hazardScriptInputs = []string{"x", "y", "vx", "vy", "dt", "min_speed", "arena_w", "arena_h"}

// HazardSystem releases queued hazard spawns and steers live hazards with a
// tengo policy script. Hazard bodies pin zero gravity, so the script is the
// only thing that moves them.
type HazardSystem struct {
	rng      *rand.Rand
	compiled *tengo.Compiled
}

// NewHazardSystem compiles the steering script once; per-frame runs only set
// inputs and read the outputs back.
func NewHazardSystem(scriptSrc []byte, seed int64) (*HazardSystem, error) {
	script := tengo.NewScript(scriptSrc)
	for _, name := range hazardScriptInputs {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("hazard: script input %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("hazard: compile steering script: %w", err)
	}
	return &HazardSystem{
		rng:      rand.New(rand.NewSource(seed)),
		compiled: compiled,
	}, nil
}

func (s *HazardSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || w.Physics() == nil {
		return
	}
	s.releaseSpawns(w, dt)
	s.steer(w, dt)
}

func (s *HazardSystem) releaseSpawns(w *ecs.World, dt float64) {
	session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	spawner, ok := ecs.Get(w, session, component.HazardSpawnerComponent.Kind())
	if !ok || len(spawner.Pending) == 0 {
		return
	}

	remaining := spawner.Pending[:0]
	for i := range spawner.Pending {
		p := spawner.Pending[i]
		p.Remaining -= dt
		if p.Remaining > 0 {
			remaining = append(remaining, p)
			continue
		}
		s.spawn(w, spawner, p.Row, p.Col)
	}
	spawner.Pending = remaining
}

func (s *HazardSystem) spawn(w *ecs.World, spawner *component.HazardSpawner, row, col int) {
	x, y := levels.CellCenter(row, col)

	deg := hazardMinLaunchDeg + s.rng.Float64()*(hazardMaxLaunchDeg-hazardMinLaunchDeg)
	angle := deg * math.Pi / 180
	dir := 1.0
	if spawner.FlipSign {
		dir = -1
	}
	spawner.FlipSign = !spawner.FlipSign

	vx := dir * hazardLaunchSpeed * math.Cos(angle)
	vy := hazardLaunchSpeed * math.Sin(angle)

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		MinHorizontalSpeed: HazardMinHorizontalSpeed,
	})
	w.Physics().AddHazard(e, x, y, vx, vy)
	log.Printf("Hazard: spawned at row=%d col=%d", row, col)
}

func (s *HazardSystem) steer(w *ecs.World, dt float64) {
	if s.compiled == nil {
		return
	}
	pw := w.Physics()

	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, h *component.Hazard) {
		pos, ok := pw.Position(e)
		if !ok {
			return
		}
		vel, _ := pw.Velocity(e)

		inputs := map[string]float64{
			"x":         pos.X,
			"y":         pos.Y,
			"vx":        vel.X,
			"vy":        vel.Y,
			"dt":        dt,
			"min_speed": h.MinHorizontalSpeed,
			"arena_w":   levels.ArenaWidth,
			"arena_h":   levels.ArenaHeight,
		}
		for name, v := range inputs {
			if err := s.compiled.Set(name, v); err != nil {
				log.Printf("Hazard: script input %s: %v", name, err)
				return
			}
		}
		if err := s.compiled.Run(); err != nil {
			log.Printf("Hazard: steering script: %v", err)
			return
		}

		vx := s.compiled.Get("out_vx").Float()
		vy := s.compiled.Get("out_vy").Float()
		pw.SetVelocity(e, vx, vy)
		h.Heading = common.Vec3{X: vy, Z: vx}
	})
}

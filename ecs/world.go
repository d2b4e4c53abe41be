package ecs

import "github.com/milk9111/brickbreaker/ecs/component"

// System advances one slice of game state by dt seconds. Systems run in
// registration order; that order is the only cross-system synchronization
// in the runtime.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, per-kind component stores, the system pipeline, and
// the frame notification queue. All mutation happens on the stepping
// goroutine.
type World struct {
	entities entityStore
	stores   map[component.ID]*componentStore
	systems  []System
	events   EventQueue

	physics *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity, its components, and any physics body
// bound to it. Stale handles are ignored.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	if w.physics != nil {
		w.physics.RemoveEntity(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update clears the previous frame's notifications, then runs all systems
// once with the elapsed time. Notifications published during the frame stay
// readable (by later systems and by the session driver) until the next
// Update begins.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.flush()
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
}

// Events returns the world notification queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysics attaches a physics world; destroyed entities drop their bodies.
func (w *World) SetPhysics(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physics = pw
}

// Physics returns the attached physics world, if any.
func (w *World) Physics() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physics
}

func (w *World) store(id component.ID) *componentStore {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok {
		s = &componentStore{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ID) *componentStore {
	if w == nil {
		return nil
	}
	return w.stores[id]
}

// Entities returns all alive entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	w.entities.each(func(e Entity) {
		out = append(out, e)
	})
	return out
}

package ecs

import "github.com/milk9111/brickbreaker/ecs/component"

// Add attaches a component value to an entity, replacing any existing value
// of the same kind wholesale.
func Add[T any](w *World, e Entity, kind component.Kind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).set(e.id(), value)
	return nil
}

// Get returns the entity's component of the given kind, if present.
func Get[T any](w *World, e Entity, kind component.Kind[T]) (*T, bool) {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return nil, false
	}
	v := s.get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.storeIfPresent(kind.ID())
	return s != nil && s.has(e.id())
}

// Remove detaches the entity's component of the given kind.
func Remove[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if w == nil || !kind.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.storeIfPresent(kind.ID())
	return s != nil && s.remove(e.id())
}

// First returns some entity carrying the kind, in dense (insertion) order.
// Singleton components are read this way.
func First[T any](w *World, kind component.Kind[T]) (Entity, bool) {
	if w == nil || !kind.Valid() {
		return 0, false
	}
	s := w.storeIfPresent(kind.ID())
	if s == nil || s.len() == 0 {
		return 0, false
	}
	id := s.denseIDs[0]
	return makeEntity(id, w.entities.gens[id-1]), true
}

// Count returns the number of entities carrying the kind.
func Count[T any](w *World, kind component.Kind[T]) int {
	if w == nil || !kind.Valid() {
		return 0
	}
	return w.storeIfPresent(kind.ID()).len()
}

// ForEach visits every entity carrying the kind. The id list is snapshotted
// so callbacks may add or destroy entities; entries destroyed mid-iteration
// are skipped.
func ForEach[T any](w *World, kind component.Kind[T], fn func(Entity, *T)) {
	if w == nil || !kind.Valid() || fn == nil {
		return
	}
	s := w.storeIfPresent(kind.ID())
	if s == nil {
		return
	}
	for _, id := range s.ids() {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits every entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.Kind[A], kb component.Kind[B], kc component.Kind[C], fn func(Entity, *A, *B, *C)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

// Query returns the entities carrying every listed kind, iterating the first
// kind's dense order.
func Query(w *World, kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	for _, k := range kinds {
		if k == nil || !k.Valid() {
			return nil
		}
	}
	s := w.storeIfPresent(kinds[0].ID())
	if s == nil {
		return nil
	}
	var out []Entity
	for _, id := range s.ids() {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		all := true
		for _, k := range kinds[1:] {
			other := w.storeIfPresent(k.ID())
			if other == nil || !other.has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

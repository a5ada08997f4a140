package ecs

import "github.com/milk9111/spritewalk/ecs/component"

// World owns entities, their component storages, the input queued for the
// next tick and the tick counter.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue

	tick uint64
	quit bool
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Events returns the queue of input events waiting for the next tick.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Tick returns the number of completed scheduler updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// RequestQuit records that the platform asked the loop to stop.
func (w *World) RequestQuit() {
	if w == nil {
		return
	}
	w.quit = true
}

func (w *World) QuitRequested() bool {
	return w != nil && w.quit
}

func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.entities.gen[id-1])
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*SparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	typed := newSparseSet[T]()
	w.stores[kind.ID()] = typed
	return typed
}

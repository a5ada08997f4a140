package ecs

import (
	"sort"

	"github.com/milk9111/spritewalk/ecs/component"
)

// intersect returns the ids present in every store, in ascending order.
func intersect(stores ...store) []entityID {
	if len(stores) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range stores {
		if s == nil {
			return nil
		}
		if len(s.ids()) < len(stores[smallest].ids()) {
			smallest = i
		}
	}

	out := make([]entityID, 0, len(stores[smallest].ids()))
	for _, id := range stores[smallest].ids() {
		inAll := true
		for i, s := range stores {
			if i != smallest && !s.has(id) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (w *World) untypedStore(kind component.Kind) store {
	if w == nil || kind == nil {
		return nil
	}
	return w.stores[kind.ID()]
}

// Query returns live entities holding every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, len(kinds))
	for i, k := range kinds {
		stores[i] = w.untypedStore(k)
	}
	ids := intersect(stores...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entityFor(id))
	}
	return out
}

// First returns the lowest-id entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka, false)
	if sa == nil {
		return
	}
	for _, id := range intersect(sa) {
		a, _ := sa.get(id)
		fn(w.entityFor(id), a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range intersect(sa, sb) {
		a, _ := sa.get(id)
		b, _ := sb.get(id)
		fn(w.entityFor(id), a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, ka, false), storeFor(w, kb, false), storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range intersect(sa, sb, sc) {
		a, _ := sa.get(id)
		b, _ := sb.get(id)
		c, _ := sc.get(id)
		fn(w.entityFor(id), a, b, c)
	}
}

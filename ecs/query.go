package ecs

import "github.com/milk9111/propanim/ecs/component"

// IntersectEntities returns entity ids present in both sets.
func IntersectEntities[A, B any](a *SparseSet[A], b *SparseSet[B]) []entityID {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		out := make([]entityID, 0, b.Len())
		for _, id := range b.ids() {
			if a.Has(id) {
				out = append(out, id)
			}
		}
		return out
	}
	out := make([]entityID, 0, a.Len())
	for _, id := range a.ids() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// ForEach visits every entity that has kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.stores[kind.ID()]
	ids := append([]entityID(nil), set.ids()...)
	for _, id := range ids {
		e := w.entities.entity(id)
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity that has both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, id := range IntersectEntities(w.stores[ka.ID()], w.stores[kb.ID()]) {
		e := w.entities.entity(id)
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

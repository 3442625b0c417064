package anim

import (
	"fmt"

	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

// CancelAnimations stops every animation of one property of e, including
// the per-element animations of a vector property. Stopped animations are
// notified and removed on the next Update.
func (w *World) CancelAnimations(e ecs.Entity, componentID, propertyID component.Hash) error {
	desc, err := w.describe(e, componentID, propertyID)
	if err != nil {
		return err
	}
	n := elementCount(desc.Variant.Type)
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, desc.Variant.Type)
	}
	head, ok := w.index.head(e)
	if !ok {
		return nil
	}
	w.stopMatching(head, componentID, propertyID)
	if n > 1 {
		for i := 0; i < n; i++ {
			w.stopMatching(head, componentID, desc.ElementIDs[i])
		}
	}
	return nil
}

func (w *World) stopMatching(head uint16, componentID, propertyID component.Hash) {
	for slot := head; slot != invalidSlot; {
		a := w.store.get(slot)
		if a.playing && a.component == componentID && a.property == propertyID {
			a.stop(false)
			w.deferred = true
		}
		slot = a.next
	}
}

// CancelAllAnimations stops every animation of e. Outside Update the
// animations are removed at once and their callbacks run before it returns;
// inside Update they are removed by the current pruning pass.
func (w *World) CancelAllAnimations(e ecs.Entity) {
	head, ok := w.index.head(e)
	if !ok {
		return
	}
	if w.ticking {
		for slot := head; slot != invalidSlot; {
			a := w.store.get(slot)
			if a.playing {
				a.stop(false)
			}
			slot = a.next
		}
		w.deferred = true
		return
	}

	// Detach the list first so callbacks can animate e again.
	w.index.erase(e)
	w.teardowns++
	defer func() { w.teardowns-- }()
	for slot := head; slot != invalidSlot; {
		i := w.store.index(slot)
		rec := w.store.records[i]
		slot = rec.next
		w.store.eraseSwap(i)
		if rec.playing {
			rec.stop(false)
		}
		rec.notify()
	}
}

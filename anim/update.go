package anim

import "github.com/milk9111/propanim/ecs/component"

// Update advances every animation by dt seconds.
func (w *World) Update(dt float32) {
	if w.ticking || w.teardowns > 0 {
		w.log.Error().Msg("anim: update called re-entrantly, ignored")
		return
	}
	w.ticking = true
	defer func() { w.ticking = false }()
	w.tick++

	size := w.store.len()
	w.start(size, dt)
	w.advance(size, dt)
	w.prune()
}

// start runs the first active tick of animations whose delay expires now:
// it captures the start value and cancels the earlier animations of the
// same property. Among animations starting in the same tick the one created
// last wins.
func (w *World) start(size int, dt float32) {
	for i := 0; i < size; i++ {
		a := &w.store.records[i]
		if !a.playing || !a.firstUpdate || a.delay > dt {
			continue
		}
		a.firstUpdate = false
		a.startTick = w.tick
		if !a.composite && !a.fromFixed {
			a.from = w.read(a)
		}
	}
	for i := 0; i < size; i++ {
		a := &w.store.records[i]
		if !a.playing || a.startTick != w.tick || a.firstUpdate {
			continue
		}
		head, _ := w.index.head(a.entity)
		passed := false
		for slot := head; slot != invalidSlot; {
			other := w.store.get(slot)
			slot = other.next
			if other == a {
				passed = true
				continue
			}
			if !other.playing || other.firstUpdate || other.component != a.component || other.property != a.property {
				continue
			}
			if passed && other.startTick == w.tick {
				continue
			}
			other.stop(false)
		}
	}
}

func (w *World) advance(size int, dt float32) {
	for i := 0; i < size; i++ {
		a := &w.store.records[i]
		if !a.playing {
			continue
		}
		step := dt
		if a.delay > step {
			a.delay -= step
			continue
		}
		step -= a.delay
		a.delay = 0
		if a.playback != PlaybackNone {
			a.cursor += float64(step)
		}
		completed := a.adjustCursor()
		if !a.composite {
			w.write(a, a.sample(w.curves))
		}
		if completed {
			a.stop(true)
		}
	}
}

// prune notifies and removes stopped animations. A callback may start or
// cancel animations; cancellations it makes are picked up by another walk.
func (w *World) prune() {
	for {
		w.deferred = false
		for i := 0; i < w.store.len(); {
			a := &w.store.records[i]
			if a.playing {
				i++
				continue
			}
			if a.stopped != nil {
				a.notify()
				// The callback may have grown the array.
				a = &w.store.records[i]
			}
			w.index.unlink(w.store, a.entity, a.slot)
			w.store.eraseSwap(i)
		}
		if !w.deferred {
			return
		}
	}
}

func (w *World) read(a *animation) float32 {
	if a.value != nil {
		return *a.value
	}
	desc, err := w.accessor.GetProperty(a.entity, a.component, a.property)
	if err != nil {
		w.log.Debug().Err(err).Stringer("entity", a.entity).Stringer("property", a.property).Msg("anim: read property")
		return a.from
	}
	return float32(desc.Variant.Number)
}

func (w *World) write(a *animation, v float32) {
	if a.value != nil {
		*a.value = v
		return
	}
	if err := w.accessor.SetProperty(a.entity, a.component, a.property, component.Number(float64(v))); err != nil {
		w.log.Debug().Err(err).Stringer("entity", a.entity).Stringer("property", a.property).Msg("anim: write property")
	}
}

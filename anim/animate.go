package anim

import (
	"fmt"

	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

// Request describes one call to Animate.
type Request struct {
	Entity    ecs.Entity
	Component component.Hash
	Property  component.Hash
	Playback  Playback
	To        component.Variant
	// From fixes the start value. When nil the start value is read from the
	// property on the animation's first active tick.
	From      *component.Variant
	Easing    easing.Type
	Duration  float32
	Delay     float32
	Stopped   StoppedFunc
	Userdata1 any
	Userdata2 any
}

// Animate starts animating a property toward req.To. A vector or quaternion
// property is split into one animation per element plus a placeholder that
// carries the callback and fires it once when the group stops.
func (w *World) Animate(req Request) error {
	desc, err := w.describe(req.Entity, req.Component, req.Property)
	if err != nil {
		return err
	}
	n := elementCount(desc.Variant.Type)
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, desc.Variant.Type)
	}
	if req.To.Type != desc.Variant.Type {
		return fmt.Errorf("%w: property is %s, target is %s", ErrTypeMismatch, desc.Variant.Type, req.To.Type)
	}
	from := desc.Variant
	if req.From != nil {
		if req.From.Type != desc.Variant.Type {
			return fmt.Errorf("%w: property is %s, start is %s", ErrTypeMismatch, desc.Variant.Type, req.From.Type)
		}
		from = *req.From
	}

	base := track{
		entity:    req.Entity,
		component: req.Component,
		playback:  req.Playback,
		easing:    req.Easing,
		duration:  req.Duration,
		delay:     req.Delay,
		fromFixed: req.From != nil,
	}

	if n == 1 {
		t := base
		t.property = req.Property
		if len(desc.ValuePtr) > 0 {
			t.value = &desc.ValuePtr[0]
		}
		t.from = float32(from.Number)
		t.to = float32(req.To.Number)
		t.stopped = req.Stopped
		t.userdata1 = req.Userdata1
		t.userdata2 = req.Userdata2
		return w.play(t)
	}

	placeholder := base
	placeholder.property = req.Property
	placeholder.easing = easing.Linear
	placeholder.composite = true
	placeholder.stopped = req.Stopped
	placeholder.userdata1 = req.Userdata1
	placeholder.userdata2 = req.Userdata2
	if err := w.play(placeholder); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		t := base
		t.property = desc.ElementIDs[i]
		if len(desc.ValuePtr) > i {
			t.value = &desc.ValuePtr[i]
		}
		t.from = from.V4[i]
		t.to = req.To.V4[i]
		if err := w.play(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) play(t track) error {
	if w.store.full() {
		w.log.Error().Int("max", MaxCapacity).Msg("anim: animation could not be stored since the buffer is full")
		return ErrBufferOverflow
	}
	if _, ok := w.index.head(t.entity); !ok && w.index.full() {
		w.log.Error().Int("max", w.index.max).Msg("anim: too many animated instances")
		return ErrBufferOverflow
	}
	a, ok := w.store.push()
	if !ok {
		w.log.Error().Msg("anim: out of animation slots")
		return ErrBufferOverflow
	}
	a.init(t)
	w.index.link(w.store, t.entity, a.slot)
	return nil
}

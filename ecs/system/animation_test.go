package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

func TestAnimationSystemTicksAndReports(t *testing.T) {
	w := ecs.NewWorld()
	aw := anim.NewWorld(w, anim.WithLogger(zerolog.Nop()))
	w.AddSystem(NewAnimationSystem(w, aw))
	logger := NewEventLogSystem(zerolog.Nop())
	var seen []AnimationStopped
	logger.OnEvent = func(evt ecs.Event) {
		if stopped, ok := evt.Data.(AnimationStopped); ok {
			seen = append(seen, stopped)
		}
	}
	w.AddSystem(logger)

	e := w.CreateEntity()
	tr := component.NewTransform()
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	err := aw.Animate(anim.Request{
		Entity:    e,
		Component: component.TransformComponent.ID(),
		Property:  component.PositionProperty.ID,
		Playback:  anim.PlaybackOnceForward,
		To:        component.Vector3(4, 8, 0),
		Duration:  0.5,
		Stopped:   PushStopped(w),
		Userdata1: "slide",
	})
	if err != nil {
		t.Fatalf("animate: %v", err)
	}

	w.Update(0.25)
	if tr.Position != [3]float32{2, 4, 0} {
		t.Fatalf("expected halfway position, got %v", tr.Position)
	}
	w.Update(0.25)
	if len(seen) != 1 {
		t.Fatalf("expected 1 stop event, got %d", len(seen))
	}
	got := seen[0]
	if got.Entity != e || got.Name != "slide" || !got.Finished || got.Property != component.PositionProperty.ID {
		t.Fatalf("unexpected event %+v", got)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected drained queue, got %d", w.Events().Len())
	}
}

func TestAnimationSystemCancelsOnDestroy(t *testing.T) {
	w := ecs.NewWorld()
	aw := anim.NewWorld(w, anim.WithLogger(zerolog.Nop()))
	w.AddSystem(NewAnimationSystem(w, aw))

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), component.NewSprite(4, 4)); err != nil {
		t.Fatalf("add sprite: %v", err)
	}
	stops := 0
	err := aw.Animate(anim.Request{
		Entity:    e,
		Component: component.SpriteComponent.ID(),
		Property:  component.TintProperty.ID,
		Playback:  anim.PlaybackLoopPingPong,
		To:        component.Vector4(1, 0, 0, 1),
		Duration:  1,
		Stopped: func(ecs.Entity, component.Hash, component.Hash, bool, any, any) {
			stops++
		},
	})
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	w.Update(0.25)

	w.DestroyEntity(e)
	if stops != 1 {
		t.Fatalf("expected teardown callback, got %d", stops)
	}
	if aw.Len() != 0 {
		t.Fatalf("expected no animations, got %d", aw.Len())
	}
	w.Update(0.25)
}

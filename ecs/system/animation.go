package system

import (
	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

// AnimationStopped is the payload of ecs.EventAnimationStopped events.
type AnimationStopped struct {
	Entity    ecs.Entity
	Component component.Hash
	Property  component.Hash
	Finished  bool
	// Name is the request's first userdata when it is a string.
	Name string
}

// AnimationSystem advances an anim.World once per ECS tick.
type AnimationSystem struct {
	anim *anim.World
}

// NewAnimationSystem ticks aw from w's scheduler and tears down an entity's
// animations when w destroys it.
func NewAnimationSystem(w *ecs.World, aw *anim.World) *AnimationSystem {
	s := &AnimationSystem{anim: aw}
	w.OnDestroy(aw.CancelAllAnimations)
	return s
}

func (s *AnimationSystem) Anim() *anim.World {
	return s.anim
}

func (s *AnimationSystem) Update(w *ecs.World, dt float32) {
	s.anim.Update(dt)
}

// PushStopped returns a stop callback that reports to w's event queue.
func PushStopped(w *ecs.World) anim.StoppedFunc {
	return func(e ecs.Entity, componentID, propertyID component.Hash, finished bool, userdata1, _ any) {
		name, _ := userdata1.(string)
		w.Events().Push(ecs.Event{
			Type: ecs.EventAnimationStopped,
			Data: AnimationStopped{
				Entity:    e,
				Component: componentID,
				Property:  propertyID,
				Finished:  finished,
				Name:      name,
			},
		})
	}
}

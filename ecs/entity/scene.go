package entity

import (
	"fmt"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/prefabs"
)

// Curves resolves easing names. *easing.Registry implements it.
type Curves interface {
	Lookup(name string) (easing.Type, bool)
	Register(name string, fn easing.Func) (easing.Type, error)
}

// Scene records the entities created for a scene spec.
type Scene struct {
	Name     string
	Entities []ecs.Entity
	byName   map[string]ecs.Entity
}

func (s *Scene) Entity(name string) (ecs.Entity, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// Destroy removes the scene's entities from w.
func (s *Scene) Destroy(w *ecs.World, aw *anim.World) {
	for _, e := range s.Entities {
		aw.CancelAllAnimations(e)
		w.DestroyEntity(e)
	}
	s.Entities = nil
	s.byName = nil
}

// SceneOptions tune BuildScene. Stopped receives every animation stop and
// is given "<object>/<animation>" as its first userdata.
type SceneOptions struct {
	Stopped anim.StoppedFunc
}

// BuildScene registers the scene's scripted easings, creates its objects and
// starts their animations. On error nothing created by the call survives.
func BuildScene(w *ecs.World, aw *anim.World, curves Curves, spec *prefabs.SceneSpec, opts SceneOptions) (*Scene, error) {
	if w == nil || aw == nil || curves == nil || spec == nil {
		return nil, fmt.Errorf("build scene: missing world, animations, curves or spec")
	}
	for _, e := range spec.Easings {
		if err := RegisterEasing(curves, e); err != nil {
			return nil, fmt.Errorf("build scene: %q: %w", spec.Name, err)
		}
	}

	scene := &Scene{Name: spec.Name, byName: make(map[string]ecs.Entity, len(spec.Objects))}
	for _, obj := range spec.Objects {
		e, err := BuildEntity(w, obj)
		if err != nil {
			scene.Destroy(w, aw)
			return nil, fmt.Errorf("build scene: %q: %w", spec.Name, err)
		}
		scene.Entities = append(scene.Entities, e)
		scene.byName[obj.Name] = e

		for i, a := range obj.Animations {
			label := a.Name
			if label == "" {
				label = fmt.Sprintf("%s.%s", a.Component, a.Property)
			}
			userdata := obj.Name + "/" + label
			if err := StartAnimation(w, aw, curves, e, a, opts.Stopped, userdata); err != nil {
				scene.Destroy(w, aw)
				return nil, fmt.Errorf("build scene: %q: object %q: animation %d (%s): %w", spec.Name, obj.Name, i, label, err)
			}
		}
	}
	return scene, nil
}

// ReplaceScene builds spec and, once it succeeds, destroys old. When the
// build fails old is returned untouched alongside the error.
func ReplaceScene(w *ecs.World, aw *anim.World, curves Curves, old *Scene, spec *prefabs.SceneSpec, opts SceneOptions) (*Scene, error) {
	scene, err := BuildScene(w, aw, curves, spec, opts)
	if err != nil {
		return old, err
	}
	if old != nil {
		old.Destroy(w, aw)
	}
	return scene, nil
}

// RegisterEasing compiles a scripted curve and registers it under its name.
func RegisterEasing(curves Curves, spec prefabs.EasingSpec) error {
	src := []byte(spec.Source)
	if spec.Script != "" {
		data, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return fmt.Errorf("easing %q: load %s: %w", spec.Name, spec.Script, err)
		}
		src = data
	}
	fn, err := easing.CompileScript(src, spec.Samples)
	if err != nil {
		return fmt.Errorf("easing %q: %w", spec.Name, err)
	}
	if _, err := curves.Register(spec.Name, fn); err != nil {
		return fmt.Errorf("easing %q: %w", spec.Name, err)
	}
	return nil
}

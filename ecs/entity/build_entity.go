package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
	"github.com/milk9111/propanim/prefabs"
)

type buildContext struct {
	Object string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform": addTransform,
	"sprite":    addSprite,
}

var componentBuildOrder = []string{
	"transform",
	"sprite",
}

// BuildEntity creates an entity carrying the components of spec.
func BuildEntity(w *ecs.World, spec prefabs.ObjectSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: %q does not define components", spec.Name)
	}

	e := w.CreateEntity()
	ctx := &buildContext{Object: spec.Name}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		w.DestroyEntity(e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, names[0])
	}

	return e, nil
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	t := component.NewTransform()
	copy(t.Position[:], spec.Position)
	if len(spec.Scale) > 0 {
		copy(t.Scale[:], spec.Scale)
	}
	if len(spec.Rotation) > 0 {
		var deg [3]float32
		copy(deg[:], spec.Rotation)
		t.SetEuler(deg)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return err
	}
	if len(spec.Size) < 2 {
		return errors.New("sprite size needs width and height")
	}
	s := component.NewSprite(spec.Size[0], spec.Size[1])
	copy(s.Size[:], spec.Size)
	if spec.Tint != nil {
		copy(s.Tint[:], spec.Tint.Floats())
	}
	s.Frame = spec.Frame
	if spec.Image != "" {
		s.Image = component.HashString(spec.Image)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), s)
}

// StartAnimation issues the Animate call described by spec against e.
func StartAnimation(w *ecs.World, aw *anim.World, curves Curves, e ecs.Entity, spec prefabs.AnimationSpec, stopped anim.StoppedFunc, userdata any) error {
	componentID := component.HashString(spec.Component)
	propertyID := component.HashString(spec.Property)

	desc, err := w.GetProperty(e, componentID, propertyID)
	if err != nil {
		return err
	}
	to, err := variantFor(desc.Variant.Type, spec.To.Values)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	req := anim.Request{
		Entity:    e,
		Component: componentID,
		Property:  propertyID,
		Playback:  anim.PlaybackOnceForward,
		To:        to,
		Duration:  float32(spec.Duration),
		Delay:     float32(spec.Delay),
		Stopped:   stopped,
		Userdata1: userdata,
	}
	if spec.From != nil {
		from, err := variantFor(desc.Variant.Type, spec.From.Values)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}
		req.From = &from
	}
	if spec.Playback != "" {
		if req.Playback, err = anim.ParsePlayback(spec.Playback); err != nil {
			return err
		}
	}
	if spec.Easing != "" {
		kind, ok := curves.Lookup(spec.Easing)
		if !ok {
			return fmt.Errorf("unknown easing %q", spec.Easing)
		}
		req.Easing = kind
	}
	return aw.Animate(req)
}

// variantFor shapes scene values into a variant of the property's type.
func variantFor(t component.PropertyType, vals []float32) (component.Variant, error) {
	want := 0
	switch t {
	case component.PropertyTypeNumber:
		want = 1
	case component.PropertyTypeVector3:
		want = 3
	case component.PropertyTypeVector4, component.PropertyTypeQuat:
		want = 4
	default:
		return component.Variant{}, fmt.Errorf("%w: %s", anim.ErrUnsupportedType, t)
	}
	if len(vals) != want {
		return component.Variant{}, fmt.Errorf("%w: %s needs %d values, got %d", anim.ErrTypeMismatch, t, want, len(vals))
	}
	if want == 1 {
		return component.Number(float64(vals[0])), nil
	}
	v := component.Variant{Type: t}
	copy(v.V4[:], vals)
	return v, nil
}

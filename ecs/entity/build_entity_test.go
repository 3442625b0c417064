package entity

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
	"github.com/milk9111/propanim/prefabs"
)

func parseScene(t *testing.T, src string) *prefabs.SceneSpec {
	t.Helper()
	var spec prefabs.SceneSpec
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatalf("unmarshal scene: %v", err)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("validate scene: %v", err)
	}
	return &spec
}

func newWorlds() (*ecs.World, *anim.World, *easing.Registry) {
	w := ecs.NewWorld()
	curves := easing.NewRegistry()
	aw := anim.NewWorld(w, anim.WithLogger(zerolog.Nop()), anim.WithEasing(curves))
	return w, aw, curves
}

func TestBuildDemoScene(t *testing.T) {
	spec, err := prefabs.LoadScene("demo.yaml")
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}
	w, aw, curves := newWorlds()

	scene, err := BuildScene(w, aw, curves, spec, SceneOptions{})
	if err != nil {
		t.Fatalf("build demo: %v", err)
	}
	if len(scene.Entities) != len(spec.Objects) {
		t.Fatalf("expected %d entities, got %d", len(spec.Objects), len(scene.Entities))
	}
	if _, ok := curves.Lookup("wobble"); !ok {
		t.Fatalf("expected scripted easing to be registered")
	}
	if aw.Len() == 0 {
		t.Fatalf("expected running animations")
	}

	slider, ok := scene.Entity("slider")
	if !ok {
		t.Fatalf("expected slider entity")
	}
	tr, _ := ecs.Get(w, slider, component.TransformComponent.Kind())
	start := tr.Position[0]
	aw.Update(0.5)
	if tr.Position[0] <= start {
		t.Fatalf("expected slider to move right, still at %v", tr.Position[0])
	}

	scene.Destroy(w, aw)
	if aw.Len() != 0 || w.EntityCount() != 0 {
		t.Fatalf("expected empty worlds after destroy, got %d animations and %d entities", aw.Len(), w.EntityCount())
	}
}

func TestBuildSceneComponents(t *testing.T) {
	spec := parseScene(t, `
name: one
objects:
  - name: box
    components:
      transform: {position: [1, 2, 3], rotation: [0, 0, 90], scale: [2, 2, 2]}
      sprite: {size: [8, 4], tint: "#ff000080", frame: 2, image: crate}
`)
	w, aw, curves := newWorlds()
	scene, err := BuildScene(w, aw, curves, spec, SceneOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e, _ := scene.Entity("box")

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("expected transform")
	}
	if tr.Position != [3]float32{1, 2, 3} || tr.Scale != [3]float32{2, 2, 2} {
		t.Fatalf("unexpected transform %+v", tr)
	}
	if euler := tr.Euler(); euler[2] < 89.9 || euler[2] > 90.1 {
		t.Fatalf("expected yaw 90, got %v", euler)
	}

	sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		t.Fatalf("expected sprite")
	}
	if sp.Size[0] != 8 || sp.Size[1] != 4 || sp.Frame != 2 || sp.Image != component.HashString("crate") {
		t.Fatalf("unexpected sprite %+v", sp)
	}
	if sp.Tint[0] != 1 || sp.Tint[1] != 0 || sp.Tint[3] < 0.5 || sp.Tint[3] > 0.51 {
		t.Fatalf("unexpected tint %v", sp.Tint)
	}
}

func TestBuildSceneAnimations(t *testing.T) {
	spec := parseScene(t, `
name: anims
easings:
  - name: square
    source: |
      ease := func(t) { return t * t }
    samples: 8
objects:
  - name: box
    components:
      transform: {}
      sprite: {size: [8, 8]}
    animations:
      - name: move
        component: transform
        property: position
        to: [10, 20, 0]
        easing: square
        duration: 1
      - component: sprite
        property: tint
        from: "#000000"
        to: "#ffffff"
        playback: once_backward
        duration: 1
`)
	w, aw, curves := newWorlds()
	var stops []string
	opts := SceneOptions{Stopped: func(_ ecs.Entity, _, _ component.Hash, finished bool, ud1, _ any) {
		if finished {
			stops = append(stops, ud1.(string))
		}
	}}
	scene, err := BuildScene(w, aw, curves, spec, opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e, _ := scene.Entity("box")
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	sp, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

	aw.Update(0.5)
	if tr.Position[0] != 2.5 || tr.Position[1] != 5 {
		t.Fatalf("expected eased halfway position, got %v", tr.Position)
	}
	if sp.Tint[0] != 0.5 {
		t.Fatalf("expected half tint, got %v", sp.Tint)
	}
	aw.Update(0.5)
	if sp.Tint != [4]float32{0, 0, 0, 1} {
		t.Fatalf("expected backward tint to end at its start value, got %v", sp.Tint)
	}
	if len(stops) != 2 || stops[0] != "box/move" || stops[1] != "box/sprite.tint" {
		t.Fatalf("unexpected stop userdata %v", stops)
	}
}

func TestBuildSceneErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
	}{
		{"unknown component", "objects: [{name: a, components: {rigidbody: {}}}]", nil},
		{"sprite without size", "objects: [{name: a, components: {sprite: {}}}]", nil},
		{"no components", "objects: [{name: a}]", nil},
		{"unknown easing", "objects: [{name: a, components: {transform: {}}, animations: [{component: transform, property: scale, to: [1, 1, 1], easing: nope}]}]", nil},
		{"bad playback", "objects: [{name: a, components: {transform: {}}, animations: [{component: transform, property: scale, to: [1, 1, 1], playback: sideways}]}]", nil},
		{"shape mismatch", "objects: [{name: a, components: {transform: {}}, animations: [{component: transform, property: position.x, to: [1, 1, 1]}]}]", anim.ErrTypeMismatch},
		{"hash property", "objects: [{name: a, components: {sprite: {size: [1, 1]}}, animations: [{component: sprite, property: image, to: 1}]}]", anim.ErrUnsupportedType},
		{"missing property", "objects: [{name: a, components: {transform: {}}, animations: [{component: transform, property: skew, to: 1}]}]", component.ErrPropertyNotFound},
		{"broken script", "easings: [{name: bad, source: 'ease := func(t) {'}]", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := parseScene(t, "name: broken\n"+c.src)
			spec.Objects = append([]prefabs.ObjectSpec{{
				Name:       "first",
				Components: map[string]any{"transform": map[string]any{}},
				Animations: []prefabs.AnimationSpec{{
					Component: "transform",
					Property:  "position.x",
					To:        prefabs.ValueSpec{Values: []float32{1}},
					Playback:  "loop_forward",
					Duration:  1,
				}},
			}}, spec.Objects...)

			w, aw, curves := newWorlds()
			_, err := BuildScene(w, aw, curves, spec, SceneOptions{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.is != nil && !errors.Is(err, c.is) {
				t.Fatalf("expected %v, got %v", c.is, err)
			}
			if w.EntityCount() != 0 || aw.Len() != 0 {
				t.Fatalf("expected rollback, got %d entities and %d animations", w.EntityCount(), aw.Len())
			}
		})
	}
}

func TestReplaceSceneKeepsOldOnBuildError(t *testing.T) {
	w, aw, curves := newWorlds()
	good := parseScene(t, `
name: good
objects:
  - name: a
    components: {transform: {}}
    animations:
      - {component: transform, property: position.x, to: 5, playback: loop_forward, duration: 1}
`)
	scene, err := BuildScene(w, aw, curves, good, SceneOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	bad := parseScene(t, `
name: bad
objects:
  - name: b
    components: {transform: {}}
    animations:
      - {component: transform, property: scale, to: [1, 1, 1], easing: nope}
`)
	got, err := ReplaceScene(w, aw, curves, scene, bad, SceneOptions{})
	if err == nil {
		t.Fatalf("expected build error")
	}
	if got != scene {
		t.Fatalf("expected the running scene back")
	}
	a, ok := got.Entity("a")
	if !ok || !w.IsAlive(a) {
		t.Fatalf("expected running scene entity to survive")
	}
	if w.EntityCount() != 1 || aw.Len() != 1 {
		t.Fatalf("expected 1 entity and 1 animation, got %d and %d", w.EntityCount(), aw.Len())
	}

	next, err := ReplaceScene(w, aw, curves, got, good, SceneOptions{})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if next == got || w.IsAlive(a) {
		t.Fatalf("expected the old scene to be destroyed")
	}
	if w.EntityCount() != 1 || aw.Len() != 1 {
		t.Fatalf("expected 1 entity and 1 animation, got %d and %d", w.EntityCount(), aw.Len())
	}
}

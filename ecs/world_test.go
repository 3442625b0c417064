package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/propanim/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.EntityCount() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.EntityCount())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestEntityRecycleBumpsGeneration(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()

	if a.id() != b.id() {
		t.Fatalf("expected id reuse, got %s and %s", a, b)
	}
	if a == b {
		t.Fatalf("recycled handle must differ from the destroyed one")
	}
	if w.IsAlive(a) || !w.IsAlive(b) {
		t.Fatalf("stale handle must be dead and new handle alive")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must be invalid")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_get",
			run: func(t *testing.T) {
				if err := Add(w, e1, component.TransformComponent.Kind(), component.NewTransform()); err != nil {
					t.Fatalf("add: %v", err)
				}
				tr, ok := Get(w, e1, component.TransformComponent.Kind())
				if !ok || tr.Scale != [3]float32{1, 1, 1} {
					t.Fatalf("expected unit scale, got %v ok=%v", tr, ok)
				}
			},
		},
		{
			name: "nil_component",
			run: func(t *testing.T) {
				err := Add(w, e1, component.SpriteComponent.Kind(), nil)
				if !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
		},
		{
			name: "for_each2_intersection",
			run: func(t *testing.T) {
				_ = Add(w, e2, component.TransformComponent.Kind(), component.NewTransform())
				_ = Add(w, e2, component.SpriteComponent.Kind(), component.NewSprite(8, 8))
				_ = Add(w, e3, component.SpriteComponent.Kind(), component.NewSprite(8, 8))

				var seen []Entity
				ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Sprite) {
						seen = append(seen, e)
					})
				if len(seen) != 1 || seen[0] != e2 {
					t.Fatalf("expected only e2, got %v", seen)
				}
			},
		},
		{
			name: "remove",
			run: func(t *testing.T) {
				if !Remove(w, e3, component.SpriteComponent.Kind()) {
					t.Fatalf("remove should report true")
				}
				if Has(w, e3, component.SpriteComponent.Kind()) {
					t.Fatalf("sprite should be gone")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestWorldPropertyAccess(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	tr := component.NewTransform()
	if err := Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatalf("add: %v", err)
	}

	desc, err := w.GetProperty(e, component.TransformComponent.ID(), component.PositionProperty.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	desc.ValuePtr[0] = 5
	if tr.Position[0] != 5 {
		t.Fatalf("ValuePtr should alias the stored component")
	}

	if err := w.SetProperty(e, component.TransformComponent.ID(), component.PositionProperty.Elements[1], component.Number(6)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tr.Position[1] != 6 {
		t.Fatalf("expected 6, got %v", tr.Position[1])
	}

	_, err = w.GetProperty(e, component.SpriteComponent.ID(), component.TintProperty.ID)
	if !errors.Is(err, component.ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}

	w.DestroyEntity(e)
	_, err = w.GetProperty(e, component.TransformComponent.ID(), component.PositionProperty.ID)
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

type countingSystem struct {
	ticks int
	dt    float32
}

func (s *countingSystem) Update(w *World, dt float32) {
	s.ticks++
	s.dt = dt
	w.Events().Push(Event{Type: "tick"})
}

func TestUpdateRunsSystemsAndFlushes(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)

	var destroyed []Entity
	w.OnDestroy(func(e Entity) { destroyed = append(destroyed, e) })

	w.Update(0.5)
	w.Update(0.5)
	if sys.ticks != 2 || sys.dt != 0.5 {
		t.Fatalf("expected 2 ticks of 0.5, got %d of %v", sys.ticks, sys.dt)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events should be flushed after update")
	}

	e := w.CreateEntity()
	w.DestroyEntity(e)
	if len(destroyed) != 1 || destroyed[0] != e {
		t.Fatalf("destroy hook should see %s, got %v", e, destroyed)
	}
}

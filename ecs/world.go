package ecs

import (
	"fmt"

	"github.com/milk9111/propanim/ecs/component"
)

// World owns entities, their components and the system order. It is the
// property accessor for everything that animates entity state.
type World struct {
	entities  entityStore
	scheduler Scheduler
	events    EventQueue

	stores       map[component.Hash]*SparseSet[any]
	destroyHooks []func(Entity)
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.Hash]*SparseSet[any])}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity runs the destroy hooks, drops every component of e and
// retires the handle. It returns false when e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, hook := range w.destroyHooks {
		hook(e)
	}
	for _, set := range w.stores {
		set.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.alive
}

// OnDestroy registers fn to run before an entity's components are dropped.
func (w *World) OnDestroy(fn func(Entity)) {
	if w == nil || fn == nil {
		return
	}
	w.destroyHooks = append(w.destroyHooks, fn)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once with the fixed step dt.
func (w *World) Update(dt float32) {
	if w == nil {
		return
	}
	w.scheduler.Update(w, dt)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// GetProperty resolves a property of one of e's components.
func (w *World) GetProperty(e Entity, componentID, propertyID component.Hash) (component.PropertyDesc, error) {
	props, err := w.properties(e, componentID)
	if err != nil {
		return component.PropertyDesc{}, err
	}
	return props.GetProperty(propertyID)
}

// SetProperty writes a property of one of e's components.
func (w *World) SetProperty(e Entity, componentID, propertyID component.Hash, v component.Variant) error {
	props, err := w.properties(e, componentID)
	if err != nil {
		return err
	}
	return props.SetProperty(propertyID, v)
}

func (w *World) properties(e Entity, componentID component.Hash) (component.Properties, error) {
	if !w.IsAlive(e) {
		return nil, fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	value, ok := w.stores[componentID].Get(e.id())
	if !ok {
		return nil, fmt.Errorf("%w: entity %s component %s", component.ErrComponentNotFound, e, componentID)
	}
	props, ok := value.(component.Properties)
	if !ok {
		return nil, fmt.Errorf("%w: component %s has no properties", component.ErrPropertyNotFound, componentID)
	}
	return props, nil
}

func (w *World) store(id component.Hash) *SparseSet[any] {
	set, ok := w.stores[id]
	if !ok {
		set = &SparseSet[any]{}
		w.stores[id] = set
	}
	return set
}

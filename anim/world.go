package anim

import (
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

// Accessor reads and writes entity properties. *ecs.World implements it.
type Accessor interface {
	GetProperty(e ecs.Entity, componentID, propertyID component.Hash) (component.PropertyDesc, error)
	SetProperty(e ecs.Entity, componentID, propertyID component.Hash, v component.Variant) error
}

// liveness is implemented by accessors that can tell a destroyed entity
// from a live one.
type liveness interface {
	IsAlive(e ecs.Entity) bool
}

type Option func(*World)

func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.log = logger
	}
}

// WithEasing replaces the curve table used to shape progress.
func WithEasing(curves easing.Evaluator) Option {
	return func(w *World) {
		if curves != nil {
			w.curves = curves
		}
	}
}

// WithCapacity sets the initial size of the animation array.
func WithCapacity(n int) Option {
	return func(w *World) {
		w.capacity = n
	}
}

// WithMaxInstances caps the number of entities that may have animations at
// the same time.
func WithMaxInstances(n int) Option {
	return func(w *World) {
		w.maxInstances = n
	}
}

// World owns every animation targeting the entities of one accessor. It is
// not safe for concurrent use.
type World struct {
	accessor Accessor
	curves   easing.Evaluator
	log      zerolog.Logger

	capacity     int
	maxInstances int

	store *store
	index instanceIndex

	tick uint64
	// ticking is set for the duration of Update. Cancellations made while
	// it is set only mark animations, and deferred asks prune for another
	// walk.
	ticking   bool
	deferred  bool
	teardowns int
}

func NewWorld(accessor Accessor, opts ...Option) *World {
	w := &World{
		accessor:     accessor,
		curves:       easing.Default,
		log:          zlog.Logger,
		capacity:     DefaultCapacity,
		maxInstances: DefaultMaxInstances,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.store = newStore(w.capacity)
	w.index = newInstanceIndex(w.maxInstances)
	return w
}

// Stats is a snapshot of a World's occupancy.
type Stats struct {
	Animations int
	Capacity   int
	Instances  int
	FreeSlots  int
}

func (w *World) Stats() Stats {
	return Stats{
		Animations: w.store.len(),
		Capacity:   cap(w.store.records),
		Instances:  w.index.len(),
		FreeSlots:  w.store.slots.available(),
	}
}

// Len returns the number of live animations, stopped ones awaiting removal
// included.
func (w *World) Len() int {
	return w.store.len()
}

// IsAnimating reports whether e has a playing animation on the given
// property.
func (w *World) IsAnimating(e ecs.Entity, componentID, propertyID component.Hash) bool {
	head, ok := w.index.head(e)
	if !ok {
		return false
	}
	for slot := head; slot != invalidSlot; {
		a := w.store.get(slot)
		if a.playing && a.component == componentID && a.property == propertyID {
			return true
		}
		slot = a.next
	}
	return false
}

func (w *World) describe(e ecs.Entity, componentID, propertyID component.Hash) (component.PropertyDesc, error) {
	if !e.Valid() {
		return component.PropertyDesc{}, ErrInvalidInstance
	}
	if l, ok := w.accessor.(liveness); ok && !l.IsAlive(e) {
		return component.PropertyDesc{}, ErrInvalidInstance
	}
	return w.accessor.GetProperty(e, componentID, propertyID)
}

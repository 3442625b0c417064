package component

import "errors"

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
	ErrComponentNotFound    = errors.New("ecs: component not found")
	ErrPropertyNotFound     = errors.New("ecs: property not found")
	ErrPropertyTypeMismatch = errors.New("ecs: property type mismatch")
)

// ComponentKind identifies a component type by the hash of its name. The
// hash doubles as the component id used when addressing properties.
type ComponentKind[T any] struct {
	id   Hash
	name string
}

func NewComponentKind[T any](name string) ComponentKind[T] {
	return ComponentKind[T]{id: HashString(name), name: name}
}

func (k ComponentKind[T]) ID() Hash {
	return k.id
}

func (k ComponentKind[T]) Name() string {
	return k.name
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any](name string) ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T](name)}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

func (h ComponentHandle[T]) ID() Hash {
	return h.kind.id
}

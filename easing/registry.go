package easing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/milk9111/propanim/common"
)

var (
	ErrInvalidCurve = errors.New("easing: invalid curve")
	ErrBuiltinCurve = errors.New("easing: cannot replace builtin curve")
)

// Evaluator is the view of a curve table used by the animation scheduler.
type Evaluator interface {
	Value(kind Type, t float32) float32
}

// Registry holds the builtin curves plus any registered custom ones.
type Registry struct {
	mu     sync.RWMutex
	curves []Func
	labels []string
	names  map[string]Type
}

// Default is the process-wide registry used when no other is configured.
var Default = NewRegistry()

func NewRegistry() *Registry {
	curves, labels := builtins()
	r := &Registry{
		curves: curves,
		labels: labels,
		names:  make(map[string]Type, len(labels)),
	}
	for i, name := range labels {
		r.names[name] = Type(i)
	}
	return r
}

// Register adds fn under name. Registering an existing custom name swaps
// its curve in place and keeps the Type, so running animations pick up the
// new shape.
func (r *Registry) Register(name string, fn Func) (Type, error) {
	if name == "" || fn == nil {
		return 0, ErrInvalidCurve
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if kind, ok := r.names[name]; ok {
		if kind < builtinCount {
			return 0, fmt.Errorf("%w: %s", ErrBuiltinCurve, name)
		}
		r.curves[kind] = fn
		return kind, nil
	}
	kind := Type(len(r.curves))
	r.curves = append(r.curves, fn)
	r.labels = append(r.labels, name)
	r.names[name] = kind
	return kind, nil
}

// Lookup returns the Type registered under name.
func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kind, ok := r.names[name]
	return kind, ok
}

// Name returns the registered name of kind, or "" if unknown.
func (r *Registry) Name(kind Type) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(kind) >= len(r.labels) {
		return ""
	}
	return r.labels[kind]
}

// Value evaluates kind at t. t is clamped to [0,1]; unknown kinds are linear.
func (r *Registry) Value(kind Type, t float32) float32 {
	t = common.Clamp(t, 0, 1)
	r.mu.RLock()
	var fn Func
	if int(kind) < len(r.curves) {
		fn = r.curves[kind]
	}
	r.mu.RUnlock()
	if fn == nil {
		return t
	}
	return fn(t)
}

// Value evaluates kind on the Default registry.
func Value(kind Type, t float32) float32 {
	return Default.Value(kind, t)
}

package anim

import "github.com/milk9111/propanim/ecs"

const DefaultMaxInstances = 1024

// instanceIndex maps an entity to the head slot of its animation list.
type instanceIndex struct {
	heads map[ecs.Entity]uint16
	max   int
}

func newInstanceIndex(limit int) instanceIndex {
	if limit <= 0 {
		limit = DefaultMaxInstances
	}
	return instanceIndex{heads: make(map[ecs.Entity]uint16), max: limit}
}

func (x *instanceIndex) head(e ecs.Entity) (uint16, bool) {
	slot, ok := x.heads[e]
	return slot, ok
}

func (x *instanceIndex) full() bool {
	return len(x.heads) >= x.max
}

func (x *instanceIndex) len() int {
	return len(x.heads)
}

func (x *instanceIndex) erase(e ecs.Entity) {
	delete(x.heads, e)
}

// link appends slot at the tail of e's list, creating the entry on first use.
func (x *instanceIndex) link(s *store, e ecs.Entity, slot uint16) {
	head, ok := x.heads[e]
	if !ok {
		x.heads[e] = slot
		return
	}
	a := s.get(head)
	for a.next != invalidSlot {
		a = s.get(a.next)
	}
	a.next = slot
}

// unlink removes slot from e's list and erases the entry once it is empty.
func (x *instanceIndex) unlink(s *store, e ecs.Entity, slot uint16) bool {
	head, ok := x.heads[e]
	if !ok {
		return false
	}
	if head == slot {
		next := s.get(slot).next
		if next == invalidSlot {
			delete(x.heads, e)
		} else {
			x.heads[e] = next
		}
		return true
	}
	prev := s.get(head)
	for prev.next != invalidSlot {
		if prev.next == slot {
			prev.next = s.get(slot).next
			return true
		}
		prev = s.get(prev.next)
	}
	return false
}

package anim

import "github.com/milk9111/propanim/common"

const (
	// MaxCapacity is the hard cap on concurrently live animations.
	MaxCapacity = 65000

	DefaultCapacity   = 512
	minCapacityGrowth = 2048
)

// store is the dense animation array plus the slot indirection table.
// pos[slot] is the record's current index in records and is rewritten
// whenever compaction moves a record.
type store struct {
	records []animation
	pos     []uint16
	slots   slotPool
}

func newStore(capacity int) *store {
	capacity = common.Clamp(capacity, 1, MaxCapacity)
	return &store{
		records: make([]animation, 0, capacity),
		pos:     make([]uint16, MaxCapacity),
		slots:   slotPool{max: MaxCapacity},
	}
}

func (s *store) len() int {
	return len(s.records)
}

func (s *store) full() bool {
	return len(s.records) >= MaxCapacity
}

// push appends a blank record bound to a fresh slot. The returned pointer is
// valid until the next push.
func (s *store) push() (*animation, bool) {
	if s.full() {
		return nil, false
	}
	slot, ok := s.slots.acquire()
	if !ok {
		return nil, false
	}
	if len(s.records) == cap(s.records) {
		s.grow()
	}
	top := len(s.records)
	s.records = s.records[:top+1]
	a := &s.records[top]
	*a = animation{slot: slot, next: invalidSlot}
	s.pos[slot] = uint16(top)
	return a, true
}

// grow adds the mean of minCapacityGrowth and half the current capacity,
// never more than minCapacityGrowth, and never past MaxCapacity.
func (s *store) grow() {
	c := cap(s.records)
	growth := min(minCapacityGrowth, (minCapacityGrowth+c/2)/2)
	c = min(c+growth, MaxCapacity)
	grown := make([]animation, len(s.records), c)
	copy(grown, s.records)
	s.records = grown
}

func (s *store) get(slot uint16) *animation {
	return &s.records[s.pos[slot]]
}

func (s *store) index(slot uint16) int {
	return int(s.pos[slot])
}

// eraseSwap removes the record at i by moving the last record into its
// place, then releases the removed record's slot.
func (s *store) eraseSwap(i int) {
	slot := s.records[i].slot
	last := len(s.records) - 1
	if i != last {
		s.records[i] = s.records[last]
		s.pos[s.records[i].slot] = uint16(i)
	}
	s.records[last] = animation{}
	s.records = s.records[:last]
	s.slots.release(slot)
}

package anim

import "github.com/gammazero/deque"

const invalidSlot uint16 = 0xffff

// slotPool issues stable animation ids. Released slots are queued FIFO, so
// a freed id is handed out again as late as possible.
type slotPool struct {
	free deque.Deque[uint16]
	next uint32
	max  uint32
}

func (p *slotPool) acquire() (uint16, bool) {
	if p.free.Len() > 0 {
		return p.free.PopFront(), true
	}
	if p.next >= p.max {
		return invalidSlot, false
	}
	slot := uint16(p.next)
	p.next++
	return slot, true
}

func (p *slotPool) release(slot uint16) {
	p.free.PushBack(slot)
}

func (p *slotPool) available() int {
	return p.free.Len() + int(p.max-p.next)
}

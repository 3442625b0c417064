package anim

import (
	"github.com/milk9111/propanim/common"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
)

// StoppedFunc is called once when an animation stops. finished is true when
// a one-shot animation ran to completion and false when it was cancelled.
type StoppedFunc func(e ecs.Entity, componentID, propertyID component.Hash, finished bool, userdata1, userdata2 any)

type animation struct {
	entity    ecs.Entity
	component component.Hash
	property  component.Hash
	playback  Playback
	easing    easing.Type

	// value aliases the component field when the accessor exposed one.
	value *float32

	from        float32
	to          float32
	delay       float32
	cursor      float64
	duration    float32
	invDuration float32

	stopped   StoppedFunc
	userdata1 any
	userdata2 any

	slot uint16
	next uint16

	// startTick is the Update count at which the first active tick ran.
	startTick uint64

	playing     bool
	finished    bool
	composite   bool
	backwards   bool
	firstUpdate bool
	fromFixed   bool
}

// track carries everything needed to start one animation record.
type track struct {
	entity    ecs.Entity
	component component.Hash
	property  component.Hash
	playback  Playback
	easing    easing.Type
	value     *float32
	from      float32
	to        float32
	fromFixed bool
	duration  float32
	delay     float32
	stopped   StoppedFunc
	userdata1 any
	userdata2 any
	composite bool
}

func (a *animation) init(t track) {
	a.entity = t.entity
	a.component = t.component
	a.property = t.property
	a.playback = t.playback
	a.easing = t.easing
	a.value = t.value
	a.from = t.from
	a.to = t.to
	a.fromFixed = t.fromFixed
	a.delay = max(t.delay, 0)
	a.duration = max(t.duration, 0)
	a.invDuration = 0
	if a.duration > 0 {
		a.invDuration = 1 / a.duration
	}
	a.stopped = t.stopped
	a.userdata1 = t.userdata1
	a.userdata2 = t.userdata2
	a.composite = t.composite
	a.backwards = t.playback.backwards()
	a.playing = true
	a.firstUpdate = true
}

func (a *animation) stop(finished bool) {
	a.playing = false
	a.finished = finished
}

func (a *animation) notify() {
	if a.stopped != nil {
		a.stopped(a.entity, a.component, a.property, a.finished, a.userdata1, a.userdata2)
	}
}

// adjustCursor applies the playback mode to an advanced cursor and reports
// whether a one-shot animation completed.
func (a *animation) adjustCursor() bool {
	switch a.playback {
	case PlaybackOnceForward, PlaybackOnceBackward:
		if a.atEnd() {
			a.cursor = float64(a.duration)
			return true
		}
	case PlaybackLoopForward, PlaybackLoopBackward:
		a.wrap()
	case PlaybackLoopPingPong:
		if a.wrap()%2 == 1 {
			a.backwards = !a.backwards
		}
	}
	return false
}

// endEpsilon is the relative slack allowed when comparing the cursor to the
// duration. dt arrives as float32, so a step like 1/60 is rounded and a sum
// of exactly ceil(duration/dt) steps may fall just short of duration.
const endEpsilon = 1e-6

func (a *animation) atEnd() bool {
	d := float64(a.duration)
	return d-a.cursor <= endEpsilon*max(1, d)
}

// wrap folds the cursor back into [0, duration) and returns the number of
// whole cycles removed.
func (a *animation) wrap() int {
	if !a.atEnd() {
		return 0
	}
	if a.duration <= 0 {
		a.cursor = 0
		return 0
	}
	d := float64(a.duration)
	cycles := int(a.cursor / d)
	a.cursor -= float64(cycles) * d
	if a.cursor < 0 {
		a.cursor = 0
	}
	// A cursor within endEpsilon of a boundary counts as having crossed it.
	if a.atEnd() {
		a.cursor = 0
		cycles++
	}
	return cycles
}

func (a *animation) sample(curve easing.Evaluator) float32 {
	t := float32(1)
	if !a.atEnd() {
		t = common.Clamp(float32(a.cursor)*a.invDuration, 0, 1)
	}
	if a.backwards {
		t = 1 - t
	}
	return common.Lerp(a.from, a.to, curve.Value(a.easing, t))
}

func elementCount(t component.PropertyType) int {
	switch t {
	case component.PropertyTypeNumber:
		return 1
	case component.PropertyTypeVector3:
		return 3
	case component.PropertyTypeVector4, component.PropertyTypeQuat:
		return 4
	}
	return 0
}

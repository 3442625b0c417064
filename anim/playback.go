package anim

import (
	"fmt"
	"strings"
)

type Playback uint8

const (
	PlaybackNone Playback = iota
	PlaybackOnceForward
	PlaybackOnceBackward
	PlaybackLoopForward
	PlaybackLoopBackward
	PlaybackLoopPingPong
)

var playbackNames = [...]string{
	PlaybackNone:         "none",
	PlaybackOnceForward:  "once_forward",
	PlaybackOnceBackward: "once_backward",
	PlaybackLoopForward:  "loop_forward",
	PlaybackLoopBackward: "loop_backward",
	PlaybackLoopPingPong: "loop_pingpong",
}

func (p Playback) String() string {
	if int(p) < len(playbackNames) {
		return playbackNames[p]
	}
	return fmt.Sprintf("Playback(%d)", uint8(p))
}

// ParsePlayback accepts the names returned by String, case-insensitively.
func ParsePlayback(s string) (Playback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range playbackNames {
		if name == s {
			return Playback(i), nil
		}
	}
	return PlaybackNone, fmt.Errorf("anim: unknown playback %q", s)
}

func (p Playback) backwards() bool {
	return p == PlaybackOnceBackward || p == PlaybackLoopBackward
}

// Package easing maps normalized time t in [0,1] to eased time. Curves are
// addressed by Type so animation records stay small; custom curves are
// added to a Registry and receive Types past the builtin range.
package easing

import (
	"fmt"
	"math"
)

type Type uint16

const (
	Linear Type = iota
	InQuad
	OutQuad
	InOutQuad
	OutInQuad
	InCubic
	OutCubic
	InOutCubic
	OutInCubic
	InQuart
	OutQuart
	InOutQuart
	OutInQuart
	InQuint
	OutQuint
	InOutQuint
	OutInQuint
	InSine
	OutSine
	InOutSine
	OutInSine
	InExpo
	OutExpo
	InOutExpo
	OutInExpo
	InCirc
	OutCirc
	InOutCirc
	OutInCirc
	InElastic
	OutElastic
	InOutElastic
	OutInElastic
	InBack
	OutBack
	InOutBack
	OutInBack
	InBounce
	OutBounce
	InOutBounce
	OutInBounce

	builtinCount
)

// Func is a curve over t in [0,1]. It must be total on that range.
type Func func(t float32) float32

var families = []struct {
	name string
	in   Func
}{
	{"quad", func(t float32) float32 { return t * t }},
	{"cubic", func(t float32) float32 { return t * t * t }},
	{"quart", func(t float32) float32 { return t * t * t * t }},
	{"quint", func(t float32) float32 { return t * t * t * t * t }},
	{"sine", func(t float32) float32 { return 1 - float32(math.Cos(float64(t)*math.Pi/2)) }},
	{"expo", inExpo},
	{"circ", func(t float32) float32 { return 1 - float32(math.Sqrt(float64(1-t*t))) }},
	{"elastic", inElastic},
	{"back", func(t float32) float32 {
		const s = 1.70158
		return t * t * ((s+1)*t - s)
	}},
	{"bounce", func(t float32) float32 { return 1 - outBounce(1-t) }},
}

func inExpo(t float32) float32 {
	if t == 0 {
		return 0
	}
	return float32(math.Pow(2, 10*float64(t-1)))
}

func inElastic(t float32) float32 {
	if t == 0 || t == 1 {
		return t
	}
	const p = 0.3
	const s = p / 4
	u := float64(t - 1)
	return float32(-math.Pow(2, 10*u) * math.Sin((u-s)*2*math.Pi/p))
}

func outBounce(t float32) float32 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

func out(in Func) Func {
	return func(t float32) float32 { return 1 - in(1-t) }
}

func inOut(in Func) Func {
	return func(t float32) float32 {
		if t < 0.5 {
			return in(2*t) / 2
		}
		return 1 - in(2-2*t)/2
	}
}

func outIn(in Func) Func {
	o := out(in)
	return func(t float32) float32 {
		if t < 0.5 {
			return o(2*t) / 2
		}
		return in(2*t-1)/2 + 0.5
	}
}

func builtins() ([]Func, []string) {
	curves := make([]Func, 0, builtinCount)
	names := make([]string, 0, builtinCount)
	curves = append(curves, func(t float32) float32 { return t })
	names = append(names, "linear")
	for _, f := range families {
		curves = append(curves, f.in, out(f.in), inOut(f.in), outIn(f.in))
		names = append(names, "in_"+f.name, "out_"+f.name, "in_out_"+f.name, "out_in_"+f.name)
	}
	return curves, names
}

func (t Type) String() string {
	if name := Default.Name(t); name != "" {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

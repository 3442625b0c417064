package easing

import (
	"fmt"

	"github.com/milk9111/propanim/common"
)

// NewSampled builds a curve from evenly spaced samples over [0,1],
// interpolating linearly between neighbours.
func NewSampled(points []float32) (Func, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidCurve)
	}
	samples := append([]float32(nil), points...)
	if len(samples) == 1 {
		v := samples[0]
		return func(float32) float32 { return v }, nil
	}
	last := len(samples) - 1
	return func(t float32) float32 {
		pos := common.Clamp(t, 0, 1) * float32(last)
		i := int(pos)
		if i >= last {
			return samples[last]
		}
		return common.Lerp(samples[i], samples[i+1], pos-float32(i))
	}, nil
}

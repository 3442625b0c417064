package easing

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const (
	DefaultScriptSamples = 64
	maxScriptSamples     = 4096
)

// scriptDispatch calls the script's ease function for one sample.
const scriptDispatch = `
__out := ease(__t)
`

// CompileScript compiles a tengo script defining `ease := func(t) {...}`
// and samples it into a lookup curve, so ticks never enter the VM. The
// script may import the tengo "math" module.
func CompileScript(src []byte, samples int) (Func, error) {
	if samples <= 0 {
		samples = DefaultScriptSamples
	}
	if samples > maxScriptSamples {
		samples = maxScriptSamples
	}

	full := make([]byte, 0, len(src)+len(scriptDispatch))
	full = append(full, src...)
	full = append(full, scriptDispatch...)

	script := tengo.NewScript(full)
	_ = script.Add("__t", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("easing: compile script: %w", err)
	}

	points := make([]float32, samples+1)
	for i := range points {
		t := float64(i) / float64(samples)
		if err := compiled.Set("__t", t); err != nil {
			return nil, fmt.Errorf("easing: set t: %w", err)
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("easing: run script at t=%.3f: %w", t, err)
		}
		points[i] = float32(compiled.Get("__out").Float())
	}
	return NewSampled(points)
}

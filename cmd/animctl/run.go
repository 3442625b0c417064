package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
	"github.com/milk9111/propanim/ecs/entity"
	"github.com/milk9111/propanim/ecs/system"
	"github.com/milk9111/propanim/prefabs"
)

type runOptions struct {
	Scene  string
	Ticks  int
	DT     float64
	Traces []string
	Log    zerolog.Logger
}

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Tick a scene and print traced property values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.OutOrStdout(), runOptions{
				Scene:  *runScenePath,
				Ticks:  *runTicks,
				DT:     *runDT,
				Traces: *runTraces,
				Log:    zlog.Logger,
			})
		},
	}

	runScenePath *string
	runTicks     *int
	runDT        *float64
	runTraces    *[]string
)

func init() {
	runScenePath = runCmd.Flags().String("scene", "demo.yaml", "Scene file, or the name of an embedded scene")
	runTicks = runCmd.Flags().Int("ticks", 60, "Number of ticks to run")
	runDT = runCmd.Flags().Float64("dt", 1.0/60, "Seconds per tick")
	runTraces = runCmd.Flags().StringSlice("trace", nil, "Properties to print, as object:component.property")
	Root.AddCommand(runCmd)
}

type trace struct {
	label     string
	entity    ecs.Entity
	component component.Hash
	property  component.Hash
}

func loadScene(path string) (*prefabs.SceneSpec, error) {
	if _, err := os.Stat(path); err == nil {
		return prefabs.LoadSceneFile(path)
	}
	return prefabs.LoadScene(path)
}

func runScene(out io.Writer, opts runOptions) error {
	if opts.Ticks < 0 || opts.DT <= 0 {
		return fmt.Errorf("run: ticks must be >= 0 and dt > 0")
	}
	spec, err := loadScene(opts.Scene)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	curves := easing.NewRegistry()
	aw := anim.NewWorld(w, anim.WithLogger(opts.Log), anim.WithEasing(curves))
	w.AddSystem(system.NewAnimationSystem(w, aw))
	events := system.NewEventLogSystem(opts.Log)
	events.OnEvent = func(evt ecs.Event) {
		if stopped, ok := evt.Data.(system.AnimationStopped); ok {
			fmt.Fprintf(out, "stopped %s finished=%t\n", stopped.Name, stopped.Finished)
		}
	}
	w.AddSystem(events)

	scene, err := entity.BuildScene(w, aw, curves, spec, entity.SceneOptions{Stopped: system.PushStopped(w)})
	if err != nil {
		return err
	}

	traces := make([]trace, 0, len(opts.Traces))
	for _, raw := range opts.Traces {
		tr, err := parseTrace(scene, raw)
		if err != nil {
			return err
		}
		traces = append(traces, tr)
	}

	for tick := 1; tick <= opts.Ticks; tick++ {
		w.Update(float32(opts.DT))
		if len(traces) == 0 {
			continue
		}
		fmt.Fprintf(out, "%4d %8.3f", tick, float64(tick)*opts.DT)
		for _, tr := range traces {
			desc, err := w.GetProperty(tr.entity, tr.component, tr.property)
			if err != nil {
				return fmt.Errorf("trace %s: %w", tr.label, err)
			}
			fmt.Fprintf(out, "  %s=%s", tr.label, formatVariant(desc.Variant))
		}
		fmt.Fprintln(out)
	}

	stats := aw.Stats()
	fmt.Fprintf(out, "animations=%d capacity=%d instances=%d\n", stats.Animations, stats.Capacity, stats.Instances)
	return nil
}

func parseTrace(scene *entity.Scene, raw string) (trace, error) {
	object, path, ok := strings.Cut(raw, ":")
	if !ok {
		return trace{}, fmt.Errorf("trace %q: want object:component.property", raw)
	}
	comp, prop, ok := strings.Cut(path, ".")
	if !ok || comp == "" || prop == "" {
		return trace{}, fmt.Errorf("trace %q: want object:component.property", raw)
	}
	e, ok := scene.Entity(object)
	if !ok {
		return trace{}, fmt.Errorf("trace %q: no object %q", raw, object)
	}
	return trace{
		label:     raw,
		entity:    e,
		component: component.HashString(comp),
		property:  component.HashString(prop),
	}, nil
}

func formatVariant(v component.Variant) string {
	switch v.Type {
	case component.PropertyTypeNumber:
		return fmt.Sprintf("%.3f", v.Number)
	case component.PropertyTypeVector3:
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.V4[0], v.V4[1], v.V4[2])
	case component.PropertyTypeVector4, component.PropertyTypeQuat:
		return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", v.V4[0], v.V4[1], v.V4[2], v.V4[3])
	case component.PropertyTypeHash:
		return v.Hash.String()
	case component.PropertyTypeBool:
		return fmt.Sprint(v.Bool)
	}
	return "nil"
}

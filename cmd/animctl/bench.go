package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/felixge/fgprof"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/propanim/anim"
	"github.com/milk9111/propanim/easing"
	"github.com/milk9111/propanim/ecs"
	"github.com/milk9111/propanim/ecs/component"
	"github.com/milk9111/propanim/ecs/system"
)

type benchOptions struct {
	Objects int
	Ticks   int
	DT      float64
	Churn   int
	Seed    int64
	Log     zerolog.Logger
}

type benchResult struct {
	Started   int
	Rejected  int
	Stopped   int
	Cancelled int
	Elapsed   time.Duration
	Stats     anim.Stats
}

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Drive a churning population of animations and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *benchProfile != "" {
				f, err := os.Create(*benchProfile)
				if err != nil {
					return fmt.Errorf("bench: create profile: %w", err)
				}
				defer f.Close()
				stop := fgprof.Start(f, fgprof.FormatPprof)
				defer func() {
					if err := stop(); err != nil {
						zlog.Error().Err(err).Msg("problem stopping fgprof")
					}
				}()
			}
			res, err := runBenchWorkers(benchOptions{
				Objects: *benchObjects,
				Ticks:   *benchTicks,
				DT:      *benchDT,
				Churn:   *benchChurn,
				Seed:    *benchSeed,
				Log:     zlog.Logger,
			}, *benchWorkers)
			if err != nil {
				return err
			}
			printBench(cmd.OutOrStdout(), res, *benchTicks)
			return nil
		},
	}

	benchObjects *int
	benchTicks   *int
	benchDT      *float64
	benchChurn   *int
	benchSeed    *int64
	benchWorkers *int
	benchProfile *string
)

func init() {
	benchObjects = benchCmd.Flags().Int("objects", 1000, "Number of animated objects")
	benchTicks = benchCmd.Flags().Int("ticks", 600, "Number of ticks to run")
	benchDT = benchCmd.Flags().Float64("dt", 1.0/60, "Seconds per tick")
	benchChurn = benchCmd.Flags().Int("churn", 200, "Animate or cancel calls per tick")
	benchSeed = benchCmd.Flags().Int64("seed", 1, "Random seed")
	benchWorkers = benchCmd.Flags().Int("workers", 1, "Independent worlds to run in parallel")
	benchProfile = benchCmd.Flags().String("fgprof", "", "Write a wall-clock profile in pprof format to this file")
	Root.AddCommand(benchCmd)
}

var benchPlaybacks = []anim.Playback{
	anim.PlaybackOnceForward,
	anim.PlaybackOnceBackward,
	anim.PlaybackLoopForward,
	anim.PlaybackLoopPingPong,
}

func runBench(opts benchOptions) (benchResult, error) {
	var res benchResult
	if opts.Objects <= 0 || opts.Ticks < 0 || opts.DT <= 0 || opts.Churn < 0 {
		return res, fmt.Errorf("bench: objects must be > 0, dt > 0, ticks and churn >= 0")
	}

	w := ecs.NewWorld()
	aw := anim.NewWorld(w, anim.WithLogger(opts.Log), anim.WithMaxInstances(opts.Objects))
	w.AddSystem(system.NewAnimationSystem(w, aw))

	ents := make([]ecs.Entity, opts.Objects)
	for i := range ents {
		ents[i] = w.CreateEntity()
		if err := ecs.Add(w, ents[i], component.TransformComponent.Kind(), component.NewTransform()); err != nil {
			return res, err
		}
		if err := ecs.Add(w, ents[i], component.SpriteComponent.Kind(), component.NewSprite(1, 1)); err != nil {
			return res, err
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	stopped := func(_ ecs.Entity, _, _ component.Hash, finished bool, _, _ any) {
		if finished {
			res.Stopped++
		} else {
			res.Cancelled++
		}
	}
	transformID := component.TransformComponent.ID()
	spriteID := component.SpriteComponent.ID()

	start := time.Now()
	for tick := 0; tick < opts.Ticks; tick++ {
		for i := 0; i < opts.Churn; i++ {
			e := ents[rng.Intn(len(ents))]
			req := anim.Request{
				Entity:    e,
				Playback:  benchPlaybacks[rng.Intn(len(benchPlaybacks))],
				Easing:    easing.Type(rng.Intn(int(easing.OutInBounce) + 1)),
				Duration:  0.1 + rng.Float32()*2,
				Delay:     rng.Float32() * 0.25,
				Stopped:   stopped,
				Userdata1: tick,
			}
			switch rng.Intn(8) {
			case 0:
				aw.CancelAllAnimations(e)
				continue
			case 1:
				_ = aw.CancelAnimations(e, transformID, component.PositionProperty.ID)
				continue
			case 2, 3:
				req.Component, req.Property = transformID, component.PositionProperty.ID
				req.To = component.Vector3(rng.Float32()*640, rng.Float32()*480, 0)
			case 4:
				req.Component, req.Property = spriteID, component.TintProperty.ID
				req.To = component.Vector4(rng.Float32(), rng.Float32(), rng.Float32(), 1)
			case 5:
				req.Component, req.Property = transformID, component.EulerProperty.Elements[2]
				req.To = component.Number(rng.Float64() * 360)
			default:
				req.Component, req.Property = transformID, component.ScaleProperty.Elements[rng.Intn(2)]
				req.To = component.Number(0.5 + rng.Float64())
			}
			if err := aw.Animate(req); err != nil {
				if !errors.Is(err, anim.ErrBufferOverflow) {
					return res, err
				}
				res.Rejected++
				continue
			}
			res.Started++
		}
		w.Update(float32(opts.DT))
	}
	res.Elapsed = time.Since(start)
	res.Stats = aw.Stats()
	return res, nil
}

// runBenchWorkers runs one world per worker, each seeded differently, and
// sums their results. Elapsed is the wall time of the whole run.
func runBenchWorkers(opts benchOptions, workers int) (benchResult, error) {
	if workers <= 1 {
		return runBench(opts)
	}
	results := make([]benchResult, workers)
	start := time.Now()
	var g errgroup.Group
	for i := range results {
		o := opts
		o.Seed = opts.Seed + int64(i)
		g.Go(func() error {
			res, err := runBench(o)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return benchResult{}, err
	}

	var total benchResult
	for _, r := range results {
		total.Started += r.Started
		total.Rejected += r.Rejected
		total.Stopped += r.Stopped
		total.Cancelled += r.Cancelled
		total.Stats.Animations += r.Stats.Animations
		total.Stats.Capacity += r.Stats.Capacity
		total.Stats.Instances += r.Stats.Instances
		total.Stats.FreeSlots += r.Stats.FreeSlots
	}
	total.Elapsed = time.Since(start)
	return total, nil
}

func printBench(out io.Writer, res benchResult, ticks int) {
	perTick := time.Duration(0)
	if ticks > 0 {
		perTick = res.Elapsed / time.Duration(ticks)
	}
	fmt.Fprintf(out, "ticks=%d elapsed=%s per_tick=%s\n", ticks, res.Elapsed, perTick)
	fmt.Fprintf(out, "started=%d rejected=%d finished=%d cancelled=%d\n", res.Started, res.Rejected, res.Stopped, res.Cancelled)
	fmt.Fprintf(out, "live=%d capacity=%d instances=%d free_slots=%d\n",
		res.Stats.Animations, res.Stats.Capacity, res.Stats.Instances, res.Stats.FreeSlots)
}

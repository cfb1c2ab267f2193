package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vk/buildgrid/internal/target"
)

// runWaveParallel runs every target in wave under a bounded pool of at
// most workers goroutines, reading off a shared job channel — the same
// channel-plus-WaitGroup worker-pool shape the teacher's whole-graph
// executor used, narrowed here to a single wave and given a hard
// barrier at the end: runWaveParallel does not return until every
// member of wave has finished.
//
// skip is decided once, from the registry's error state as observed
// before this wave started; it is NOT re-read per target, so one
// target in the wave failing does not short-circuit its wave-mates —
// only targets in later waves see the failure.
func (e *Executor) runWaveParallel(ctx context.Context, wave []*target.Target, workers int) {
	skip := e.reg.HasErrors()

	jobs := make(chan *target.Target, len(wave))
	for _, t := range wave {
		jobs <- t
	}
	close(jobs)

	if workers > len(wave) {
		workers = len(wave)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				e.runTarget(ctx, t, skip)
			}
		}()
	}
	wg.Wait()
}

// runTarget invokes one target's body, records its duration and any
// error, and never lets a panic or error escape to the caller. When
// skip is true the body is not invoked at all and nothing is recorded
// — this is the fail-fast short-circuit of spec §5.
func (e *Executor) runTarget(ctx context.Context, t *target.Target, skip bool) {
	if skip {
		return
	}

	depString := dependencyString(t)
	e.sink.TraceStartTarget(t.Name, t.Description, depString)
	e.reg.SetCurrentTarget(t.Name)

	started := time.Now()
	err := runBody(t)
	elapsed := time.Since(started)

	e.reg.AddExecutedTarget(t.Name, elapsed)
	e.reg.SetCurrentTarget("")
	e.sink.TraceEndTarget(t.Name)

	if err != nil {
		e.recordError(t.Name, err)
	}
}

// runBody invokes t.Body, converting a panic into an error instead of
// letting it unwind through the wave's goroutines.
func runBody(t *target.Target) (err error) {
	if t.Body == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("target %q panicked: %v", t.Name, r)
		}
	}()
	return t.Body()
}

func dependencyString(t *target.Target) string {
	all := make([]string, 0, len(t.HardDependencies)+len(t.SoftDependencies))
	all = append(all, t.HardDependencies...)
	all = append(all, t.SoftDependencies...)
	return strings.Join(all, ", ")
}

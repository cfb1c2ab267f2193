// Package executor drives the waves a scheduler.DetermineBuildOrder
// produces: bounded-parallel execution within a wave, a hard barrier
// between waves, fail-fast short-circuiting of later waves/targets
// once an error has been recorded, and the guaranteed hook/report
// post-phase of spec §4.5.
package executor

import (
	"context"
	"io"
	"time"

	"github.com/vk/buildgrid/internal/buildconfig"
	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/report"
	"github.com/vk/buildgrid/internal/scheduler"
	"github.com/vk/buildgrid/internal/sink"
	"github.com/vk/buildgrid/internal/target"
)

// MetaDotGraphLong/MetaDotGraphShort and MetaListLong/MetaListShort are
// the well-known root-target names spec §6 reserves for the DOT and
// list reporters.
const (
	MetaDotGraphLong  = "--dotGraph"
	MetaDotGraphShort = "-dg"
	MetaListLong      = "--listTargets"
	MetaListShort     = "-lt"
)

// Executor runs a target.Registry's graph to completion for one root
// target name.
type Executor struct {
	reg  *target.Registry
	sink sink.Sink
	opts buildconfig.Options
	out  io.Writer
}

// New builds an Executor over reg, reporting through out and sink,
// configured by opts.
func New(reg *target.Registry, s sink.Sink, opts buildconfig.Options, out io.Writer) *Executor {
	return &Executor{reg: reg, sink: s, opts: opts, out: out}
}

// Run implements spec §4.5's ten-step entry point. It always returns a
// process exit code: 0 on success, opts.ExitCode if any error was
// recorded during the run.
func (e *Executor) Run(ctx context.Context, targetName string) (code int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("run started", "target", targetName, "parallel_jobs", e.opts.ParallelJobs)

	switch targetName {
	case MetaDotGraphLong, MetaDotGraphShort:
		_ = report.WriteDOT(e.out, e.reg)
		return 0
	case MetaListLong, MetaListShort:
		report.WriteTargetList(e.out, e.reg)
		return 0
	}

	if e.opts.List {
		report.WriteTargetList(e.out, e.reg)
		return 0
	}

	if text, pending := e.reg.PendingDescription(); pending {
		e.sink.TraceError("description set with no target to attach it to: " + text)
		return e.opts.ExitCode
	}

	start := time.Now()
	defer func() {
		code = e.postPhase(ctx, start)
	}()

	rootTarget, err := e.reg.GetTarget(targetName)
	if err != nil {
		e.reg.RecordError(targetName, err.Error())
		return
	}

	if err := report.WriteShortGraph(e.out, e.reg, targetName); err != nil {
		e.reg.RecordError(targetName, err.Error())
		return
	}

	if e.opts.SingleTarget {
		e.runTarget(ctx, rootTarget, e.reg.HasErrors())
		return
	}

	waves, err := scheduler.DetermineBuildOrder(e.reg, targetName)
	if err != nil {
		e.reg.RecordError(targetName, err.Error())
		return
	}

	parallel := e.opts.ParallelJobs
	if parallel < 1 {
		parallel = 1
	}

	if parallel > 1 {
		order := waveNames(waves)
		e.reg.SetCurrentOrder(order)
		report.WriteRunningOrder(e.out, order, true)
		for _, wave := range waves {
			e.runWaveParallel(ctx, wave, parallel)
		}
		return
	}

	flat := flattenWaves(waves)
	e.reg.SetCurrentOrder([][]string{namesOf(flat)})
	report.WriteRunningOrder(e.out, e.reg.CurrentOrder(), false)
	for _, t := range flat {
		e.runTarget(ctx, t, e.reg.HasErrors())
	}
	return
}

func waveNames(waves [][]*target.Target) [][]string {
	out := make([][]string, len(waves))
	for i, wave := range waves {
		out[i] = namesOf(wave)
	}
	return out
}

func namesOf(targets []*target.Target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Name
	}
	return out
}

func flattenWaves(waves [][]*target.Target) []*target.Target {
	var flat []*target.Target
	for _, wave := range waves {
		flat = append(flat, wave...)
	}
	return flat
}

// postPhase implements step 10 of spec §4.5: run activated
// build-failure hooks iff errors were recorded, always run activated
// final hooks, request cleanup, print the time summary (and, on
// failure, the error summary), and return the configured exit code.
func (e *Executor) postPhase(ctx context.Context, _ time.Time) int {
	if e.reg.HasErrors() {
		e.runHooks(ctx, e.reg.ActivatedBuildFailureTargets())
	}
	e.runHooks(ctx, e.reg.ActivatedFinalTargets())

	e.sink.KillAllCreatedProcesses()
	e.sink.CloseAllOpenTags()

	report.WriteTimeSummary(e.out, e.reg.ExecutedTimes(), e.reg.HasErrors())

	if e.reg.HasErrors() {
		report.WriteErrorSummary(e.out, e.reg.Errors())
		return e.opts.ExitCode
	}
	return 0
}

// runHooks runs each named hook target's body independently: hooks
// never short-circuit on prior errors, and one hook's failure does not
// stop the rest from running.
func (e *Executor) runHooks(ctx context.Context, names []string) {
	for _, name := range names {
		t, err := e.reg.GetTarget(name)
		if err != nil {
			continue
		}
		e.runTarget(ctx, t, false)
	}
}

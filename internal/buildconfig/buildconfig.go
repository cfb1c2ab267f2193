// Package buildconfig resolves the executor's external configuration
// (spec §6): parallel-jobs, single-target, list, and the process exit
// code on failure.
//
// Resolution priority mirrors the teacher application's own layering
// (internal/cli.Parse feeding internal/app.Config): explicit CLI flags
// win, environment variables are the fallback, and hard defaults are
// the floor.
package buildconfig

import (
	"os"
	"strconv"
	"strings"
)

// Options is the resolved configuration the Executor consumes.
type Options struct {
	// ParallelJobs is P, the bounded worker-pool size for each wave.
	ParallelJobs int
	// SingleTarget, when true, runs only the root target's body and
	// skips all dependencies.
	SingleTarget bool
	// List, when true, is equivalent to passing --listTargets as the
	// root target name.
	List bool
	// ExitCode is the process exit code to set when the run ends with
	// any recorded errors.
	ExitCode int
	// PrintStackTraceOnError attaches a Go stack trace to a recorded
	// target-body error's message (spec §7).
	PrintStackTraceOnError bool
	// TargetFile, if non-empty, is a declarative HCL target file to
	// load (internal/hclconfig) before resolving the root target name.
	TargetFile string
}

// Default returns the hard defaults named by spec §6.
func Default() Options {
	return Options{
		ParallelJobs: 1,
		ExitCode:     42,
	}
}

const (
	envParallelJobs = "BUILDGRID_PARALLEL_JOBS"
	envSingleTarget = "BUILDGRID_SINGLE_TARGET"
	envList         = "BUILDGRID_LIST"
	envExitCode     = "BUILDGRID_EXIT_CODE"
	envStackTrace   = "BUILDGRID_PRINT_STACK_TRACE"
	envTargetFile   = "BUILDGRID_TARGET_FILE"
)

// FromEnvironment layers environment-variable overrides on top of base.
// Unset or unparsable variables leave base's value untouched.
func FromEnvironment(base Options) Options {
	if v, ok := os.LookupEnv(envParallelJobs); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			base.ParallelJobs = n
		}
	}
	if v, ok := os.LookupEnv(envSingleTarget); ok {
		base.SingleTarget = parseBoolish(v)
	}
	if v, ok := os.LookupEnv(envList); ok {
		base.List = parseBoolish(v)
	}
	if v, ok := os.LookupEnv(envExitCode); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			base.ExitCode = n
		}
	}
	if v, ok := os.LookupEnv(envStackTrace); ok {
		base.PrintStackTraceOnError = parseBoolish(v)
	}
	if v, ok := os.LookupEnv(envTargetFile); ok && v != "" {
		base.TargetFile = v
	}
	return base
}

// parseBoolish accepts the usual truthy spellings ("1", "true", "yes",
// "on") case-insensitively; anything else is false.
func parseBoolish(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

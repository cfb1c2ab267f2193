// Package cli parses the buildgrid command line into a
// buildconfig.Options and a resolved root target name, in the same
// flag.NewFlagSet-plus-custom-Usage shape the teacher application used.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/buildgrid/internal/buildconfig"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Result is what Parse hands back to cmd/buildgrid: the resolved
// options, the root target name to run, and the status-server port (0
// disables it).
type Result struct {
	Options    buildconfig.Options
	Target     string
	StatusPort int
}

// Parse processes command-line arguments on top of buildconfig
// defaults and environment overrides. It returns a Result, a boolean
// indicating the program should exit cleanly (help was printed), or an
// ExitError carrying the process exit code.
func Parse(args []string, output io.Writer) (*Result, bool, error) {
	slog.Debug("cli parser started")
	flagSet := flag.NewFlagSet("buildgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
buildgrid - a level-scheduled, bounded-parallelism build-target runner.

Usage:
  buildgrid [options] [TARGET]

Arguments:
  TARGET
    Name of the target to run, or one of the meta-targets
    --dotGraph/-dg (print the dependency graph as DOT) and
    --listTargets/-lt (print every registered target).

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := buildconfig.FromEnvironment(buildconfig.Default())

	parallelFlag := flagSet.Int("parallel", defaults.ParallelJobs, "Number of targets to run concurrently per wave.")
	singleFlag := flagSet.Bool("single-target", defaults.SingleTarget, "Run only the given target's body, skipping its dependencies.")
	listFlag := flagSet.Bool("list", defaults.List, "List every registered target and exit.")
	exitCodeFlag := flagSet.Int("exit-code", defaults.ExitCode, "Process exit code to use when the run records any error.")
	stackTraceFlag := flagSet.Bool("print-stack-trace", defaults.PrintStackTraceOnError, "Attach a Go stack trace to each recorded error.")
	targetFileFlag := flagSet.String("target-file", defaults.TargetFile, "Path to a declarative HCL target file to load before running.")
	statusPortFlag := flagSet.Int("status-port", 0, "Port for the HTTP status server. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("arguments parsed successfully")

	target := ""
	if flagSet.NArg() > 0 {
		target = flagSet.Arg(0)
	}

	if target == "" && !*listFlag {
		flagSet.Usage()
		return nil, true, nil
	}

	opts := defaults
	opts.ParallelJobs = *parallelFlag
	opts.SingleTarget = *singleFlag
	opts.List = *listFlag
	opts.ExitCode = *exitCodeFlag
	opts.PrintStackTraceOnError = *stackTraceFlag
	opts.TargetFile = *targetFileFlag

	if opts.ParallelJobs < 1 {
		return nil, false, &ExitError{Code: 2, Message: "parallel must be at least 1"}
	}

	slog.Debug("cli parser finished successfully", "target", target, "options", opts)
	return &Result{Options: opts, Target: target, StatusPort: *statusPortFlag}, false, nil
}

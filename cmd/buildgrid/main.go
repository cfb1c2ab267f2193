// Command buildgrid runs one target of a target.Registry's dependency
// graph to completion, in level-scheduled, bounded-parallelism waves.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vk/buildgrid/internal/cli"
	"github.com/vk/buildgrid/internal/ctxlog"
	"github.com/vk/buildgrid/internal/executor"
	"github.com/vk/buildgrid/internal/hclconfig"
	"github.com/vk/buildgrid/internal/sink"
	"github.com/vk/buildgrid/internal/statusserver"
	"github.com/vk/buildgrid/internal/target"
)

// main is the entrypoint for the buildgrid application.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Register is the hook an embedding program uses to populate reg with
// Go-authored targets; run calls it after parsing flags and before
// loading the target file and calling Run. The
// default binary has nothing to register on its own; it only runs
// targets loaded from an HCL target file.
var Register func(reg *target.Registry)

func run(outW *os.File, args []string) error {
	result, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	opts := result.Options
	logger := slog.Default()
	ctx := ctxlog.WithLogger(context.Background(), logger)
	reg := target.New()

	if Register != nil {
		Register(reg)
	}

	if opts.TargetFile != "" {
		if err := hclconfig.Load(reg, opts.TargetFile); err != nil {
			return fmt.Errorf("loading target file: %w", err)
		}
	}

	if result.StatusPort != 0 {
		statusserver.New(logger, reg).Start(result.StatusPort)
	}

	e := executor.New(reg, sink.NewSlog(logger), opts, outW)
	code := e.Run(ctx, result.Target)
	if code != 0 {
		return &cli.ExitError{Code: code, Message: "build failed"}
	}
	return nil
}

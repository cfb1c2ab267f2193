package executor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vk/buildgrid/internal/buildconfig"
	"github.com/vk/buildgrid/internal/sink/sinkmock"
	"github.com/vk/buildgrid/internal/target"
)

func chattySink(ctrl *gomock.Controller) *sinkmock.MockSink {
	m := sinkmock.NewMockSink(ctrl)
	m.EXPECT().TraceStartTarget(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().TraceEndTarget(gomock.Any()).AnyTimes()
	m.EXPECT().TraceError(gomock.Any()).AnyTimes()
	m.EXPECT().SendVendorError(gomock.Any()).AnyTimes()
	m.EXPECT().CloseAllOpenTags().AnyTimes()
	m.EXPECT().KillAllCreatedProcesses().AnyTimes()
	return m
}

func TestRun_AllTargetsSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	var ran []string
	_, err := reg.CreateTarget("base", func() error { ran = append(ran, "base"); return nil })
	require.NoError(t, err)
	_, err = reg.CreateTarget("app", func() error { ran = append(ran, "app"); return nil })
	require.NoError(t, err)
	require.NoError(t, reg.AddHardDependencyEnd("app", "base"))

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"base", "app"}, ran)
	assert.False(t, reg.HasErrors())
	assert.Contains(t, out.String(), "Status: Ok")
}

func TestRun_FailureShortCircuitsSequential(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	var ran []string
	_, err := reg.CreateTarget("base", func() error { ran = append(ran, "base"); return errors.New("boom") })
	require.NoError(t, err)
	_, err = reg.CreateTarget("mid", func() error { ran = append(ran, "mid"); return nil })
	require.NoError(t, err)
	_, err = reg.CreateTarget("app", func() error { ran = append(ran, "app"); return nil })
	require.NoError(t, err)
	require.NoError(t, reg.AddHardDependencyEnd("app", "mid"))
	require.NoError(t, reg.AddHardDependencyEnd("mid", "base"))

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, opts.ExitCode, code)
	assert.Equal(t, []string{"base"}, ran)
	assert.True(t, reg.HasErrors())
	assert.Contains(t, out.String(), "Status: Failure")
}

func TestRun_FinalHookAlwaysRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	finalRan := false
	_, err := reg.CreateTarget("app", func() error { return errors.New("boom") })
	require.NoError(t, err)
	_, err = reg.RegisterFinal("cleanup", func() error { finalRan = true; return nil })
	require.NoError(t, err)
	require.NoError(t, reg.ActivateFinal("cleanup"))

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, opts.ExitCode, code)
	assert.True(t, finalRan)
}

func TestRun_BuildFailureHookOnlyOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	hookRan := false
	_, err := reg.CreateTarget("app", func() error { return nil })
	require.NoError(t, err)
	_, err = reg.RegisterBuildFailure("notify", func() error { hookRan = true; return nil })
	require.NoError(t, err)
	require.NoError(t, reg.ActivateBuildFailure("notify"))

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, 0, code)
	assert.False(t, hookRan)
}

func TestRun_SingleTargetSkipsDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	var ran []string
	_, err := reg.CreateTarget("base", func() error { ran = append(ran, "base"); return nil })
	require.NoError(t, err)
	_, err = reg.CreateTarget("app", func() error { ran = append(ran, "app"); return nil })
	require.NoError(t, err)
	require.NoError(t, reg.AddHardDependencyEnd("app", "base"))

	opts := buildconfig.Default()
	opts.SingleTarget = true
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"app"}, ran)
}

func TestRun_DotGraphMetaTargetShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	_, err := reg.CreateTarget("app", func() error { return nil })
	require.NoError(t, err)

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), MetaDotGraphLong)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "digraph G {")
	assert.False(t, reg.HasErrors())
}

func TestRun_PendingDescriptionFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	require.NoError(t, reg.SetDescription("orphaned"))

	opts := buildconfig.Default()
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, opts.ExitCode, code)
}

func TestRun_ParallelWaveRunsAllMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := chattySink(ctrl)

	reg := target.New()
	var ranA, ranB bool
	_, err := reg.CreateTarget("a", func() error { ranA = true; return nil })
	require.NoError(t, err)
	_, err = reg.CreateTarget("b", func() error { ranB = true; return nil })
	require.NoError(t, err)
	_, err = reg.CreateTarget("app", func() error { return nil })
	require.NoError(t, err)
	require.NoError(t, reg.AddHardDependencyEnd("app", "a"))
	require.NoError(t, reg.AddHardDependencyEnd("app", "b"))

	opts := buildconfig.Default()
	opts.ParallelJobs = 4
	var out bytes.Buffer
	e := New(reg, s, opts, &out)

	code := e.Run(context.Background(), "app")

	assert.Equal(t, 0, code)
	assert.True(t, ranA)
	assert.True(t, ranB)
	assert.Len(t, reg.CurrentOrder(), 2)
}

func TestRecordError_MultiErrorNotifiesVendorOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := sinkmock.NewMockSink(ctrl)
	s.EXPECT().SendVendorError(gomock.Any()).Times(1)

	reg := target.New()
	opts := buildconfig.Default()
	e := New(reg, s, opts, &bytes.Buffer{})

	e.recordError("app", &MultiError{Message: "two failures", Causes: []string{"case 1", "case 2"}})

	errs := reg.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, "two failures", errs[0].Message)
	assert.Equal(t, "case 1", errs[1].Message)
	assert.Equal(t, "case 2", errs[2].Message)
}

func TestRecordError_FailedTestsErrorSkipsVendorNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := sinkmock.NewMockSink(ctrl)

	reg := target.New()
	opts := buildconfig.Default()
	e := New(reg, s, opts, &bytes.Buffer{})

	e.recordError("app", &FailedTestsError{Message: "2 tests failed", Causes: []string{"TestA", "TestB"}})

	assert.Len(t, reg.Errors(), 3)
}

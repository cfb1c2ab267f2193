package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTarget_RejectsDuplicateCaseInsensitive(t *testing.T) {
	r := New()
	_, err := r.CreateTarget("Compile", nil)
	require.NoError(t, err)

	_, err = r.CreateTarget("compile", nil)
	assert.ErrorContains(t, err, "already registered")
}

func TestCreateTarget_ConsumesPendingDescription(t *testing.T) {
	r := New()
	require.NoError(t, r.SetDescription("builds the thing"))

	tgt, err := r.CreateTarget("build", nil)
	require.NoError(t, err)
	assert.Equal(t, "builds the thing", tgt.Description)

	_, pending := r.PendingDescription()
	assert.False(t, pending)
}

func TestSetDescription_RejectsDoubleSet(t *testing.T) {
	r := New()
	require.NoError(t, r.SetDescription("first"))
	err := r.SetDescription("second")
	assert.ErrorContains(t, err, "already pending")
}

func TestGetTarget_CaseInsensitive(t *testing.T) {
	r := New()
	_, err := r.CreateTarget("Build", nil)
	require.NoError(t, err)

	tgt, err := r.GetTarget("BUILD")
	require.NoError(t, err)
	assert.Equal(t, "Build", tgt.Name)
}

func TestGetTarget_UnknownListsKnownNames(t *testing.T) {
	r := New()
	_, _ = r.CreateTarget("a", nil)
	_, _ = r.CreateTarget("b", nil)

	_, err := r.GetTarget("c")
	assert.ErrorContains(t, err, "a, b")
}

func TestActivateFinal_FailsForUnregisteredName(t *testing.T) {
	r := New()
	err := r.ActivateFinal("nope")
	assert.ErrorContains(t, err, "not a registered final target")
}

func TestInstantiateTemplate_AppliesDefaultDeps(t *testing.T) {
	r := New()
	_, err := r.CreateTarget("base", nil)
	require.NoError(t, err)

	tmpl := r.CreateTemplate([]string{"base"}, func(param string) Body {
		return func() error { return nil }
	})

	tgt, err := r.InstantiateTemplate(tmpl, "service-a", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, tgt.HardDependencies)
}

func TestRecordErrorAndExecutedTimes(t *testing.T) {
	r := New()
	assert.False(t, r.HasErrors())

	r.RecordError("app", "boom")
	assert.True(t, r.HasErrors())
	require.Len(t, r.Errors(), 1)
	assert.Equal(t, "app", r.Errors()[0].Target)

	r.AddExecutedTarget("app", 0)
	assert.True(t, r.Executed("app"))
	assert.True(t, r.Executed("APP"))
	require.Len(t, r.ExecutedTimes(), 1)
}

func TestReset_ClearsAllState(t *testing.T) {
	r := New()
	_, err := r.CreateTarget("app", nil)
	require.NoError(t, err)
	r.RecordError("app", "boom")
	r.AddExecutedTarget("app", 0)

	r.Reset()

	_, err = r.GetTarget("app")
	assert.Error(t, err)
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.ExecutedTimes())
}

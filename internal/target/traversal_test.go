package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitDependencies_HardOnlyChain(t *testing.T) {
	r := New()
	for _, name := range []string{"app", "mid", "base"} {
		_, err := r.CreateTarget(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, r.AddHardDependencyEnd("app", "mid"))
	require.NoError(t, r.AddHardDependencyEnd("mid", "base"))

	visited, order, err := r.VisitDependencies("app", func(string, bool, string, EdgeKind, int, bool) {})
	require.NoError(t, err)
	assert.True(t, visited["mid"])
	assert.True(t, visited["base"])
	assert.Equal(t, []string{"app", "mid", "base"}, order)
}

func TestVisitDependencies_SoftEdgeIgnoredWhenNotHardReachable(t *testing.T) {
	r := New()
	for _, name := range []string{"app", "unrelated"} {
		_, err := r.CreateTarget(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, r.AddSoftDependencyEnd("app", "unrelated"))

	var softVisits int
	_, order, err := r.VisitDependencies("app", func(_ string, _ bool, name string, kind EdgeKind, _ int, _ bool) {
		if kind == Soft {
			softVisits++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 0, softVisits)
	assert.Equal(t, []string{"app"}, order)
}

func TestVisitDependencies_SoftEdgeActivatedWhenHardReachable(t *testing.T) {
	r := New()
	for _, name := range []string{"app", "mid", "shared"} {
		_, err := r.CreateTarget(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, r.AddHardDependencyEnd("app", "mid"))
	require.NoError(t, r.AddHardDependencyEnd("mid", "shared"))
	require.NoError(t, r.AddSoftDependencyEnd("app", "shared"))

	var softHits []string
	_, _, err := r.VisitDependencies("app", func(_ string, _ bool, name string, kind EdgeKind, _ int, _ bool) {
		if kind == Soft {
			softHits = append(softHits, name)
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, softHits)
}

func TestVisitDependencies_RepeatVisitsMarkedAlreadyVisited(t *testing.T) {
	r := New()
	for _, name := range []string{"app", "a", "b", "shared"} {
		_, err := r.CreateTarget(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, r.AddHardDependencyEnd("app", "a"))
	require.NoError(t, r.AddHardDependencyEnd("app", "b"))
	require.NoError(t, r.AddHardDependencyEnd("a", "shared"))
	require.NoError(t, r.AddHardDependencyEnd("b", "shared"))

	var repeats int
	_, _, err := r.VisitDependencies("app", func(_ string, _ bool, name string, _ EdgeKind, _ int, alreadyVisited bool) {
		if name == "shared" && alreadyVisited {
			repeats++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repeats)
}

func TestHardReachable_ExcludesSoftOnlyTargets(t *testing.T) {
	r := New()
	for _, name := range []string{"app", "hard-dep", "soft-dep"} {
		_, err := r.CreateTarget(name, nil)
		require.NoError(t, err)
	}
	require.NoError(t, r.AddHardDependencyEnd("app", "hard-dep"))
	require.NoError(t, r.AddSoftDependencyEnd("app", "soft-dep"))

	reachable, err := r.HardReachable("app")
	require.NoError(t, err)
	assert.True(t, reachable["hard-dep"])
	assert.False(t, reachable["soft-dep"])
}

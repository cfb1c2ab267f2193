// Package scheduler computes a leveled, maximally-parallel execution
// plan ("waves") from a target.Registry's dependency graph.
//
// The algorithm is the "assignLevel" state machine of the
// specification's level scheduler: a single pass over
// target.VisitDependencies that assigns each reachable target an
// integer level (larger levels run earlier) and cascades level raises
// up through the targets that depend on it, so that every hard edge
// and every root-activated soft edge satisfies level(parent) <
// level(child).
package scheduler

import (
	"sort"
	"strings"

	"github.com/vk/buildgrid/internal/target"
)

// levelState is the per-target bookkeeping the assignLevel visitor
// maintains: the target's current level and the names of the targets
// that depend on it (its "dependants"), accumulated as the walk
// discovers them.
type levelState struct {
	level      int
	dependants []string // parents that depend on this target
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// planner holds the mutable state of one DetermineBuildOrder run.
type planner struct {
	reg    *target.Registry
	states map[string]*levelState // keyed by canonical (lowercased) name
	names  map[string]string      // canonical -> original-cased name
}

func (p *planner) key(name string) string { return strings.ToLower(name) }

// raiseLevel sets name's level to newLevel (clamped to stay strictly
// below minLevel(name)) if that is actually an increase, then cascades
// the raise to name's own dependants at newLevel-1, recursively.
func (p *planner) raiseLevel(name string, newLevel int) {
	key := p.key(name)
	st, ok := p.states[key]
	if !ok {
		// Should not happen: every name that can appear as a parent or
		// as a recorded dependant was itself visited (or is the seeded
		// root) before being referenced here.
		st = &levelState{level: newLevel}
		p.states[key] = st
		p.names[key] = name
	}
	if min := p.minLevel(name); min != -1 && newLevel >= min {
		newLevel = min - 1
	}
	if st.level >= newLevel {
		return
	}
	st.level = newLevel
	for _, dep := range st.dependants {
		p.raiseLevel(dep, newLevel-1)
	}
}

// minLevel returns the minimum known level among name's own dependency
// children (the targets name depends on, restricted to those already
// assigned a level and for which name is already a recorded
// dependant). Returns -1 if none is known yet, meaning no upper bound.
//
// It reads only the planner's own state, never the registry: it runs
// inside the VisitDependencies callback, while the registry's mutex is
// held.
func (p *planner) minLevel(name string) int {
	min := -1
	for _, st := range p.states {
		if !contains(st.dependants, name) {
			continue
		}
		if min == -1 || st.level < min {
			min = st.level
		}
	}
	return min
}

func (p *planner) assignLevel(parent string, hasParent bool, name string, _ target.EdgeKind, depth int, _ bool) {
	key := p.key(name)
	st, ok := p.states[key]

	switch {
	case !ok:
		// NewTarget
		st = &levelState{level: depth}
		if hasParent {
			st.dependants = append(st.dependants, parent)
		}
		p.states[key] = st
		p.names[key] = name

	case st.level > depth:
		if hasParent {
			// LevelIncreaseWithParent
			if !contains(st.dependants, parent) {
				st.dependants = append(st.dependants, parent)
			}
			p.raiseLevel(parent, st.level-1)
		}
		// LevelIncreaseNoParent: no-op, there is no parent to record.

	case st.level < depth:
		// LevelDecrease
		if hasParent && !contains(st.dependants, parent) {
			st.dependants = append(st.dependants, parent)
		}
		newLevel := depth
		if min := p.minLevel(name); min != -1 && newLevel >= min {
			newLevel = min - 1
		}
		st.level = newLevel
		for _, dep := range st.dependants {
			p.raiseLevel(dep, newLevel-1)
		}

	default:
		// AddDependency (st.level == depth): record a new parent, else no change.
		if hasParent && !contains(st.dependants, parent) {
			st.dependants = append(st.dependants, parent)
		}
	}
}

// DetermineBuildOrder computes the ordered list of waves for a run
// rooted at root. Waves are ordered highest-level-first (the wave that
// must run first is waves[0]); every target within a wave is mutually
// independent under both hard and root-activated-soft edges.
func DetermineBuildOrder(reg *target.Registry, root string) ([][]*target.Target, error) {
	rootTarget, err := reg.GetTarget(root)
	if err != nil {
		return nil, err
	}

	p := &planner{
		reg:    reg,
		states: make(map[string]*levelState),
		names:  make(map[string]string),
	}
	rootKey := p.key(rootTarget.Name)
	p.states[rootKey] = &levelState{level: 0}
	p.names[rootKey] = rootTarget.Name

	visited, _, err := reg.VisitDependencies(root, p.assignLevel)
	if err != nil {
		return nil, err
	}

	byLevel := make(map[int][]string)
	for key := range visited {
		st, ok := p.states[key]
		if !ok {
			// Visited by the traversal but never passed through assignLevel
			// as a "target" argument: only possible for the root itself.
			st = p.states[rootKey]
		}
		byLevel[st.level] = append(byLevel[st.level], p.names[key])
	}

	levels := make([]int, 0, len(byLevel))
	for lvl := range byLevel {
		levels = append(levels, lvl)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	waves := make([][]*target.Target, 0, len(levels))
	for _, lvl := range levels {
		names := byLevel[lvl]
		sort.Strings(names) // deterministic tie-break; not otherwise observable
		wave := make([]*target.Target, 0, len(names))
		for _, name := range names {
			t, err := reg.GetTarget(name)
			if err != nil {
				return nil, err
			}
			wave = append(wave, t)
		}
		waves = append(waves, wave)
	}
	return waves, nil
}

package target

import "fmt"

// VisitFunc is invoked once per dependency edge the VisitDependencies
// walk follows. The root itself is never passed to it, so hasParent is
// always true and depth is at least 1: the root sits at depth 0, its
// direct dependencies at depth 1, and so on. alreadyVisited is true
// when targetName has been visited before in this walk (the visitor is
// still invoked, but the walker does not recurse past it again).
type VisitFunc func(parent string, hasParent bool, targetName string, kind EdgeKind, depth int, alreadyVisited bool)

// VisitDependencies performs the two-pass dependency walk rooted at
// root:
//
//  1. A hard-edges-only prepass collects H, the set of names
//     transitively hard-reachable from root.
//  2. A main pass visits, for every target t, hardDeps(t) plus any soft
//     dependency of t that is itself in H — soft edges outside the
//     hard-reachable set are ignored so they cannot pull in otherwise
//     unrelated targets.
//
// It returns the set of visited names and a pre-order listing (each
// name appended the first time it is seen). Every dependency name
// encountered must resolve in the registry; an unresolved name is a
// fatal error.
func (r *Registry) VisitDependencies(root string, visit VisitFunc) (map[string]bool, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.getTargetLocked(root); err != nil {
		return nil, nil, err
	}
	rootKey := normalize(root)

	hardReachable := make(map[string]bool)
	var walkHard func(key string) error
	walkHard = func(key string) error {
		for _, childName := range r.depsOfLocked(key, Hard) {
			childKey := normalize(childName)
			if _, err := r.getTargetLocked(childName); err != nil {
				return err
			}
			if hardReachable[childKey] {
				continue
			}
			hardReachable[childKey] = true
			if err := walkHard(childKey); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walkHard(rootKey); err != nil {
		return nil, nil, err
	}

	visited := make(map[string]bool)
	var order []string

	var walkMain func(parentName string, hasParent bool, name string, key string, depth int) error
	walkMain = func(parentName string, hasParent bool, name string, key string, depth int) error {
		seenBefore := visited[key]
		if !seenBefore {
			visited[key] = true
			order = append(order, name)
		}

		t, err := r.getTargetLocked(name)
		if err != nil {
			return err
		}

		type child struct {
			name string
			kind EdgeKind
		}
		var children []child
		for _, c := range t.HardDependencies {
			children = append(children, child{name: c, kind: Hard})
		}
		for _, c := range t.SoftDependencies {
			if hardReachable[normalize(c)] {
				children = append(children, child{name: c, kind: Soft})
			}
		}

		for _, c := range children {
			childKey := normalize(c.name)
			if _, err := r.getTargetLocked(c.name); err != nil {
				return err
			}
			alreadyVisited := visited[childKey]
			visit(name, true, c.name, c.kind, depth+1, alreadyVisited)
			if alreadyVisited {
				continue
			}
			if err := walkMain(name, true, c.name, childKey, depth+1); err != nil {
				return err
			}
		}
		_ = parentName
		_ = hasParent
		return nil
	}

	if err := walkMain("", false, root, rootKey, 0); err != nil {
		return nil, nil, err
	}
	return visited, order, nil
}

// HardReachable returns the set of names transitively hard-reachable
// from root (root excluded unless cyclically reachable, which
// admission already forbids). Exposed for the scheduler and reporters.
func (r *Registry) HardReachable(root string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.getTargetLocked(root); err != nil {
		return nil, err
	}
	reachable := make(map[string]bool)
	var walk func(key string) error
	walk = func(key string) error {
		for _, childName := range r.depsOfLocked(key, Hard) {
			childKey := normalize(childName)
			if _, err := r.getTargetLocked(childName); err != nil {
				return fmt.Errorf("target: %w", err)
			}
			if reachable[childKey] {
				continue
			}
			reachable[childKey] = true
			if err := walk(childKey); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(normalize(root)); err != nil {
		return nil, err
	}
	return reachable, nil
}

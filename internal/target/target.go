// Package target implements the target registry: the identity store for
// named build targets, their dependency lists, and the two hook sets
// (final targets, build-failure targets) that the executor drives after
// a run.
package target

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Body is the opaque, side-effecting callable a target runs. The body
// takes no arguments and signals failure by returning a non-nil error.
type Body func() error

// Target is a named build step with a body and two ordered dependency
// lists. Order within hardDependencies/softDependencies is observable by
// reporters; it never affects scheduling.
type Target struct {
	// Name is the canonical (as-registered) spelling. Lookups are
	// case-insensitive, but the canonical form is what gets printed.
	Name string

	Description string

	HardDependencies []string
	SoftDependencies []string

	Body Body
}

// ErrorRecord is one accumulated failure, attributed to the target whose
// body (or hook body) produced it.
type ErrorRecord struct {
	Target  string
	Message string
}

// Execution is one completed (name, duration) entry in completion order.
type Execution struct {
	Name     string
	Duration time.Duration
}

// hook is a registered final/build-failure target plus its activation flag.
type hook struct {
	activated bool
}

// Registry is the process-scoped, resettable store of all target
// identity: the target map, the two hook sets, and the run-scoped
// execution/error/diagnostic state described in spec §3.
//
// A Registry is safe for concurrent use by the executor's worker pool
// during a run; target creation and admission are expected to happen on
// a single driver goroutine before Run is called.
type Registry struct {
	mu sync.Mutex

	targets map[string]*Target
	// order preserves target insertion order for ListTargetNames; hook
	// iteration order is kept separately in finalOrder/buildFailureOrder.
	order []string

	finalTargets        map[string]*hook
	finalOrder          []string
	buildFailureTargets map[string]*hook
	buildFailureOrder   []string

	pendingDescription *string

	executed      map[string]bool
	executedTimes []Execution
	errors        []ErrorRecord

	currentTarget string
	currentOrder  [][]string
}

// New returns an empty Registry.
func New() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.targets = make(map[string]*Target)
	r.order = nil
	r.finalTargets = make(map[string]*hook)
	r.finalOrder = nil
	r.buildFailureTargets = make(map[string]*hook)
	r.buildFailureOrder = nil
	r.pendingDescription = nil
	r.executed = make(map[string]bool)
	r.executedTimes = nil
	r.errors = nil
	r.currentTarget = ""
	r.currentOrder = nil
}

// Reset clears all registry state (targets, hooks, and run-scoped state)
// so the process can run a fresh, independent build.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// SetDescription assigns the one-shot pending-description slot. It fails
// if a description is already pending (one must be consumed by
// CreateTarget before another can be set).
func (r *Registry) SetDescription(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pendingDescription != nil {
		return fmt.Errorf("target: description already pending: %q", *r.pendingDescription)
	}
	r.pendingDescription = &text
	return nil
}

// PendingDescription reports whether a description is waiting for a
// target to attach to (consulted by the executor's run-start guard).
func (r *Registry) PendingDescription() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pendingDescription == nil {
		return "", false
	}
	return *r.pendingDescription, true
}

// CreateTarget registers a new Target with an empty dependency set,
// consuming the pending-description slot if one is set.
//
// Duplicate registration is rejected (the spec's open question on
// overwrite-vs-reject is resolved here in favor of rejection; see
// DESIGN.md).
func (r *Registry) CreateTarget(name string, body Body) (*Target, error) {
	if name == "" {
		return nil, fmt.Errorf("target: name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(name)
	if _, exists := r.targets[key]; exists {
		return nil, fmt.Errorf("target: %q is already registered", name)
	}

	t := &Target{
		Name:             name,
		HardDependencies: nil,
		SoftDependencies: nil,
		Body:             body,
	}
	if r.pendingDescription != nil {
		t.Description = *r.pendingDescription
		r.pendingDescription = nil
	}

	r.targets[key] = t
	r.order = append(r.order, key)
	return t, nil
}

// Template is a reusable factory created by CreateTemplate: it
// remembers a default dependency list and a function that builds a
// target body from a caller-supplied parameter.
type Template struct {
	defaultDependencies []string
	bodyFactory         func(parameter string) Body
}

// CreateTemplate builds a Template whose instances hard-depend on
// defaultDependencies and whose bodies are produced by bodyFactory.
func (r *Registry) CreateTemplate(defaultDependencies []string, bodyFactory func(parameter string) Body) *Template {
	deps := make([]string, len(defaultDependencies))
	copy(deps, defaultDependencies)
	return &Template{defaultDependencies: deps, bodyFactory: bodyFactory}
}

// InstantiateTemplate registers a new target named name, whose body is
// tmpl.bodyFactory(parameter) and which hard-depends on
// tmpl.defaultDependencies.
func (r *Registry) InstantiateTemplate(tmpl *Template, name string, parameter string) (*Target, error) {
	t, err := r.CreateTarget(name, tmpl.bodyFactory(parameter))
	if err != nil {
		return nil, err
	}
	if len(tmpl.defaultDependencies) > 0 {
		if err := r.AddHardDependencies(name, tmpl.defaultDependencies); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// RegisterFinal creates a target and inserts it into the final-hook set
// with activated=false.
func (r *Registry) RegisterFinal(name string, body Body) (*Target, error) {
	t, err := r.CreateTarget(name, body)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalize(name)
	r.finalTargets[key] = &hook{}
	r.finalOrder = append(r.finalOrder, key)
	return t, nil
}

// RegisterBuildFailure creates a target and inserts it into the
// build-failure-hook set with activated=false.
func (r *Registry) RegisterBuildFailure(name string, body Body) (*Target, error) {
	t, err := r.CreateTarget(name, body)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalize(name)
	r.buildFailureTargets[key] = &hook{}
	r.buildFailureOrder = append(r.buildFailureOrder, key)
	return t, nil
}

// ActivateFinal flips the final hook's activation flag on. It fails if
// name is not a registered final target.
func (r *Registry) ActivateFinal(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.finalTargets[normalize(name)]
	if !ok {
		return fmt.Errorf("target: %q is not a registered final target", name)
	}
	h.activated = true
	return nil
}

// ActivateBuildFailure flips the build-failure hook's activation flag
// on. It fails if name is not a registered build-failure target.
func (r *Registry) ActivateBuildFailure(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.buildFailureTargets[normalize(name)]
	if !ok {
		return fmt.Errorf("target: %q is not a registered build-failure target", name)
	}
	h.activated = true
	return nil
}

// GetTarget looks up a target case-insensitively. On miss, the error
// lists all known target names to help diagnose typos.
func (r *Registry) GetTarget(name string) (*Target, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getTargetLocked(name)
}

func (r *Registry) getTargetLocked(name string) (*Target, error) {
	t, ok := r.targets[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("target: unknown target %q; known targets: %s", name, strings.Join(r.listTargetNamesLocked(), ", "))
	}
	return t, nil
}

// ListTargetNames returns all registered target names, in insertion order.
func (r *Registry) ListTargetNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listTargetNamesLocked()
}

func (r *Registry) listTargetNamesLocked() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.targets[key].Name)
	}
	return names
}

// activatedFinalTargets returns, in insertion order, the names of final
// targets whose activation flag is set.
func (r *Registry) activatedFinalTargets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, key := range r.finalOrder {
		if r.finalTargets[key].activated {
			out = append(out, r.targets[key].Name)
		}
	}
	return out
}

// activatedBuildFailureTargets returns, in insertion order, the names of
// build-failure targets whose activation flag is set.
func (r *Registry) activatedBuildFailureTargets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, key := range r.buildFailureOrder {
		if r.buildFailureTargets[key].activated {
			out = append(out, r.targets[key].Name)
		}
	}
	return out
}

// ActivatedFinalTargets exposes activatedFinalTargets for the executor.
func (r *Registry) ActivatedFinalTargets() []string { return r.activatedFinalTargets() }

// ActivatedBuildFailureTargets exposes activatedBuildFailureTargets for the executor.
func (r *Registry) ActivatedBuildFailureTargets() []string { return r.activatedBuildFailureTargets() }

// RecordError appends one (target, message) entry to the run's error
// list. Guarded by the registry mutex so worker goroutines can call it
// concurrently (spec §5's "single mutex-guarded recorder").
func (r *Registry) RecordError(target, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, ErrorRecord{Target: target, Message: message})
}

// Errors returns a copy of the accumulated error records.
func (r *Registry) Errors() []ErrorRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ErrorRecord, len(r.errors))
	copy(out, r.errors)
	return out
}

// HasErrors reports whether any errors have been recorded this run.
func (r *Registry) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) > 0
}

// AddExecutedTarget records a completed (name, duration) pair and marks
// the target executed. Guarded by the registry mutex (spec §5).
func (r *Registry) AddExecutedTarget(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executed[normalize(name)] = true
	r.executedTimes = append(r.executedTimes, Execution{Name: name, Duration: d})
}

// Executed reports whether a target has run to completion (successfully
// or not) during the current invocation.
func (r *Registry) Executed(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.executed[normalize(name)]
}

// ExecutedTimes returns a copy of the completion-ordered (name, duration) log.
func (r *Registry) ExecutedTimes() []Execution {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Execution, len(r.executedTimes))
	copy(out, r.executedTimes)
	return out
}

// SetCurrentTarget records which target the driving thread is currently
// running, for diagnostics.
func (r *Registry) SetCurrentTarget(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentTarget = name
}

// CurrentTarget returns the name set by SetCurrentTarget (empty when idle).
func (r *Registry) CurrentTarget() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentTarget
}

// SetCurrentOrder records the last computed wave listing, for the
// running-order reporter and the status server.
func (r *Registry) SetCurrentOrder(order [][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentOrder = order
}

// CurrentOrder returns the last value passed to SetCurrentOrder.
func (r *Registry) CurrentOrder() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentOrder
}

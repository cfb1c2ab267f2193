// Package sink defines the logging/tracing/vendor-reporting contract the
// executor consumes (spec §6) and ships the default implementation.
//
// The core never assumes a particular logging backend; everything it
// needs from the outside world — plain log lines, structured trace
// events bracketing target execution, vendor error notification, and
// best-effort process cleanup — goes through the Sink interface so a
// caller embedding this engine can redirect it anywhere (a CI log
// stream, a TUI, a test double).
package sink

//go:generate go run go.uber.org/mock/mockgen -destination=sinkmock/mock_sink.go -package=sinkmock . Sink

// Sink is the external collaborator contract of spec §6: the minimum
// surface the executor calls into for logging, tracing, and the two
// cleanup/notification hooks it needs on every run.
type Sink interface {
	Log(line string)
	Logf(format string, args ...any)

	Trace(line string)
	Tracef(format string, args ...any)
	TraceError(line string)
	TraceLine()
	TraceHeader(line string)
	TraceImportant(line string)

	TraceStartTarget(name, description, depString string)
	TraceEndTarget(name string)

	// SendVendorError notifies an external error-reporting service.
	// Implementations that have nothing to report to may no-op.
	SendVendorError(msg string)

	// CloseAllOpenTags flushes any open structured-log grouping (e.g. a
	// CI annotation group) the sink may have started.
	CloseAllOpenTags()

	// KillAllCreatedProcesses asks the sink's out-of-scope child-process
	// tracker (spec §1: out of scope for the core) to terminate anything
	// it spawned on the core's behalf.
	KillAllCreatedProcesses()
}

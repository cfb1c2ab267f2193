package executor

import "runtime/debug"

// MultiError lets a target body report several independent failures
// from one run (e.g. a test-suite runner that wants one record per
// failed case). Message is recorded first, then each entry in Causes,
// all against the same target.
type MultiError struct {
	Message string
	Causes  []string
}

func (m *MultiError) Error() string { return m.Message }

// FailedTestsError has the same shape as MultiError and is recorded the
// same way, but it is never forwarded to the sink's vendor-error notifier — spec §7 carves out test-failure
// reports as a known, already-actionable category that would only add
// noise to an external incident channel.
type FailedTestsError struct {
	Message string
	Causes  []string
}

func (f *FailedTestsError) Error() string { return f.Message }

// recordError classifies err per spec §7 and records one or more
// error entries against target name on the registry, optionally
// notifying the sink's vendor-error channel.
func (e *Executor) recordError(name string, err error) {
	switch v := err.(type) {
	case *FailedTestsError:
		e.reg.RecordError(name, e.withTrace(v.Message))
		for _, c := range v.Causes {
			e.reg.RecordError(name, c)
		}
	case *MultiError:
		msg := e.withTrace(v.Message)
		e.reg.RecordError(name, msg)
		for _, c := range v.Causes {
			e.reg.RecordError(name, c)
		}
		e.sink.SendVendorError(msg)
	default:
		msg := e.withTrace(err.Error())
		e.reg.RecordError(name, msg)
		e.sink.SendVendorError(msg)
	}
}

func (e *Executor) withTrace(msg string) string {
	if !e.opts.PrintStackTraceOnError {
		return msg
	}
	return msg + "\n" + string(debug.Stack())
}

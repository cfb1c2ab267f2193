// Hand-written gomock double for sink.Sink (../sink.go), laid out the
// way mockgen lays out its output. Running the //go:generate directive
// in ../sink.go replaces this file with mockgen's own output.

package sinkmock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockSink is a mock of the sink.Sink interface.
type MockSink struct {
	ctrl     *gomock.Controller
	recorder *MockSinkMockRecorder
}

// MockSinkMockRecorder is the mock recorder for MockSink.
type MockSinkMockRecorder struct {
	mock *MockSink
}

// NewMockSink creates a new mock instance.
func NewMockSink(ctrl *gomock.Controller) *MockSink {
	mock := &MockSink{ctrl: ctrl}
	mock.recorder = &MockSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSink) EXPECT() *MockSinkMockRecorder {
	return m.recorder
}

func (m *MockSink) Log(line string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Log", line)
}

func (mr *MockSinkMockRecorder) Log(line any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Log", reflect.TypeOf((*MockSink)(nil).Log), line)
}

func (m *MockSink) Logf(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	m.ctrl.Call(m, "Logf", varargs...)
}

func (mr *MockSinkMockRecorder) Logf(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logf", reflect.TypeOf((*MockSink)(nil).Logf), varargs...)
}

func (m *MockSink) Trace(line string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Trace", line)
}

func (mr *MockSinkMockRecorder) Trace(line any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trace", reflect.TypeOf((*MockSink)(nil).Trace), line)
}

func (m *MockSink) Tracef(format string, args ...any) {
	m.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	m.ctrl.Call(m, "Tracef", varargs...)
}

func (mr *MockSinkMockRecorder) Tracef(format any, args ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{format}, args...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Tracef", reflect.TypeOf((*MockSink)(nil).Tracef), varargs...)
}

func (m *MockSink) TraceError(line string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceError", line)
}

func (mr *MockSinkMockRecorder) TraceError(line any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceError", reflect.TypeOf((*MockSink)(nil).TraceError), line)
}

func (m *MockSink) TraceLine() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceLine")
}

func (mr *MockSinkMockRecorder) TraceLine() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceLine", reflect.TypeOf((*MockSink)(nil).TraceLine))
}

func (m *MockSink) TraceHeader(line string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceHeader", line)
}

func (mr *MockSinkMockRecorder) TraceHeader(line any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceHeader", reflect.TypeOf((*MockSink)(nil).TraceHeader), line)
}

func (m *MockSink) TraceImportant(line string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceImportant", line)
}

func (mr *MockSinkMockRecorder) TraceImportant(line any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceImportant", reflect.TypeOf((*MockSink)(nil).TraceImportant), line)
}

func (m *MockSink) TraceStartTarget(name, description, depString string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceStartTarget", name, description, depString)
}

func (mr *MockSinkMockRecorder) TraceStartTarget(name, description, depString any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceStartTarget", reflect.TypeOf((*MockSink)(nil).TraceStartTarget), name, description, depString)
}

func (m *MockSink) TraceEndTarget(name string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "TraceEndTarget", name)
}

func (mr *MockSinkMockRecorder) TraceEndTarget(name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TraceEndTarget", reflect.TypeOf((*MockSink)(nil).TraceEndTarget), name)
}

func (m *MockSink) SendVendorError(msg string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SendVendorError", msg)
}

func (mr *MockSinkMockRecorder) SendVendorError(msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendVendorError", reflect.TypeOf((*MockSink)(nil).SendVendorError), msg)
}

func (m *MockSink) CloseAllOpenTags() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CloseAllOpenTags")
}

func (mr *MockSinkMockRecorder) CloseAllOpenTags() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseAllOpenTags", reflect.TypeOf((*MockSink)(nil).CloseAllOpenTags))
}

func (m *MockSink) KillAllCreatedProcesses() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "KillAllCreatedProcesses")
}

func (mr *MockSinkMockRecorder) KillAllCreatedProcesses() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "KillAllCreatedProcesses", reflect.TypeOf((*MockSink)(nil).KillAllCreatedProcesses))
}

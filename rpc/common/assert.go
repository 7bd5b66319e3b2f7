package common

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// AssertionHook is called for every failed assertion before the panic is raised
type AssertionHook func(err *ClientError)

var assertionHook atomic.Pointer[AssertionHook]

// SetAssertionHook installs a process-wide hook that observes failed assertions.
// Passing nil removes the hook
func SetAssertionHook(hook AssertionHook) {
	if hook == nil {
		assertionHook.Store(nil)
		return
	}
	assertionHook.Store(&hook)
}

// AssertionFailed builds the Assert error for a failed check at the given location.
// msg is optional
func AssertionFailed(expr, msg, function, file string, line int) *ClientError {
	text := fmt.Sprintf("[%s:%d] -> %s, expr: %s", file, line, function, expr)
	if msg != "" {
		text = fmt.Sprintf("%s, msg: %s", text, msg)
	}
	return &ClientError{
		Code:    ErrCodeAssert,
		Message: text,
		cause:   errors.AssertionFailedf("%s", expr),
	}
}

// Assert panics with an Assert ClientError if cond is false.
// The panic is turned back into an error by RecoverAssertion
func Assert(cond bool, expr string) {
	if cond {
		return
	}
	panic(assertionAt(2, expr, ""))
}

// AssertMsg is like Assert but carries an additional message
func AssertMsg(cond bool, expr, msg string) {
	if cond {
		return
	}
	panic(assertionAt(2, expr, msg))
}

// RecoverAssertion converts a panic raised by Assert into an error stored in *err.
// Any other panic is re-raised. Must be called deferred
func RecoverAssertion(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ce, ok := r.(*ClientError)
	if !ok || ce.Code != ErrCodeAssert {
		panic(r)
	}
	*err = ce
}

func assertionAt(skip int, expr, msg string) *ClientError {
	function := "unknown"
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "unknown"
	} else if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}

	ce := AssertionFailed(expr, msg, function, file, line)
	if hook := assertionHook.Load(); hook != nil {
		(*hook)(ce)
	}
	return ce
}

package common

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

// ErrorCode identifies the kind of failure raised by the client.
// The set is closed, every ClientError carries exactly one of these codes.
type ErrorCode uint32

const (
	ErrCodeFailed                 ErrorCode = iota // generic failure
	ErrCodeAssert                                  // internal invariant violated
	ErrCodeFailedToSendZMQRequest                  // failed to send a request (after the retry)
	ErrCodeInvalidZMQResponse                      // reply could not be decoded or has an invalid shape
	ErrCodeCallTimeout                             // no reply before the deadline
	ErrCodeZMQRecvError                            // low level receive error
	ErrCodeInvalidArgument                         // invalid caller supplied argument
	ErrCodeUnexpectedReturnData                    // the vision controller replied with an error
)

// String returns the stable identifier of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeFailed:
		return "Failed"
	case ErrCodeAssert:
		return "Assert"
	case ErrCodeFailedToSendZMQRequest:
		return "FailedToSendZMQRequest"
	case ErrCodeInvalidZMQResponse:
		return "InvalidZMQResponse"
	case ErrCodeCallTimeout:
		return "CallTimeout"
	case ErrCodeZMQRecvError:
		return "ZMQRecvError"
	case ErrCodeInvalidArgument:
		return "InvalidArgument"
	case ErrCodeUnexpectedReturnData:
		return "UnexpectedReturnData"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(c))
	}
}

// --------------------------------------------------------------------------
// Client Error
// --------------------------------------------------------------------------

// ClientError is the only error type returned by the client engine.
type ClientError struct {
	// Code is the kind of the failure
	Code ErrorCode
	// Message is a human-readable description
	Message string
	// Countermeasure optionally suggests how to fix the problem
	Countermeasure string
	// RemoteCode is the code reported by the vision controller (UnexpectedReturnData only)
	RemoteCode string

	cause error
}

// Sentinels for use with errors.Is, matching is done by code only
var (
	ErrFailed                 = &ClientError{Code: ErrCodeFailed}
	ErrAssert                 = &ClientError{Code: ErrCodeAssert}
	ErrFailedToSendZMQRequest = &ClientError{Code: ErrCodeFailedToSendZMQRequest}
	ErrInvalidZMQResponse     = &ClientError{Code: ErrCodeInvalidZMQResponse}
	ErrCallTimeout            = &ClientError{Code: ErrCodeCallTimeout}
	ErrZMQRecvError           = &ClientError{Code: ErrCodeZMQRecvError}
	ErrInvalidArgument        = &ClientError{Code: ErrCodeInvalidArgument}
	ErrUnexpectedReturnData   = &ClientError{Code: ErrCodeUnexpectedReturnData}
)

// NewClientError creates a new error of the given code. The cause may be nil
func NewClientError(code ErrorCode, cause error, format string, args ...interface{}) *ClientError {
	return &ClientError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

// WithCountermeasure attaches a suggested remediation and returns the error
func (e *ClientError) WithCountermeasure(countermeasure string) *ClientError {
	e.Countermeasure = countermeasure
	return e
}

func (e *ClientError) Error() string {
	msg := fmt.Sprintf("VisionControllerClient (%s): %s", e.Code, e.Message)
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *ClientError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a ClientError with the same code
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// CodeOf returns the code of the outermost ClientError in the chain.
// Errors that are no ClientError are reported as ErrCodeFailed
func CodeOf(err error) ErrorCode {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeFailed
}

// CountermeasureOf returns the countermeasure of the outermost ClientError, or
// any hint attached to the cause chain
func CountermeasureOf(err error) string {
	var ce *ClientError
	if errors.As(err, &ce) && ce.Countermeasure != "" {
		return ce.Countermeasure
	}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return ""
}

package common

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeStrings(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrCodeFailed:                 "Failed",
		ErrCodeAssert:                 "Assert",
		ErrCodeFailedToSendZMQRequest: "FailedToSendZMQRequest",
		ErrCodeInvalidZMQResponse:     "InvalidZMQResponse",
		ErrCodeCallTimeout:            "CallTimeout",
		ErrCodeZMQRecvError:           "ZMQRecvError",
		ErrCodeInvalidArgument:        "InvalidArgument",
		ErrCodeUnexpectedReturnData:   "UnexpectedReturnData",
	}
	for code, name := range codes {
		assert.Equal(t, name, code.String())
	}
	assert.Equal(t, "Unknown(42)", ErrorCode(42).String())
}

func TestClientError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewClientError(ErrCodeCallTimeout, cause, "no reply to %s", "Ping").
		WithCountermeasure("check the controller")

	assert.Equal(t, "VisionControllerClient (CallTimeout): no reply to Ping: connection refused", err.Error())
	assert.ErrorIs(t, err, ErrCallTimeout)
	assert.NotErrorIs(t, err, ErrZMQRecvError)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "check the controller", CountermeasureOf(err))
}

func TestCodeOf(t *testing.T) {
	inner := NewClientError(ErrCodeInvalidArgument, nil, "bad")
	wrapped := errors.Wrap(inner, "context")

	assert.Equal(t, ErrCodeInvalidArgument, CodeOf(wrapped))
	assert.Equal(t, ErrCodeFailed, CodeOf(errors.New("plain")))
	assert.Equal(t, ErrCodeFailed, CodeOf(nil))
}

func TestCountermeasureFromHint(t *testing.T) {
	cause := errors.WithHint(errors.New("dial failed"), "start the controller")
	err := NewClientError(ErrCodeFailedToSendZMQRequest, cause, "send failed")
	assert.Equal(t, "start the controller", CountermeasureOf(err))
	assert.Empty(t, CountermeasureOf(errors.New("plain")))
}

func TestAssert(t *testing.T) {
	run := func(cond bool) (err error) {
		defer RecoverAssertion(&err)
		Assert(cond, "cond")
		return nil
	}

	require.NoError(t, run(true))

	err := run(false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssert)
	assert.Contains(t, err.Error(), "expr: cond")
	assert.Contains(t, err.Error(), "errors_test.go")
}

func TestAssertionHook(t *testing.T) {
	var seen *ClientError
	SetAssertionHook(func(err *ClientError) { seen = err })
	t.Cleanup(func() { SetAssertionHook(nil) })

	func() {
		var err error
		defer RecoverAssertion(&err)
		AssertMsg(false, "x > 0", "x must be positive")
	}()

	require.NotNil(t, seen)
	assert.Contains(t, seen.Message, "msg: x must be positive")
}

func TestRecoverAssertionRepanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		var err error
		defer RecoverAssertion(&err)
		panic("boom")
	})
}

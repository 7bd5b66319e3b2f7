package server

import (
	"fmt"

	"github.com/ValentinKolb/vcc/rpc/common"
)

// HandlerFunc handles one command of the mock vision controller.
// The returned value is sent as result, a returned error as error reply
type HandlerFunc func(req *common.RequestEnvelope) (result any, err error)

// CommandError is an error reply with a specific code.
// Errors of other types are replied with code ErrCodeUnknown
type CommandError struct {
	Code        string
	Description string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

const (
	// ErrCodeUnknown is the code of error replies for errors other than CommandError
	ErrCodeUnknown = "unknownerror"
	// ErrCodeUnknownCommand is the code of the reply to a command without handler
	ErrCodeUnknownCommand = "unknowncommand"
	// ErrCodeInvalidRequest is the code of the reply to a request that can't be decoded
	ErrCodeInvalidRequest = "invalidrequest"
	// ErrCodeInvalidParameter is the code of the reply to a request with bad parameters
	ErrCodeInvalidParameter = "invalidparameter"
)

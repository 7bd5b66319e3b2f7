package client

//go:generate go run ../../cmd/vccgen --input commands.yaml --output commands_gen.go

import (
	"github.com/ValentinKolb/vcc/rpc/common"
)

// CommandInfo describes a command of the vision controller
type CommandInfo struct {
	// Name of the facade method
	Name string
	// Command is the name sent to the vision controller
	Command string
	// Channel the command is sent on
	Channel common.Channel
	// TimeoutSeconds is the default timeout
	TimeoutSeconds float64
	// FireAndForget is true if the command has a fire and forget variant
	FireAndForget bool
	// Returns is the kind of result, "object" or "string"
	Returns string
}

// LookupCommand returns the command with the facade method name or the name sent
// to the vision controller
func LookupCommand(name string) (CommandInfo, bool) {
	for _, info := range Commands {
		if info.Name == name || info.Command == name {
			return info, true
		}
	}
	return CommandInfo{}, false
}

// --------------------------------------------------------------------------
// Helper Functions (used by the generated code)
// --------------------------------------------------------------------------

// timeoutOrDefault replaces a timeout of 0 with the default of the command.
// Negative timeouts are passed on unchanged
func timeoutOrDefault(timeoutSeconds, defaultSeconds float64) float64 {
	if timeoutSeconds == 0 {
		return defaultSeconds
	}
	return timeoutSeconds
}

func missingParameter(command, key string) error {
	return common.NewClientError(common.ErrCodeInvalidArgument, nil, "%s requires parameter %s", command, key)
}

// objectResult converts the result of a command returning an object.
// A null result is returned as nil map
func objectResult(command string, result any, err error) (map[string]any, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	object, ok := result.(map[string]any)
	if !ok {
		return nil, common.NewClientError(common.ErrCodeInvalidZMQResponse, nil, "result of %s is %T, expected an object", command, result)
	}
	return object, nil
}

// stringResult converts the result of a command returning raw data
func stringResult(command string, result any, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	s, ok := result.(string)
	if !ok {
		return "", common.NewClientError(common.ErrCodeInvalidZMQResponse, nil, "result of %s is %T, expected a string", command, result)
	}
	return s, nil
}

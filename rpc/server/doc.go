// Package server implements a mock vision controller. It speaks the same
// request/response protocol as the real controller and is used by the tests of
// the client and by the `vcc mock` command for local development.
//
// Key Components:
//
//   - MockServer: Decodes requests with an IRPCSerializer, dispatches them by
//     command name and encodes the reply. Unknown commands are answered with an
//     error reply of code "unknowncommand".
//
//   - HandlerFunc: Handles one command. A returned CommandError is replied with
//     its code and description, any other error with code "unknownerror".
//
//   - Built-in handlers: Ping, GetPublishedState, GetTaskState, SetLogLevel,
//     Cancel, Quit and the task commands (Start*Task, StopTask, ResumeTask) keep a
//     small in-memory task table so client flows can be exercised end to end.
//
// Usage Example:
//
//	s := server.NewMockServer(
//		common.ServerConfig{Endpoint: "127.0.0.1:5718"},
//		zmq.NewZMQServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	// replace or add commands
//	s.Handle("GetVisionStatistics", func(req *common.RequestEnvelope) (any, error) {
//		return map[string]any{"cycles": 0}, nil
//	})
//
//	go s.WaitForSignal()
//	if err := s.Serve(); err != nil {
//		log.Fatal(err)
//	}
package server

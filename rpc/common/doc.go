// Package common provides core data structures and utilities shared across
// the vision controller client. It defines the typed error taxonomy, the
// request and response envelopes, configuration structures and logging.
//
// The package focuses on:
//   - A closed set of error codes attached to every failure the client raises
//   - Envelope definitions for the request/response protocol
//   - Configuration structures for the client and the mock server
//   - Custom logging implementation integrated with Dragonboat's logger registry
//
// Key Components:
//
//   - ClientError: The single error type returned by the engine. It carries an
//     ErrorCode, a human-readable message and an optional countermeasure.
//     errors.Is(err, common.ErrCallTimeout) matches by code.
//
//   - RequestEnvelope / ResponseEnvelope: The wire level units. A response holds
//     either an error or a result, never both.
//
//   - Endpoint / Channel: The peer address and the two independent channels
//     (command and config) a client talks over.
//
//   - ClientConfig: Endpoint, default timeout, caller identity and transport tuning.
//
//   - Assert / RecoverAssertion: Turn internal invariant violations into
//     Assert errors with file/line/expression context.
//
//   - Logger: zerolog backed implementation of Dragonboat's ILogger, installed
//     as the global logger factory by InitLoggers.
package common

// Package rpc provides the client of the vision controller and everything it
// needs to talk to one: envelopes, serialization, transports and a mock server.
//
// The package is organized into several subpackages:
//
//   - common: Error taxonomy, request/response envelopes, configuration
//     structures, assertions and logging.
//
//   - transport: The connection pool with its two channels, pooled send buffers
//     and pluggable connectors (ZeroMQ, TCP, Unix sockets).
//
//   - serializer: The JSON envelope codec.
//
//   - client: The call engine (send with one retry, deadline, handle discipline)
//     and the generated facade with one method per vision controller command.
//
//   - server: A mock vision controller used in tests and for local development.
//
// Data flow of a call:
//
//	Client.Call ─> serializer.EncodeRequest ─> SocketPool.Acquire/Send ─> connector
//	            <─ serializer.DecodeResponse <─ SocketPool.Receive/Release <─┘
package rpc

// Package unix implements a transport for the vision controller client using Unix
// domain sockets. It provides communication for processes running on the same
// machine, e.g. a controller and a local mock.
//
// The endpoint host is the path of the socket file, the port is not used but must
// still be set (any value other than 0) to pass endpoint validation.
//
// This package extends the base transport layer with Unix socket-specific connectors
// while inheriting framing, lazy connection establishment and error handling from
// the base package.
//
// Key Components:
//
//   - clientConnector: Establishes connections using Unix domain sockets
//
//   - serverConnector: Creates Unix socket listeners and accepts connections
//
// Performance Characteristics:
//
//   - Default buffer size: 64 KB, optimized for local communication patterns
//   - Lower latency: Direct kernel-mediated IPC avoids network subsystem overhead
package unix

// Package tcp implements a TCP socket based transport for the vision controller
// client. It provides concrete implementations of the base package's connector
// interfaces, used by local setups and tests that do not speak ZeroMQ.
//
// This package builds on the base package's transport functionality, inheriting
// its frame protocol, lazy connection establishment and buffer reuse. See the base
// package documentation for details.
//
// Key Components:
//
//   - clientConnector: TCP-specific implementation of base.IStreamConnector.
//     Applies TCPConf and SocketConf (nodelay, keep-alive, linger, buffer sizes)
//     to every new connection.
//
//   - serverConnector: TCP-specific implementation of base.IServerConnector
package tcp

// Package transport defines the interfaces and abstractions for the connection to
// the vision controller and manages the connections of a client. It provides a
// common contract that all transport implementations must fulfill, enabling
// protocol-agnostic communication.
//
// The package focuses on:
//   - Defining clear interfaces for client connections and server transports
//   - Owning every client connection in a pool, callers only hold tokens
//   - Recycling send buffers
//
// Key Components:
//
//   - IClientConnector / IConnection: Interfaces for client-side transport
//     implementations. A connector opens connections without blocking, the
//     connection dials on its first Send.
//
//   - IRPCServerTransport: Interface for server-side transport implementations that
//     receive requests and pass them to a ServerHandleFunc.
//
//   - SocketPool: Keeps at most one idle connection per channel (command, config).
//     Connections are loaned out as Tokens and either cached again (healthy) or
//     closed (unhealthy) on Release. Changing the endpoint bumps an epoch so that no
//     connection to the old endpoint is ever reused.
//
//   - BufferPool / SendBuffer: Reference counted, pooled buffers for encoded requests.
//
// Thread Safety:
//
//	The pool is safe for concurrent use. Each channel has its own mutex that is
//	held only for bookkeeping, never during I/O. A connection is only used by the
//	holder of its token.
package transport

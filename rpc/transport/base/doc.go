// Package base provides a foundation for stream based transports of the vision
// controller client, implementing framed request/reply communication independent
// of the specific network protocol (TCP, Unix sockets). It serves as a base layer
// that is extended with protocol-specific connectors.
//
// The package focuses on:
//   - Protocol-agnostic client connections and server transport
//   - A frame protocol with request ids for reply correlation
//   - Lazy connection establishment bounded by the client's default timeout
//
// Key Components:
//
//   - IStreamConnector/IServerConnector: Interfaces for protocol-specific operations
//     that allow extending the base transport with different network protocols.
//
//   - clientConnection: One framed connection. It dials on the first Send, writes
//     each request with a new request id and skips replies to older requests
//     (e.g. the late reply of a request that timed out).
//
//   - serverTransport: Accepts connections and passes every request to the
//     registered handler, one request at a time per connection.
//
// Frame Format:
//
//	Every frame consists of an 8 byte request id and a 4 byte payload length
//	(both big endian) followed by the payload. Header and payload are written
//	with net.Buffers to avoid an extra syscall.
//
// Performance Optimizations:
//
//   - Buffer Pooling: The server uses a sync.Pool to reuse read buffers, reducing
//     GC pressure and memory allocations.
//
// Thread Safety:
//
//	A client connection is used by a single caller at a time, Close may be called
//	concurrently. The server creates a dedicated goroutine for each connection.
package base

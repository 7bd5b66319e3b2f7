// Package zmq implements the ZeroMQ transport of the vision controller client, the
// wire the real vision controller speaks. Requests are sent on REQ sockets to
// tcp://host:port, the mock server answers on a ROUTER socket.
//
// Key Components:
//
//   - clientConnector: Opens one REQ socket per connection. The socket is dialed
//     on the first Send, without dial retries and bounded by the client's default
//     timeout, so an unreachable controller fails the send instead of blocking.
//
//   - serverTransport: A ROUTER socket that passes every request to the registered
//     handler in its own goroutine and routes the response back to the peer.
//
// Deadlines:
//
//	zmq4 sockets do not support deadlines. Send and Receive run the blocking call in
//	a goroutine; when the deadline passes the socket is closed, which unblocks the
//	call, and os.ErrDeadlineExceeded is returned. The connection is unusable after
//	that and must be discarded, which the client engine does for every timeout.
package zmq

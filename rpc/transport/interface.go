package transport

import (
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ServerHandleFunc is a function type that handles incoming requests
// This function is called by a server transport layer when a request is received
// It takes the serialized request and returns the serialized response
type ServerHandleFunc func(req []byte) (resp []byte)

// IRPCServerTransport is the interface for the server side of a transport
// It must accept a ServerConfig as a parameter
type IRPCServerTransport interface {
	// RegisterHandler registers a handler for the transport layer
	// This handler is called for every request received
	RegisterHandler(handler ServerHandleFunc)
	// Listen starts the transport layer and serves requests until Close is called.
	// It returns nil after Close
	Listen(config common.ServerConfig) error
	// Addr returns the address the server listens on, or "" if it is not listening yet
	Addr() string
	// Close stops listening and closes all accepted connections
	Close() error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IConnection is a single connection to the vision controller.
// A connection is used by one caller at a time, the socket pool guarantees this.
// Deadline errors must match os.ErrDeadlineExceeded with errors.Is
type IConnection interface {
	// Send writes one request frame. The connection is established on the first Send.
	// A zero deadline means no deadline
	Send(frame []byte, deadline time.Time) error
	// Receive waits for the reply to the last request sent.
	// A zero deadline means no deadline
	Receive(deadline time.Time) ([]byte, error)
	// Close closes the connection, it is safe to call Close more than once
	Close() error
}

// IClientConnector creates connections for a specific transport medium (zmq, tcp, unix)
type IClientConnector interface {
	// GetName returns the name of the transport type (e.g., "zmq", "tcp")
	GetName() string
	// Open returns a new connection to the endpoint. Open must not block,
	// the connection is established lazily
	Open(endpoint common.Endpoint, config common.ClientConfig) IConnection
}

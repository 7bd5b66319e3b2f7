package base

import (
	"net"
	"os"
	"sync"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/rpc")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IStreamConnector defines the interface for transport-specific connection operations
type IStreamConnector interface {
	// Connect establishes a single connection to the endpoint within the timeout
	Connect(endpoint common.Endpoint, timeout time.Duration) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientConnector adapts an IStreamConnector to transport.IClientConnector
type clientConnector struct {
	connector IStreamConnector
}

// clientConnection represents a single framed stream connection.
// It dials on the first Send and tags every request with an increasing id,
// replies with another id are skipped
type clientConnection struct {
	connector IStreamConnector
	endpoint  common.Endpoint
	config    common.ClientConfig

	connMu sync.Mutex // Protects conn and closed, not the I/O
	conn   net.Conn
	closed bool

	nextRequestID uint64
	pendingID     uint64 // id of the request awaiting its reply, 0 if none
	readBuf       []byte
}

// -----------------------------------------------------------
// Connector Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseClientConnector creates a new client connector using the stream connector
func NewBaseClientConnector(connector IStreamConnector) transport.IClientConnector {
	return &clientConnector{connector: connector}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return c.connector.GetName()
}

func (c *clientConnector) Open(endpoint common.Endpoint, config common.ClientConfig) transport.IConnection {
	return &clientConnection{
		connector:     c.connector,
		endpoint:      endpoint,
		config:        config,
		nextRequestID: 1,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConnection)
// --------------------------------------------------------------------------

func (c *clientConnection) Send(frame []byte, deadline time.Time) error {
	conn, err := c.connect(deadline)
	if err != nil {
		return err
	}

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return errors.Wrap(err, "failed to set write deadline")
	}

	requestID := c.nextRequestID
	c.nextRequestID++

	if err := writeFrame(conn, requestID, frame); err != nil {
		// the stream is in an unknown state
		c.reset()
		return errors.Wrapf(err, "failed to write request to %s", c.endpoint)
	}

	c.pendingID = requestID
	return nil
}

func (c *clientConnection) Receive(deadline time.Time) ([]byte, error) {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()

	if conn == nil || c.pendingID == 0 {
		return nil, errors.Newf("no request pending on connection to %s", c.endpoint)
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, errors.Wrap(err, "failed to set read deadline")
	}

	for {
		requestID, data, err := readFrame(conn, c.readBuf)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return nil, err
			}
			c.reset()
			return nil, errors.Wrapf(err, "failed to read reply from %s", c.endpoint)
		}

		if requestID != c.pendingID {
			Logger.Warningf("Skipping reply for request ID %d, waiting for %d", requestID, c.pendingID)
			continue
		}

		c.pendingID = 0
		// data may alias the read buffer
		return append([]byte(nil), data...), nil
	}
}

func (c *clientConnection) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// connect returns the established connection or dials a new one.
// Dialing is bounded by the default timeout and the deadline, whichever is first
func (c *clientConnection) connect(deadline time.Time) (net.Conn, error) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.closed {
		return nil, errors.Newf("connection to %s is closed", c.endpoint)
	}
	if c.conn != nil {
		return c.conn, nil
	}

	timeout := time.Duration(c.config.DefaultTimeoutMS) * time.Millisecond
	if !deadline.IsZero() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, os.ErrDeadlineExceeded
		}
		if timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}

	conn, err := c.connector.Connect(c.endpoint, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", c.endpoint)
	}

	// Upgrade the connection with protocol-specific settings
	if err := c.connector.UpgradeConnection(conn, c.config); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to upgrade connection to %s", c.endpoint)
	}

	if c.config.Transport.ReadBufferSize > 0 {
		c.readBuf = make([]byte, c.config.Transport.ReadBufferSize)
	}

	Logger.Debugf("Connected to %s using %s transport", c.endpoint, c.connector.GetName())
	c.conn = conn
	return conn, nil
}

// reset closes the underlying connection, the next Send dials again
func (c *clientConnection) reset() {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.pendingID = 0
}

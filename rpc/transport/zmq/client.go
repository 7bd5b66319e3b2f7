package zmq

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/cockroachdb/errors"
	"github.com/go-zeromq/zmq4"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/zmq")

// clientConnector implements the IClientConnector interface with ZeroMQ REQ sockets
type clientConnector struct{}

// clientConnection is a single REQ socket. The socket is created and dialed on the
// first Send. zmq4 sockets have no deadlines, so blocking operations run in a
// goroutine and the socket is closed when the deadline passes
type clientConnection struct {
	endpoint common.Endpoint
	config   common.ClientConfig

	mu     sync.Mutex // Protects sock, cancel and closed
	sock   zmq4.Socket
	cancel context.CancelFunc
	closed bool
}

// NewZMQClientConnector creates a new ZeroMQ client connector
func NewZMQClientConnector() transport.IClientConnector {
	return &clientConnector{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "zmq"
}

func (c *clientConnector) Open(endpoint common.Endpoint, config common.ClientConfig) transport.IConnection {
	return &clientConnection{endpoint: endpoint, config: config}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IConnection)
// --------------------------------------------------------------------------

func (c *clientConnection) Send(frame []byte, deadline time.Time) error {
	sock, err := c.connect(deadline)
	if err != nil {
		return err
	}

	err = c.withDeadline(deadline, func() error {
		return sock.Send(zmq4.NewMsg(frame))
	})
	if err != nil {
		return errors.Wrapf(err, "failed to send request to %s", c.address())
	}
	return nil
}

func (c *clientConnection) Receive(deadline time.Time) ([]byte, error) {
	c.mu.Lock()
	sock := c.sock
	c.mu.Unlock()
	if sock == nil {
		return nil, errors.Newf("socket to %s is not connected", c.address())
	}

	var msg zmq4.Msg
	err := c.withDeadline(deadline, func() error {
		var err error
		msg, err = sock.Recv()
		return err
	})
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to receive reply from %s", c.address())
	}
	return msg.Bytes(), nil
}

func (c *clientConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return c.closeSocket()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// address returns the ZeroMQ address of the endpoint
func (c *clientConnection) address() string {
	return fmt.Sprintf("tcp://%s", c.endpoint)
}

// connect returns the dialed socket or creates a new one.
// Dialing is bounded by the default timeout and the deadline, whichever is first
func (c *clientConnection) connect(deadline time.Time) (zmq4.Socket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.Newf("socket to %s is closed", c.address())
	}
	if c.sock != nil {
		return c.sock, nil
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

	opts := []zmq4.Option{zmq4.WithDialerMaxRetries(0)}
	if timeout > 0 {
		opts = append(opts, zmq4.WithDialerTimeout(timeout))
	}

	ctx, cancel := context.WithCancel(context.Background())
	sock := zmq4.NewReq(ctx, opts...)
	if err := sock.Dial(c.address()); err != nil {
		cancel()
		_ = sock.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", c.address())
	}

	Logger.Debugf("Connected REQ socket to %s", c.address())
	c.sock = sock
	c.cancel = cancel
	return sock, nil
}

// closeSocket closes the socket, c.mu must be held
func (c *clientConnection) closeSocket() error {
	if c.sock == nil {
		return nil
	}
	c.cancel()
	err := c.sock.Close()
	c.sock = nil
	c.cancel = nil
	return err
}

// withDeadline runs fn and returns os.ErrDeadlineExceeded if it does not return before
// the deadline. In that case the socket is closed to unblock fn
func (c *clientConnection) withDeadline(deadline time.Time, fn func() error) error {
	if deadline.IsZero() {
		return fn()
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return os.ErrDeadlineExceeded
	}

	done := make(chan error, 1)
	go func() { done <- fn() }()

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		c.mu.Lock()
		_ = c.closeSocket()
		c.mu.Unlock()
		<-done
		return os.ErrDeadlineExceeded
	}
}

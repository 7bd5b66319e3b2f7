package client

import (
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/serializer"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/zmq"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger("rpc")
)

const (
	// maxSendAttempts is the first attempt plus exactly one retry
	maxSendAttempts = 2
	// maxTimeoutSeconds is the largest timeout a time.Duration can hold, longer timeouts never expire
	maxTimeoutSeconds = float64(math.MaxInt64 / int64(time.Second))
)

// Client talks to a single vision controller over two independent channels
// (command and config). At most one call per channel may be in flight, calls on
// different channels may run concurrently
type Client struct {
	serializer serializer.IRPCSerializer
	pool       *transport.SocketPool
	buffers    *transport.BufferPool
	metrics    *clientMetrics

	mu     sync.RWMutex // Protects config
	config common.ClientConfig
	closed atomic.Bool
}

// NewClient creates a new client. No connection is opened before the first call
//
// Usage:
//
//	c, err := client.NewClient(
//		common.NewClientConfig("127.0.0.1", 5718, 200, "robot-1"),
//		zmq.NewZMQClientConnector(),
//		serializer.NewJSONSerializer(),
//	)
//	result, err := c.Ping(client.PingParams{}, 0)
func NewClient(
	config common.ClientConfig,
	connector transport.IClientConnector,
	serializer serializer.IRPCSerializer,
) (*Client, error) {
	if connector == nil || serializer == nil {
		return nil, common.NewClientError(common.ErrCodeInvalidArgument, nil, "connector and serializer must not be nil")
	}
	if err := config.Endpoint.Validate(); err != nil {
		return nil, err
	}

	Logger.Debugf("Created client for %s using %s transport and %s serializer",
		config.Endpoint, connector.GetName(), serializer.Name())

	return &Client{
		serializer: serializer,
		pool:       transport.NewSocketPool(connector, config),
		buffers:    transport.NewBufferPool(config.Transport.WriteBufferSize),
		metrics:    newClientMetrics(),
		config:     config,
	}, nil
}

// New creates a client that speaks JSON over ZeroMQ, the protocol of the vision controller
func New(host string, port uint16, defaultTimeoutMS uint64, callerID string) (*Client, error) {
	return NewClient(
		common.NewClientConfig(host, port, defaultTimeoutMS, callerID),
		zmq.NewZMQClientConnector(),
		serializer.NewJSONSerializer(),
	)
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// SetEndpoint changes the vision controller address. Every pooled connection is
// invalidated, calls in flight finish on their old connection which is then discarded
func (c *Client) SetEndpoint(host string, port uint16) error {
	endpoint := common.Endpoint{Host: host, Port: port}
	if err := c.pool.SetEndpoint(endpoint); err != nil {
		return err
	}

	c.mu.Lock()
	c.config.Endpoint = endpoint
	c.mu.Unlock()
	return nil
}

// Endpoint returns the current vision controller address
func (c *Client) Endpoint() common.Endpoint {
	return c.pool.Endpoint()
}

// SetCallerID changes the id sent with every request
func (c *Client) SetCallerID(callerID string) {
	c.mu.Lock()
	c.config.CallerID = callerID
	c.mu.Unlock()
}

// CallerID returns the id sent with every request
func (c *Client) CallerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.CallerID
}

// Config returns a copy of the current configuration
func (c *Client) Config() common.ClientConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// PoolStats returns a snapshot of the connection pool
func (c *Client) PoolStats() []transport.PoolStats {
	return c.pool.Stats()
}

// Close closes all connections. It is safe to call Close more than once,
// every call after Close fails with FailedToSendZMQRequest
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	Logger.Debugf("Closing client for %s", c.Endpoint())
	return c.pool.Close()
}

// --------------------------------------------------------------------------
// Calls
// --------------------------------------------------------------------------

// Call sends a command on the channel and waits up to timeoutSeconds for the reply.
// A timeout <= 0 waits without limit if AllowUnboundedWait is set and times out
// right after sending otherwise. The returned result is the opaque "result" of the
// reply, numbers are json.Number
func (c *Client) Call(ch common.Channel, command string, params map[string]any, timeoutSeconds float64) (result any, err error) {
	start := time.Now()
	defer func() { c.metrics.observe(ch, start, err) }()
	defer common.RecoverAssertion(&err)

	deadline, err := c.prepare(command, start, timeoutSeconds)
	if err != nil {
		return nil, err
	}

	// a call that doesn't wait for the reply may still retry the send
	retryBy := time.Time{}
	if timeoutSeconds > 0 {
		retryBy = deadline
	}

	tok, err := c.send(ch, command, params, retryBy)
	if err != nil {
		return nil, err
	}
	common.Assert(tok.Channel() == ch, "tok.Channel() == ch")

	return c.receive(tok, command, deadline)
}

// CallFireAndForget sends a command on the channel and returns as soon as it is
// written. No reply is read, only send failures are reported. The timeout
// never suppresses the retry of a failed send
func (c *Client) CallFireAndForget(ch common.Channel, command string, params map[string]any, timeoutSeconds float64) (err error) {
	start := time.Now()
	defer func() { c.metrics.observe(ch, start, err) }()
	defer common.RecoverAssertion(&err)

	if _, err := c.prepare(command, start, timeoutSeconds); err != nil {
		return err
	}

	tok, err := c.send(ch, command, params, time.Time{})
	if err != nil {
		return err
	}

	// the reply is never read, so the connection can't be used for another request
	c.pool.Release(tok, false)
	return nil
}

// SendAndReceiveCommand calls a command on the command channel
func (c *Client) SendAndReceiveCommand(command string, params map[string]any, timeoutSeconds float64) (any, error) {
	return c.Call(common.ChannelCommand, command, params, timeoutSeconds)
}

// SendAndReceiveConfig calls a command on the config channel
func (c *Client) SendAndReceiveConfig(command string, params map[string]any, timeoutSeconds float64) (any, error) {
	return c.Call(common.ChannelConfig, command, params, timeoutSeconds)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// prepare validates a call and returns the reply deadline, computed once at call entry.
// A zero deadline means no limit, so does a timeout too large for a time.Duration
func (c *Client) prepare(command string, start time.Time, timeoutSeconds float64) (time.Time, error) {
	if c.closed.Load() {
		return time.Time{}, common.NewClientError(common.ErrCodeFailedToSendZMQRequest, nil, "client is closed")
	}
	if command == "" {
		return time.Time{}, common.NewClientError(common.ErrCodeInvalidArgument, nil, "command must not be empty")
	}

	if timeoutSeconds >= maxTimeoutSeconds {
		return time.Time{}, nil
	}
	if timeoutSeconds > 0 {
		return start.Add(time.Duration(timeoutSeconds * float64(time.Second))), nil
	}
	if c.Config().AllowUnboundedWait {
		return time.Time{}, nil
	}
	return start, nil
}

// send encodes the request and writes it on a connection of the channel.
// A failed write is retried exactly once on a new connection, unless retryBy
// is set and has passed. The returned token is loaned and must be released
func (c *Client) send(ch common.Channel, command string, params map[string]any, retryBy time.Time) (transport.Token, error) {
	config := c.Config()

	buf := c.buffers.Get()
	defer buf.Release()

	req := common.NewRequest(command, config.CallerID, params)
	if err := c.serializer.EncodeRequest(buf, req); err != nil {
		return transport.Token{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if attempt > 1 {
			if !retryBy.IsZero() && !time.Now().Before(retryBy) {
				Logger.Debugf("Not retrying %s, deadline has passed", command)
				break
			}
			c.metrics.retry(ch)
			Logger.Warningf("Retrying %s on %s channel after write failure: %v", command, ch, lastErr)
		}

		tok, err := c.pool.Acquire(ch)
		if err != nil {
			return transport.Token{}, common.NewClientError(common.ErrCodeFailedToSendZMQRequest, err,
				"failed to get a %s socket", ch)
		}

		writeDeadline := time.Time{}
		if config.DefaultTimeoutMS > 0 {
			writeDeadline = time.Now().Add(time.Duration(config.DefaultTimeoutMS) * time.Millisecond)
		}

		if err := c.pool.SendBuffer(tok, buf, writeDeadline); err != nil {
			c.pool.Release(tok, false)
			lastErr = err
			continue
		}
		return tok, nil
	}

	return transport.Token{}, common.NewClientError(common.ErrCodeFailedToSendZMQRequest, lastErr,
		"failed to send %s to %s", command, config.Endpoint).
		WithCountermeasure("check that the vision controller is running and reachable")
}

// receive waits for the reply on the loaned connection and decodes it.
// The connection is released healthy after every complete round trip
func (c *Client) receive(tok transport.Token, command string, deadline time.Time) (any, error) {
	timeout := func(cause error) error {
		return common.NewClientError(common.ErrCodeCallTimeout, cause, "no reply to %s within the timeout", command).
			WithCountermeasure("increase the timeout or check the state of the vision controller")
	}

	if !deadline.IsZero() && !time.Now().Before(deadline) {
		c.pool.Release(tok, false)
		return nil, timeout(nil)
	}

	data, err := c.pool.Receive(tok, deadline)
	if err != nil {
		// the reply may still arrive, the connection must not be reused
		c.pool.Release(tok, false)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, timeout(err)
		}
		return nil, common.NewClientError(common.ErrCodeZMQRecvError, err, "failed to receive reply to %s", command)
	}
	c.pool.Release(tok, true)

	resp, err := c.serializer.DecodeResponse(data)
	if err != nil {
		if common.CodeOf(err) != common.ErrCodeInvalidZMQResponse {
			err = common.NewClientError(common.ErrCodeInvalidZMQResponse, err, "invalid reply to %s", command)
		}
		return nil, err
	}

	if resp.Error != nil {
		ce := common.NewClientError(common.ErrCodeUnexpectedReturnData, nil, "%s", resp.Error.Description)
		ce.RemoteCode = resp.Error.Code
		return nil, ce
	}
	return resp.Result, nil
}

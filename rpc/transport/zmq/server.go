package zmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/cockroachdb/errors"
	"github.com/go-zeromq/zmq4"
)

// serverTransport serves requests on a ZeroMQ ROUTER socket
type serverTransport struct {
	handler transport.ServerHandleFunc

	mu     sync.Mutex // Protects sock, cancel and closed
	sock   zmq4.Socket
	cancel context.CancelFunc
	closed bool
}

// NewZMQServerTransport creates a new ZeroMQ server transport
func NewZMQServerTransport() transport.IRPCServerTransport {
	return &serverTransport{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

// Listen binds a ROUTER socket to tcp://<config.Endpoint>. Every request is
// handled in its own goroutine, so a slow command does not block other peers
func (t *serverTransport) Listen(config common.ServerConfig) error {
	if t.handler == nil {
		return errors.New("no handler registered")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sock := zmq4.NewRouter(ctx)
	address := fmt.Sprintf("tcp://%s", config.Endpoint)
	if err := sock.Listen(address); err != nil {
		cancel()
		_ = sock.Close()
		return errors.Wrapf(err, "failed to listen on %s", address)
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		cancel()
		_ = sock.Close()
		return nil
	}
	t.sock = sock
	t.cancel = cancel
	t.mu.Unlock()

	Logger.Infof("Starting zmq server on %s", address)

	var sendMu sync.Mutex
	for {
		msg, err := sock.Recv()
		if err != nil {
			if t.isClosed() {
				return nil
			}
			Logger.Warningf("Receive error: %v", err)
			continue
		}

		// a request from a REQ peer is [identity, empty delimiter, payload]
		if len(msg.Frames) != 3 || len(msg.Frames[1]) != 0 {
			Logger.Warningf("Dropping message with %d frames", len(msg.Frames))
			continue
		}
		peer, payload := msg.Frames[0], msg.Frames[2]

		go func() {
			resp := t.handler(payload)

			sendMu.Lock()
			defer sendMu.Unlock()
			if err := sock.Send(zmq4.NewMsgFrom(peer, []byte{}, resp)); err != nil && !t.isClosed() {
				Logger.Errorf("Failed to send response: %v", err)
			}
		}()
	}
}

func (t *serverTransport) Addr() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sock == nil {
		return ""
	}
	if addr := t.sock.Addr(); addr != nil {
		return addr.String()
	}
	return ""
}

func (t *serverTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.sock == nil {
		return nil
	}
	t.cancel()
	err := t.sock.Close()
	t.sock = nil
	return err
}

func (t *serverTransport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

package server

import (
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/serializer"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var Logger = logger.GetLogger("server")

// MockServer is a stand-in for the vision controller. It answers the built-in
// commands (see handlers.go) and any command registered with Handle
type MockServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	handlers   *xsync.MapOf[string, HandlerFunc]
	state      *visionState

	requests atomic.Uint64
	quitOnce sync.Once
	quit     chan struct{}
}

// NewMockServer creates a new mock vision controller
// It takes a config, transport and serializer as parameters
//
// Usage:
//
//	s := server.NewMockServer(
//		common.ServerConfig{Endpoint: "127.0.0.1:5718"},
//		zmq.NewZMQServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewMockServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) *MockServer {
	// https://github.com/golang/go/issues/17393
	if runtime.GOOS == "darwin" {
		signal.Ignore(syscall.Signal(0xd))
	}

	s := &MockServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
		handlers:   xsync.NewMapOf[string, HandlerFunc](),
		state:      newVisionState(),
		quit:       make(chan struct{}),
	}
	s.registerBuiltins()

	Logger.Debugf("Created mock vision controller")
	return s
}

// Handle registers the handler for a command, replacing any existing handler
func (s *MockServer) Handle(command string, handler HandlerFunc) {
	s.handlers.Store(command, handler)
}

// Serve starts the transport layer and blocks until Close is called
func (s *MockServer) Serve() error {
	s.transport.RegisterHandler(s.handle)
	Logger.Infof(s.config.String())
	if err := s.transport.Listen(s.config); err != nil {
		return errors.Wrap(err, "mock vision controller stopped")
	}
	return nil
}

// Addr returns the address the server listens on, or "" before Serve
func (s *MockServer) Addr() string {
	return s.transport.Addr()
}

// Close stops the server
func (s *MockServer) Close() error {
	return s.transport.Close()
}

// Requests returns the number of requests received
func (s *MockServer) Requests() uint64 {
	return s.requests.Load()
}

// QuitRequested is closed when a Quit command was received
func (s *MockServer) QuitRequested() <-chan struct{} {
	return s.quit
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handle is the transport.ServerHandleFunc of the server
func (s *MockServer) handle(data []byte) []byte {
	s.requests.Add(1)

	var resp common.ResponseEnvelope
	req, err := s.serializer.DecodeRequest(data)
	if err != nil {
		Logger.Warningf("Failed to decode request: %v", err)
		resp = common.NewErrorResponse(ErrCodeInvalidRequest, err.Error())
	} else {
		resp = s.dispatch(req)
	}

	b, err := s.serializer.EncodeResponse(resp)
	if err != nil {
		Logger.Errorf("Failed to encode response: %v", err)
		b, _ = s.serializer.EncodeResponse(common.NewErrorResponse(ErrCodeUnknown, err.Error()))
	}
	return b
}

// dispatch calls the handler of the command
func (s *MockServer) dispatch(req *common.RequestEnvelope) common.ResponseEnvelope {
	handler, ok := s.handlers.Load(req.Command)
	if !ok {
		Logger.Warningf("Unknown command %q from %q", req.Command, req.CallerID)
		return common.NewErrorResponse(ErrCodeUnknownCommand, "unknown command "+req.Command)
	}

	Logger.Debugf("Handling %s from %q", req.Command, req.CallerID)
	result, err := handler(req)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return common.NewErrorResponse(cmdErr.Code, cmdErr.Description)
		}
		return common.NewErrorResponse(ErrCodeUnknown, err.Error())
	}
	return common.NewResultResponse(result)
}

// requestQuit closes the quit channel once
func (s *MockServer) requestQuit() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// WaitForSignal blocks until SIGINT/SIGTERM or a Quit command and closes the server
func (s *MockServer) WaitForSignal() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		Logger.Infof("Received %s, shutting down", sig)
	case <-s.quit:
		Logger.Infof("Quit requested, shutting down")
	}
	_ = s.Close()
}

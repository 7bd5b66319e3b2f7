package unix

import (
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/base"
	"github.com/cockroachdb/errors"
)

const (
	defaultBufferSize = 64 * 1024 // 64 KB

	// socketMode restricts the socket file to the owner and its group
	socketMode fs.FileMode = 0o660
)

// serverConnector implements the IServerConnector interface for Unix sockets
type serverConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IServerConnector)
// --------------------------------------------------------------------------

func (c *serverConnector) GetName() string {
	return "unix"
}

// Listen binds the socket file named by the endpoint. A stale socket left by a
// previous mock is replaced, any other file at that path is an error.
// The socket file is removed when the listener is closed
func (c *serverConnector) Listen(config common.ServerConfig) (net.Listener, error) {
	socketPath := SocketPath(config.Endpoint)
	if socketPath == "" {
		return nil, errors.New("unix endpoint must name a socket file")
	}

	if err := removeStaleSocket(socketPath); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", socketPath)
	}

	listener, err := net.ListenUnix("unix", &net.UnixAddr{Name: socketPath, Net: "unix"})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create Unix socket %s", socketPath)
	}
	listener.SetUnlinkOnClose(true)

	if err := os.Chmod(socketPath, socketMode); err != nil {
		_ = listener.Close()
		return nil, errors.Wrapf(err, "failed to set permissions of %s", socketPath)
	}

	return listener, nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// SocketPath returns the socket file of an endpoint, an optional unix:// scheme is dropped
func SocketPath(endpoint string) string {
	return strings.TrimPrefix(strings.TrimSpace(endpoint), "unix://")
}

// removeStaleSocket deletes path if it is a socket file
func removeStaleSocket(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.Mode()&fs.ModeSocket == 0 {
		return errors.Newf("%s exists and is not a socket", path)
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, "failed to remove stale socket %s", path)
	}
	base.Logger.Debugf("Removed stale socket %s", path)
	return nil
}

// --------------------------------------------------------------------------
// Server Transport Factory Method
// --------------------------------------------------------------------------

// NewUnixDefaultServerTransport creates a new Unix server transport with default buffer size
func NewUnixDefaultServerTransport() transport.IRPCServerTransport {
	return NewUnixServerTransport(defaultBufferSize)
}

// NewUnixServerTransport creates a new Unix server transport with specified buffer size
func NewUnixServerTransport(bufferSize int) transport.IRPCServerTransport {
	return base.NewBaseServerTransport(&serverConnector{}, bufferSize)
}

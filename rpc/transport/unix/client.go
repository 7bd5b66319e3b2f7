package unix

import (
	"net"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/base"
)

// clientConnector implements the IStreamConnector interface for Unix sockets
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IStreamConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "unix"
}

// Connect dials the socket file named by the endpoint host (optionally prefixed with unix://), the port is ignored
func (c *clientConnector) Connect(endpoint common.Endpoint, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout("unix", SocketPath(endpoint.Host), timeout)
}

func (c *clientConnector) UpgradeConnection(net.Conn, common.ClientConfig) error {
	return nil
}

// --------------------------------------------------------------------------
// Client Connector Factory Method
// --------------------------------------------------------------------------

// NewUnixClientConnector creates a new Unix client connector
func NewUnixClientConnector() transport.IClientConnector {
	return base.NewBaseClientConnector(&clientConnector{})
}

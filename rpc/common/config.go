package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Endpoint and Channel
// --------------------------------------------------------------------------

// Endpoint identifies the vision controller
type Endpoint struct {
	Host string
	Port uint16
}

// String returns the endpoint in host:port notation
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// IsZero reports whether no endpoint is configured
func (e Endpoint) IsZero() bool {
	return e.Host == "" && e.Port == 0
}

// Validate checks that the endpoint can be connected to
func (e Endpoint) Validate() error {
	if e.Host == "" {
		return NewClientError(ErrCodeInvalidArgument, nil, "endpoint host is empty").
			WithCountermeasure("configure the hostname of the vision controller")
	}
	if e.Port == 0 {
		return NewClientError(ErrCodeInvalidArgument, nil, "endpoint port of %q is 0", e.Host).
			WithCountermeasure("configure the port of the vision controller")
	}
	return nil
}

// Channel selects one of the two independent sockets to the vision controller
type Channel uint8

const (
	ChannelCommand Channel = iota
	ChannelConfig
)

// Channels lists all channels, in pool order
var Channels = [...]Channel{ChannelCommand, ChannelConfig}

func (c Channel) String() string {
	switch c {
	case ChannelCommand:
		return "command"
	case ChannelConfig:
		return "config"
	default:
		return fmt.Sprintf("channel(%d)", uint8(c))
	}
}

// ParseChannel parses the name of a channel
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "command":
		return ChannelCommand, nil
	case "config":
		return ChannelConfig, nil
	default:
		return 0, NewClientError(ErrCodeInvalidArgument, nil, "invalid channel %q (expected command or config)", name)
	}
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

const (
	// DefaultHost and DefaultPort are used when nothing else is configured
	DefaultHost = "127.0.0.1"
	DefaultPort = 5718
	// DefaultTimeoutMS bounds connecting and writing a single request
	DefaultTimeoutMS = 200
)

type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
}

type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int
	TCPLingerSec    int
}

type ClientTransportConfig struct {
	// Name of the transport (zmq, tcp, unix)
	Name string
	SocketConf
	TCPConf
}

type ClientConfig struct {
	Endpoint Endpoint
	// DefaultTimeoutMS bounds connection establishment and each write
	DefaultTimeoutMS uint64
	// CallerID is passed as 'callerid' with every request
	CallerID string
	// AllowUnboundedWait lets a call with timeout <= 0 wait forever for a reply.
	// If false such a call times out immediately after sending
	AllowUnboundedWait bool
	Transport          ClientTransportConfig
}

// NewClientConfig returns a config with defaults for the given endpoint
func NewClientConfig(host string, port uint16, defaultTimeoutMS uint64, callerID string) ClientConfig {
	return ClientConfig{
		Endpoint:         Endpoint{Host: host, Port: port},
		DefaultTimeoutMS: defaultTimeoutMS,
		CallerID:         callerID,
		Transport: ClientTransportConfig{
			Name:    "zmq",
			TCPConf: TCPConf{TCPNoDelay: true, TCPLingerSec: -1},
		},
	}
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint.String())
	addField("Caller ID", c.CallerID)
	addField("Default Timeout", fmt.Sprintf("%d ms", c.DefaultTimeoutMS))
	addField("Unbounded Wait", strconv.FormatBool(c.AllowUnboundedWait))

	// Transport
	addSection("Transport")
	addField("Name", c.Transport.Name)
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.Transport.WriteBufferSize))
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.Transport.ReadBufferSize))
	if c.Transport.Name == "tcp" {
		addField("TCP NoDelay", strconv.FormatBool(c.Transport.TCPNoDelay))
		addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.Transport.TCPKeepAliveSec))
		addField("TCP Linger", fmt.Sprintf("%d sec", c.Transport.TCPLingerSec))
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// Mock server configuration struct
// --------------------------------------------------------------------------

// ServerConfig configures the mock vision controller
type ServerConfig struct {
	// Endpoint is the address to listen on (host:port or a socket path)
	Endpoint string
	// TimeoutSecond bounds reads and writes on accepted connections, 0 disables it
	TimeoutSecond int64
	// LogLevel is the level at which logs will be output
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder
	sb.WriteString("\nMOCK VISION CONTROLLER\n")
	sb.WriteString(fmt.Sprintf("  %-22s: %s\n", "Endpoint", c.Endpoint))
	sb.WriteString(fmt.Sprintf("  %-22s: %d sec\n", "Timeout", c.TimeoutSecond))
	sb.WriteString(fmt.Sprintf("  %-22s: %s\n", "Log Level", c.LogLevel))
	return sb.String()
}

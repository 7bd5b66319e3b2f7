package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ValentinKolb/vcc/rpc/client"
	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/serializer"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/tcp"
	"github.com/ValentinKolb/vcc/rpc/transport/unix"
	"github.com/ValentinKolb/vcc/rpc/transport/zmq"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// InitConfig loads .env files and makes every flag settable as VCC_<FLAG>
func InitConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("vcc")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// SetupRPCClientFlags adds the connection flags of the vision controller client to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "host"
	cmd.PersistentFlags().String(key, common.DefaultHost, WrapString("Hostname or IP of the vision controller (for the unix transport the path of the socket file)"))

	key = "port"
	cmd.PersistentFlags().Uint16(key, common.DefaultPort, WrapString("Port of the vision controller"))

	key = "timeout"
	cmd.PersistentFlags().Uint64(key, common.DefaultTimeoutMS, WrapString("Timeout in milliseconds for connecting and sending a request"))

	key = "call-timeout"
	cmd.PersistentFlags().Float64(key, 0, WrapString("Timeout in seconds to wait for the reply. 0 uses the default of the command"))

	key = "caller-id"
	cmd.PersistentFlags().String(key, "", WrapString("Id sent with every request (default vcc-<random uuid>)"))

	key = "unbounded-wait"
	cmd.PersistentFlags().Bool(key, false, WrapString("Wait without limit for replies of calls with a negative call timeout"))

	key = "transport"
	cmd.PersistentFlags().String(key, "zmq", WrapString("Transport to use (zmq, tcp, unix)"))

	key = "transport-write-buffer"
	cmd.PersistentFlags().Int(key, 512, WrapString("The size of the write buffer for the transport (in KB, ignored for zmq)"))

	key = "transport-read-buffer"
	cmd.PersistentFlags().Int(key, 512, WrapString("The size of the read buffer for the transport (in KB, ignored for zmq)"))

	key = "transport-tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to enable TCP_NODELAY (only for tcp)"))

	key = "transport-tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The keepalive interval (in seconds, only for tcp)"))

	key = "transport-tcp-linger"
	cmd.PersistentFlags().Int(key, -1, WrapString("The linger time (in seconds, only for tcp, -1 keeps the system default)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("Level at which logs will be output (debug, info, warn, error)"))
}

// GetClientConfig reads the client configuration from viper
func GetClientConfig() common.ClientConfig {
	callerID := viper.GetString("caller-id")
	if callerID == "" {
		callerID = "vcc-" + uuid.NewString()
	}

	return common.ClientConfig{
		Endpoint: common.Endpoint{
			Host: viper.GetString("host"),
			Port: viper.GetUint16("port"),
		},
		DefaultTimeoutMS:   viper.GetUint64("timeout"),
		CallerID:           callerID,
		AllowUnboundedWait: viper.GetBool("unbounded-wait"),
		Transport: common.ClientTransportConfig{
			Name: viper.GetString("transport"),
			SocketConf: common.SocketConf{
				WriteBufferSize: viper.GetInt("transport-write-buffer") * 1024,
				ReadBufferSize:  viper.GetInt("transport-read-buffer") * 1024,
			},
			TCPConf: common.TCPConf{
				TCPKeepAliveSec: viper.GetInt("transport-tcp-keepalive"),
				TCPLingerSec:    viper.GetInt("transport-tcp-linger"),
				TCPNoDelay:      viper.GetBool("transport-tcp-nodelay"),
			},
		},
	}
}

// GetCallTimeout returns the reply timeout in seconds
func GetCallTimeout() float64 {
	return viper.GetFloat64("call-timeout")
}

// GetClientConnector creates the client connector of a transport
func GetClientConnector(name string) (transport.IClientConnector, error) {
	switch name {
	case "zmq":
		return zmq.NewZMQClientConnector(), nil
	case "tcp":
		return tcp.NewTCPClientConnector(), nil
	case "unix":
		return unix.NewUnixClientConnector(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", name)
	}
}

// NewClient initializes the loggers and creates a client from the viper configuration
func NewClient() (*client.Client, error) {
	if err := common.InitLoggers(viper.GetString("log-level")); err != nil {
		return nil, err
	}

	config := GetClientConfig()
	connector, err := GetClientConnector(config.Transport.Name)
	if err != nil {
		return nil, err
	}
	return client.NewClient(config, connector, serializer.NewJSONSerializer())
}

// --------------------------------------------------------------------------
// Input and Output
// --------------------------------------------------------------------------

// ParseJSONObject parses a json object given on the command line.
// An empty string is an empty object
func ParseJSONObject(s string) (map[string]any, error) {
	if strings.TrimSpace(s) == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "parameters must be a json object")
	}
	if m == nil {
		return map[string]any{}, nil
	}
	return m, nil
}

// PrintResult prints the result of a call as indented json.
// String results (raw data) are printed as is
func PrintResult(result any) error {
	if s, ok := result.(string); ok {
		_, err := os.Stdout.WriteString(s + "\n")
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, "failed to print result")
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}

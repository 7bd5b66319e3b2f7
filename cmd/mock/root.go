package mock

import (
	"fmt"

	cmdUtil "github.com/ValentinKolb/vcc/cmd/util"
	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/serializer"
	"github.com/ValentinKolb/vcc/rpc/server"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/tcp"
	"github.com/ValentinKolb/vcc/rpc/transport/unix"
	"github.com/ValentinKolb/vcc/rpc/transport/zmq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	mockCmdConfig = &common.ServerConfig{}
	MockCmd       = &cobra.Command{
		Use:     "mock",
		Short:   "Start a mock vision controller",
		Long:    `Start a mock vision controller for local development. It answers Ping, GetPublishedState, GetTaskState, SetLogLevel, Cancel, Quit and the task commands. The configuration can be set via command line flags or environment variables. The format of the environment variables is VCC_<flag> (e.g. VCC_ENDPOINT=0.0.0.0:5718)`,
		Args:    cobra.NoArgs,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	key := "endpoint"
	MockCmd.Flags().String(key, fmt.Sprintf("%s:%d", common.DefaultHost, common.DefaultPort), cmdUtil.WrapString("The address on which the mock will listen (e.g. 0.0.0.0:5718, /tmp/vcc.sock, ...)"))

	key = "transport"
	MockCmd.Flags().String(key, "zmq", cmdUtil.WrapString("Transport to use (zmq, tcp, unix)"))

	key = "transport-buffer"
	MockCmd.Flags().Int(key, 64, cmdUtil.WrapString("The size of the read and write buffer per connection (in KB, ignored for zmq)"))

	key = "timeout"
	MockCmd.Flags().Int64(key, 0, cmdUtil.WrapString("Timeout in seconds for reads and writes on accepted connections, 0 disables it (ignored for zmq)"))

	key = "log-level"
	MockCmd.Flags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	mockCmdConfig.Endpoint = viper.GetString("endpoint")
	mockCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	mockCmdConfig.LogLevel = viper.GetString("log-level")

	return common.InitLoggers(mockCmdConfig.LogLevel)
}

// run starts the mock and blocks until it is stopped by a signal or a Quit command
func run(_ *cobra.Command, _ []string) error {
	bufferSize := viper.GetInt("transport-buffer") * 1024

	var t transport.IRPCServerTransport
	switch viper.GetString("transport") {
	case "zmq":
		t = zmq.NewZMQServerTransport()
	case "tcp":
		t = tcp.NewTCPServerTransport(bufferSize)
	case "unix":
		t = unix.NewUnixServerTransport(bufferSize)
	default:
		return fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}

	s := server.NewMockServer(
		*mockCmdConfig,
		t,
		serializer.NewJSONSerializer(),
	)

	go s.WaitForSignal()
	return s.Serve()
}

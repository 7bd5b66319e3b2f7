package server_test

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/ValentinKolb/vcc/rpc/client"
	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/ValentinKolb/vcc/rpc/serializer"
	"github.com/ValentinKolb/vcc/rpc/server"
	"github.com/ValentinKolb/vcc/rpc/transport"
	"github.com/ValentinKolb/vcc/rpc/transport/tcp"
	"github.com/ValentinKolb/vcc/rpc/transport/unix"
	"github.com/ValentinKolb/vcc/rpc/transport/zmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------------------------------------------------------------
// Test Setup
// --------------------------------------------------------------------------

type transportCase struct {
	name      string
	server    func() transport.IRPCServerTransport
	connector func() transport.IClientConnector
	endpoint  func(t *testing.T) (listen string, host string, port uint16)
}

func freePort(t *testing.T) uint16 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port)
}

func tcpEndpoint(t *testing.T) (string, string, uint16) {
	port := freePort(t)
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(int(port))), "127.0.0.1", port
}

var transportCases = []transportCase{
	{
		name:      "tcp",
		server:    tcp.NewTCPDefaultServerTransport,
		connector: tcp.NewTCPClientConnector,
		endpoint:  tcpEndpoint,
	},
	{
		name:      "unix",
		server:    unix.NewUnixDefaultServerTransport,
		connector: unix.NewUnixClientConnector,
		endpoint: func(t *testing.T) (string, string, uint16) {
			path := filepath.Join(t.TempDir(), "vcc.sock")
			// the port of a unix endpoint is not used but must be set
			return path, path, 1
		},
	},
	{
		name:      "zmq",
		server:    zmq.NewZMQServerTransport,
		connector: zmq.NewZMQClientConnector,
		endpoint:  tcpEndpoint,
	},
}

// startServer starts a mock server and returns a client connected to it
func startServer(t *testing.T, tc transportCase) (*server.MockServer, *client.Client) {
	t.Helper()

	listen, host, port := tc.endpoint(t)
	s := server.NewMockServer(
		common.ServerConfig{Endpoint: listen, LogLevel: "error"},
		tc.server(),
		serializer.NewJSONSerializer(),
	)

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()
	require.Eventually(t, func() bool { return s.Addr() != "" }, 5*time.Second, 10*time.Millisecond)

	config := common.NewClientConfig(host, port, 1000, "test-caller")
	c, err := client.NewClient(config, tc.connector(), serializer.NewJSONSerializer())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		_ = s.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return s, c
}

func forEachTransport(t *testing.T, fn func(t *testing.T, s *server.MockServer, c *client.Client)) {
	for _, tc := range transportCases {
		t.Run(tc.name, func(t *testing.T) {
			s, c := startServer(t, tc)
			fn(t, s, c)
		})
	}
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

func TestPing(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		result, err := c.Ping(client.PingParams{}, 0)
		require.NoError(t, err)
		assert.Contains(t, result, "timestamp")
		assert.Equal(t, uint64(1), s.Requests())
	})
}

func TestConnectionIsReused(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		for i := 0; i < 5; i++ {
			_, err := c.Ping(client.PingParams{}, 0)
			require.NoError(t, err)
		}

		stats := c.PoolStats()
		assert.Equal(t, uint64(1), stats[common.ChannelConfig].Opened)
		assert.Equal(t, 1, stats[common.ChannelConfig].Idle)
		assert.Equal(t, uint64(0), stats[common.ChannelCommand].Opened)
	})
}

func TestTaskLifecycle(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		started, err := c.StartObjectDetectionTask(client.StartObjectDetectionTaskParams{
			SystemState: &common.SystemState{SensorName: "camera-1"},
		}, 0)
		require.NoError(t, err)
		taskID, ok := started["taskId"].(string)
		require.True(t, ok)
		require.NotEmpty(t, taskID)

		state, err := c.GetTaskStateService(client.GetTaskStateServiceParams{TaskID: taskID}, 0)
		require.NoError(t, err)
		assert.Equal(t, "Active", state["taskStatus"])

		stopped, err := c.StopTask(client.StopTaskParams{TaskID: taskID}, 0)
		require.NoError(t, err)
		assert.Equal(t, true, stopped["isStopped"])

		state, err = c.GetTaskStateService(client.GetTaskStateServiceParams{TaskID: taskID}, 0)
		require.NoError(t, err)
		assert.Equal(t, "Stopped", state["taskStatus"])

		resumed, err := c.ResumeTask(client.ResumeTaskParams{TaskIDs: []string{taskID}}, 0)
		require.NoError(t, err)
		assert.Equal(t, []any{taskID}, resumed["taskIds"])

		published, err := c.GetPublishedStateService(client.GetPublishedStateServiceParams{}, 0)
		require.NoError(t, err)
		assert.Equal(t, server.Version, published["version"])
		assert.Len(t, published["tasks"], 1)
	})
}

func TestUnknownTaskIsNotStarted(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		state, err := c.GetTaskStateService(client.GetTaskStateServiceParams{TaskID: "missing"}, 0)
		require.NoError(t, err)
		assert.Equal(t, "NotStarted", state["taskStatus"])
	})
}

func TestRemoteError(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		s.Handle("Fail", func(*common.RequestEnvelope) (any, error) {
			return nil, &server.CommandError{Code: "busy", Description: "Vision is busy: try again"}
		})

		_, err := c.SendAndReceiveCommand("Fail", nil, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnexpectedReturnData)

		var ce *common.ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Vision is busy: try again", ce.Message)
		assert.Equal(t, "busy", ce.RemoteCode)

		// the connection is still usable after an error reply
		_, err = c.Ping(client.PingParams{}, 0)
		require.NoError(t, err)
	})
}

func TestUnknownCommand(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		_, err := c.SendAndReceiveConfig("DoesNotExist", map[string]any{"a": 1}, 1)
		require.Error(t, err)

		var ce *common.ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, common.ErrCodeUnexpectedReturnData, ce.Code)
		assert.Equal(t, server.ErrCodeUnknownCommand, ce.RemoteCode)
	})
}

func TestInvalidParameter(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		_, err := c.SendAndReceiveConfig("SetLogLevel", map[string]any{"componentLevels": "debug"}, 1)
		require.Error(t, err)

		var ce *common.ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, server.ErrCodeInvalidParameter, ce.RemoteCode)

		_, err = c.SetLogLevel(client.SetLogLevelParams{ComponentLevels: map[string]string{"vision": "debug"}}, 0)
		require.NoError(t, err)
	})
}

func TestTimeoutDiscardsConnection(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		release := make(chan struct{})
		s.Handle("Slow", func(*common.RequestEnvelope) (any, error) {
			<-release
			return "late", nil
		})
		defer close(release)

		_, err := c.SendAndReceiveCommand("Slow", nil, 0.1)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrCallTimeout)

		stats := c.PoolStats()
		assert.Equal(t, 0, stats[common.ChannelCommand].Idle)
		assert.Equal(t, 0, stats[common.ChannelCommand].Loaned)
	})
}

func TestChannelsAreIndependent(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		release := make(chan struct{})
		s.Handle("Block", func(*common.RequestEnvelope) (any, error) {
			<-release
			return map[string]any{}, nil
		})

		done := make(chan error, 1)
		go func() {
			_, err := c.SendAndReceiveCommand("Block", nil, 5)
			done <- err
		}()

		// the config channel answers while the command channel is busy
		require.Eventually(t, func() bool { return s.Requests() >= 1 }, 5*time.Second, 10*time.Millisecond)
		_, err := c.Ping(client.PingParams{}, 0)
		require.NoError(t, err)

		close(release)
		require.NoError(t, <-done)
	})
}

func TestQuit(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		_, err := c.Quit(client.QuitParams{}, 0)
		require.NoError(t, err)

		select {
		case <-s.QuitRequested():
		case <-time.After(time.Second):
			t.Fatal("quit was not requested")
		}
	})
}

func TestFireAndForget(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		received := make(chan map[string]any, 1)
		s.Handle("StopTask", func(req *common.RequestEnvelope) (any, error) {
			received <- req.Parameters
			return map[string]any{"isStopped": true}, nil
		})

		err := c.StopTaskFireAndForget(client.StopTaskParams{TaskType: "objectDetection"}, 0)
		require.NoError(t, err)

		select {
		case params := <-received:
			assert.Equal(t, "objectDetection", params["taskType"])
		case <-time.After(5 * time.Second):
			t.Fatal("request was not received")
		}
		assert.Equal(t, 0, c.PoolStats()[common.ChannelCommand].Idle)
	})
}

func TestCallerIDIsSent(t *testing.T) {
	forEachTransport(t, func(t *testing.T, s *server.MockServer, c *client.Client) {
		s.Handle("WhoAmI", func(req *common.RequestEnvelope) (any, error) {
			return req.CallerID, nil
		})

		result, err := c.SendAndReceiveConfig("WhoAmI", nil, 1)
		require.NoError(t, err)
		assert.Equal(t, "test-caller", result)

		c.SetCallerID("other")
		result, err = c.SendAndReceiveConfig("WhoAmI", nil, 1)
		require.NoError(t, err)
		assert.Equal(t, "other", result)
	})
}

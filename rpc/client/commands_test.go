package client

import (
	"testing"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastRequest returns the last request sent over the newest connection
func lastRequest(t *testing.T, connector *fakeConnector) common.RequestEnvelope {
	t.Helper()
	require.GreaterOrEqual(t, connector.opened(), 1)
	conn := connector.conn(connector.opened() - 1)
	conn.mu.Lock()
	defer conn.mu.Unlock()
	require.NotEmpty(t, conn.requests)
	return conn.requests[len(conn.requests)-1]
}

func TestCommandsTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, info := range Commands {
		assert.False(t, seen[info.Name], "duplicate command %s", info.Name)
		seen[info.Name] = true
		assert.NotEmpty(t, info.Command)
		assert.Greater(t, info.TimeoutSeconds, 0.0)
		assert.Contains(t, []string{"object", "string"}, info.Returns)
	}
	assert.Len(t, Commands, 16)
}

func TestLookupCommand(t *testing.T) {
	info, ok := LookupCommand("BackupVisionLog")
	require.True(t, ok)
	assert.Equal(t, "BackupDetectionLogs", info.Command)
	assert.Equal(t, common.ChannelCommand, info.Channel)
	assert.True(t, info.FireAndForget)

	info, ok = LookupCommand("GetTaskState")
	require.True(t, ok)
	assert.Equal(t, "GetTaskStateService", info.Name)
	assert.Equal(t, common.ChannelConfig, info.Channel)
	assert.Equal(t, DefaultTimeoutGetTaskStateService, info.TimeoutSeconds)

	_, ok = LookupCommand("Unknown")
	assert.False(t, ok)
}

func TestFacadeChannelsAndNames(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{}}`))

	_, err := c.Ping(PingParams{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ping", lastRequest(t, connector).Command)
	assert.Equal(t, uint64(1), c.PoolStats()[common.ChannelConfig].Opened)

	_, err = c.GetPublishedStateService(GetPublishedStateServiceParams{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "GetPublishedState", lastRequest(t, connector).Command)

	_, err = c.BackupVisionLog(BackupVisionLogParams{CycleIndex: "c1"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "BackupDetectionLogs", lastRequest(t, connector).Command)
	assert.Equal(t, uint64(1), c.PoolStats()[common.ChannelCommand].Opened)
}

func TestFacadeDefaultTimeout(t *testing.T) {
	var deadline time.Time
	c, _ := newTestClient(t, func(_ common.RequestEnvelope, d time.Time) ([]byte, error) {
		deadline = d
		return []byte(`{"result":{}}`), nil
	})

	start := time.Now()
	_, err := c.GetTaskStateService(GetTaskStateServiceParams{}, 0)
	require.NoError(t, err)
	assert.WithinDuration(t, start.Add(4*time.Second), deadline, 200*time.Millisecond)

	start = time.Now()
	_, err = c.Ping(PingParams{}, 0.5)
	require.NoError(t, err)
	assert.WithinDuration(t, start.Add(500*time.Millisecond), deadline, 200*time.Millisecond)
}

func TestFacadeNegativeTimeout(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{}}`))

	_, err := c.Ping(PingParams{}, -1)
	assert.ErrorIs(t, err, common.ErrCallTimeout)
	assert.Equal(t, int32(0), connector.receives.Load())
}

func TestFacadeParameters(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{"isStopped":true}}`))

	wait := false
	result, err := c.StopTask(StopTaskParams{
		TaskIDs:     []string{"a", "b"},
		TaskType:    "objectDetection",
		WaitForStop: &wait,
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, true, result["isStopped"])

	// json decoding in the fake turns lists into []any
	assert.Equal(t, map[string]any{
		"taskIds":     []any{"a", "b"},
		"taskType":    "objectDetection",
		"waitForStop": false,
	}, lastRequest(t, connector).Parameters)
}

func TestFacadeSystemState(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{"taskId":"t"}}`))

	_, err := c.StartContainerDetectionTask(StartContainerDetectionTaskParams{
		SystemState:          &common.SystemState{SensorName: "cam", PartType: "box"},
		VisionTaskParameters: map[string]any{"threshold": 0.5},
	}, 0)
	require.NoError(t, err)

	params := lastRequest(t, connector).Parameters
	assert.Equal(t, map[string]any{"sensorName": "cam", "partType": "box"}, params["systemState"])
	assert.Equal(t, map[string]any{"threshold": 0.5}, params["visionTaskParameters"])
	assert.NotContains(t, params, "taskId")
}

func TestFacadeRequiredParameter(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{}}`))

	_, err := c.BackupVisionLog(BackupVisionLogParams{}, 0)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = c.SetLogLevel(SetLogLevelParams{}, 0)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	err = c.BackupVisionLogFireAndForget(BackupVisionLogParams{}, 0)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	// nothing is sent for invalid parameters
	assert.Equal(t, 0, connector.opened())
}

func TestFacadeFractionalTimestamps(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{}}`))

	_, err := c.BackupVisionLog(BackupVisionLogParams{
		CycleIndex:       "c1",
		SensorTimestamps: []float64{1700000000123.5, 1700000000124},
	}, 0)
	require.NoError(t, err)

	params := lastRequest(t, connector).Parameters
	assert.Equal(t, []any{1700000000123.5, float64(1700000000124)}, params["sensorTimestamps"])
}

func TestFacadeStringResult(t *testing.T) {
	c, _ := newTestClient(t, replyWith(`{"result":"\u0001\u0002raw"}`))

	data, err := c.GetDetectionHistory(GetDetectionHistoryParams{Timestamp: 1700000000000}, 0)
	require.NoError(t, err)
	assert.Equal(t, "\x01\x02raw", data)
}

func TestFacadeWrongResultType(t *testing.T) {
	c, _ := newTestClient(t, replyWith(`{"result":"text"}`))

	_, err := c.Ping(PingParams{}, 0)
	assert.ErrorIs(t, err, common.ErrInvalidZMQResponse)

	_, err = c.GetLatestDetectionResultImages(GetLatestDetectionResultImagesParams{}, 0)
	require.NoError(t, err)
}

func TestFacadeFireAndForget(t *testing.T) {
	c, connector := newTestClient(t, replyWith(`{"result":{}}`))

	err := c.ResumeTaskFireAndForget(ResumeTaskParams{TaskType: "objectDetection"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "ResumeTask", lastRequest(t, connector).Command)
	assert.Equal(t, int32(0), connector.receives.Load())
}

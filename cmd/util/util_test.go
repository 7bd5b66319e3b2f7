package util

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	wrapped := WrapString(strings.Repeat("word ", 30))
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
}

func TestParseJSONObject(t *testing.T) {
	m, err := ParseJSONObject(`{"taskId":"t1","limit":3}`)
	require.NoError(t, err)
	assert.Equal(t, "t1", m["taskId"])
	assert.Equal(t, json.Number("3"), m["limit"])

	m, err = ParseJSONObject("  ")
	require.NoError(t, err)
	assert.Empty(t, m)

	m, err = ParseJSONObject("null")
	require.NoError(t, err)
	assert.NotNil(t, m)

	_, err = ParseJSONObject(`[1,2]`)
	assert.Error(t, err)
}

func TestGetClientConnector(t *testing.T) {
	for _, name := range []string{"zmq", "tcp", "unix"} {
		connector, err := GetClientConnector(name)
		require.NoError(t, err)
		assert.Equal(t, name, connector.GetName())
	}

	_, err := GetClientConnector("http")
	assert.Error(t, err)
}

func TestGetClientConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test"}
	SetupRPCClientFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--host", "10.0.0.5", "--port", "6000", "--transport", "tcp"}))
	require.NoError(t, BindCommandFlags(cmd))

	config := GetClientConfig()
	assert.Equal(t, common.Endpoint{Host: "10.0.0.5", Port: 6000}, config.Endpoint)
	assert.Equal(t, uint64(common.DefaultTimeoutMS), config.DefaultTimeoutMS)
	assert.Equal(t, "tcp", config.Transport.Name)
	assert.Equal(t, 512*1024, config.Transport.WriteBufferSize)
	assert.True(t, strings.HasPrefix(config.CallerID, "vcc-"))
}

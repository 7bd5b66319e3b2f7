package unix

import (
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T, path string) net.Listener {
	t.Helper()
	l, err := (&serverConnector{}).Listen(common.ServerConfig{Endpoint: path})
	require.NoError(t, err)
	return l
}

func TestListenCreatesSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "vc.sock")

	l := listen(t, "unix://"+path)
	info, err := os.Lstat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSocket)
	assert.Equal(t, socketMode, info.Mode().Perm())

	require.NoError(t, l.Close())
	_, err = os.Lstat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vc.sock")

	stale, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	require.NoError(t, err)
	stale.SetUnlinkOnClose(false)
	require.NoError(t, stale.Close())

	l := listen(t, path)
	defer l.Close()

	conn, err := (&clientConnector{}).Connect(common.Endpoint{Host: path, Port: 1}, time.Second)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestListenKeepsOtherFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vc.sock")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	_, err := (&serverConnector{}).Listen(common.ServerConfig{Endpoint: path})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestListenEmptyEndpoint(t *testing.T) {
	_, err := (&serverConnector{}).Listen(common.ServerConfig{Endpoint: "unix://"})
	assert.Error(t, err)
}

func TestSocketPath(t *testing.T) {
	assert.Equal(t, "/tmp/vc.sock", SocketPath("unix:///tmp/vc.sock"))
	assert.Equal(t, "/tmp/vc.sock", SocketPath(" /tmp/vc.sock "))
	assert.Equal(t, "vc.sock", SocketPath("vc.sock"))
}

package base

import (
	"bytes"
	"encoding/binary"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	testCases := []struct {
		name      string
		requestID uint64
		data      []byte
		buf       []byte
	}{
		{name: "empty", requestID: 1, data: []byte{}},
		{name: "small", requestID: 42, data: []byte(`{"command":"Ping"}`)},
		{name: "large id", requestID: ^uint64(0), data: []byte("x")},
		{name: "buffer too small", requestID: 7, data: bytes.Repeat([]byte("y"), 4096), buf: make([]byte, 16)},
		{name: "buffer large enough", requestID: 8, data: bytes.Repeat([]byte("z"), 100), buf: make([]byte, 1024)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := net.Pipe()
			defer client.Close()
			defer server.Close()

			errCh := make(chan error, 1)
			go func() { errCh <- writeFrame(client, tc.requestID, tc.data) }()

			id, data, err := readFrame(server, tc.buf)
			require.NoError(t, err)
			require.NoError(t, <-errCh)
			assert.Equal(t, tc.requestID, id)
			assert.Equal(t, tc.data, data)
		})
	}
}

func TestReadFrameTruncated(t *testing.T) {
	var b bytes.Buffer
	header := make([]byte, headerSize)
	binary.BigEndian.PutUint64(header[:8], 1)
	binary.BigEndian.PutUint32(header[8:], 10)
	b.Write(header)
	b.WriteString("short")

	_, _, err := readFrame(&b, nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFrameTooLarge(t *testing.T) {
	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[8:], maxFrameSize+1)

	_, _, err := readFrame(bytes.NewReader(header), nil)
	assert.Error(t, err)
}

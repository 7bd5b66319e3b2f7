package transport

import (
	"errors"
	"testing"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// releaseTwice releases a buffer one time too many and returns the assertion
func releaseTwice(b *SendBuffer) (err error) {
	defer common.RecoverAssertion(&err)
	b.Release()
	b.Release()
	return nil
}

func TestBufferPoolGetIsEmpty(t *testing.T) {
	pool := NewBufferPool(0)

	b := pool.Get()
	b.WriteString("hello")
	b.Release()

	b = pool.Get()
	assert.Equal(t, 0, b.Len())
	b.Release()
}

func TestBufferRetainRelease(t *testing.T) {
	pool := NewBufferPool(0)

	b := pool.Get()
	b.Retain()
	b.Release()
	// still referenced, content is kept
	b.WriteString("x")
	assert.Equal(t, "x", b.String())
	b.Release()
}

func TestBufferReleasedOnce(t *testing.T) {
	pool := NewBufferPool(0)

	err := releaseTwice(pool.Get())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAssert))
	assert.Contains(t, err.Error(), "send buffer released more than once")
}

func TestBufferPoolDropsLargeBuffers(t *testing.T) {
	pool := NewBufferPool(16)

	b := pool.Get()
	b.Write(make([]byte, 1024))
	// must not panic and must not be retained
	b.Release()
	assert.LessOrEqual(t, pool.Get().Cap(), 16*1024)
}

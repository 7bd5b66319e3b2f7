package transport

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/ValentinKolb/vcc/rpc/common"
)

const (
	// defaultBufferSize is the initial capacity of new send buffers
	defaultBufferSize = 4 * 1024 // 4 KB
	// DefaultMaxRetainedBufferSize is the largest buffer returned to the pool
	DefaultMaxRetainedBufferSize = 1024 * 1024 // 1 MB
)

// SendBuffer holds an encoded request until the transport is done with it.
// It is reference counted and goes back to its BufferPool when the last
// reference is released
type SendBuffer struct {
	bytes.Buffer
	owner *BufferPool
	refs  atomic.Int32
}

// Retain adds a reference to the buffer
func (b *SendBuffer) Retain() *SendBuffer {
	common.AssertMsg(b.refs.Add(1) > 1, "b.refs.Add(1) > 1", "retain of a released send buffer")
	return b
}

// Release drops a reference. The buffer is returned to its pool exactly once,
// when the last reference is released. Releasing more often than retained is an
// assertion failure
func (b *SendBuffer) Release() {
	refs := b.refs.Add(-1)
	common.AssertMsg(refs >= 0, "refs >= 0", "send buffer released more than once")
	if refs == 0 {
		b.owner.put(b)
	}
}

// BufferPool recycles send buffers
type BufferPool struct {
	pool        sync.Pool
	maxRetained int
}

// NewBufferPool creates a pool that drops buffers that grew beyond maxRetained bytes
func NewBufferPool(maxRetained int) *BufferPool {
	if maxRetained <= 0 {
		maxRetained = DefaultMaxRetainedBufferSize
	}
	p := &BufferPool{maxRetained: maxRetained}
	p.pool.New = func() interface{} {
		b := &SendBuffer{owner: p}
		b.Grow(defaultBufferSize)
		return b
	}
	return p
}

// Get returns an empty buffer holding one reference
func (p *BufferPool) Get() *SendBuffer {
	b := p.pool.Get().(*SendBuffer)
	b.refs.Store(1)
	return b
}

func (p *BufferPool) put(b *SendBuffer) {
	if b.Cap() > p.maxRetained {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

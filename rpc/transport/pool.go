package transport

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("transport/pool")

// -----------------------------------------------------------
// Token
// -----------------------------------------------------------

// Token identifies a connection loaned from a SocketPool.
// The pool owns the connection, callers only ever hold the token. A token whose
// generation no longer matches its slot is stale and rejected
type Token struct {
	channel    common.Channel
	index      uint32
	generation uint64
}

// Channel returns the channel the token was acquired for
func (t Token) Channel() common.Channel {
	return t.channel
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

type slotState uint8

const (
	slotFree slotState = iota
	slotIdle
	slotLoaned
)

// slot is one entry of a channel arena
type slot struct {
	conn       IConnection
	epoch      uint64 // endpoint epoch the connection was opened against
	generation uint64
	state      slotState
}

// channelPool holds the connections of one channel.
// mu is held only across slot bookkeeping, never across I/O
type channelPool struct {
	mu    sync.Mutex
	slots []slot
	idle  int // index of the idle slot, -1 if none
}

// PoolStats is a snapshot of one channel of the pool
type PoolStats struct {
	Channel common.Channel
	Loaned  int
	Idle    int
	Opened  uint64
}

// SocketPool manages the connections of both channels to a single endpoint.
// Each channel keeps at most one idle connection. Changing the endpoint bumps the
// epoch, which invalidates every connection opened before
type SocketPool struct {
	connector IClientConnector

	stateMu  sync.RWMutex // protects endpoint and config
	endpoint common.Endpoint
	config   common.ClientConfig

	epoch  atomic.Uint64
	closed atomic.Bool
	opened [len(common.Channels)]atomic.Uint64

	channels [len(common.Channels)]*channelPool
}

// NewSocketPool creates a new pool. No connection is opened until the first Acquire
func NewSocketPool(connector IClientConnector, config common.ClientConfig) *SocketPool {
	p := &SocketPool{
		connector: connector,
		endpoint:  config.Endpoint,
		config:    config,
	}
	for i := range p.channels {
		p.channels[i] = &channelPool{idle: -1}
	}
	return p
}

// --------------------------------------------------------------------------
// Pool Methods
// --------------------------------------------------------------------------

// Acquire loans a connection for the channel. The idle connection is reused if it
// was opened against the current endpoint, otherwise a new one is opened.
// It fails with InvalidArgument if no endpoint is configured or the pool is closed
func (p *SocketPool) Acquire(ch common.Channel) (Token, error) {
	cp, err := p.channel(ch)
	if err != nil {
		return Token{}, err
	}

	p.stateMu.RLock()
	endpoint, config, epoch := p.endpoint, p.config, p.epoch.Load()
	p.stateMu.RUnlock()

	if p.closed.Load() {
		return Token{}, common.NewClientError(common.ErrCodeInvalidArgument, nil, "socket pool is closed")
	}
	if err := endpoint.Validate(); err != nil {
		return Token{}, err
	}

	// try the idle connection first
	var stale IConnection
	cp.mu.Lock()
	if cp.idle >= 0 {
		index := cp.idle
		s := &cp.slots[index]
		cp.idle = -1
		if s.epoch == epoch {
			s.state = slotLoaned
			tok := Token{channel: ch, index: uint32(index), generation: s.generation}
			cp.mu.Unlock()
			return tok, nil
		}
		stale = s.conn
		cp.free(index)
	}
	cp.mu.Unlock()

	if stale != nil {
		Logger.Debugf("Closing idle %s connection of an old endpoint", ch)
		_ = stale.Close()
	}

	// open a new connection, this does not block
	conn := p.connector.Open(endpoint, config)
	p.opened[ch].Add(1)

	cp.mu.Lock()
	index := cp.alloc(conn, epoch)
	tok := Token{channel: ch, index: uint32(index), generation: cp.slots[index].generation}
	cp.mu.Unlock()

	Logger.Debugf("Opened new %s connection to %s using %s transport", ch, endpoint, p.connector.GetName())
	return tok, nil
}

// Release returns a loaned connection. The connection is kept as the idle connection
// of the channel only if it is healthy, belongs to the current endpoint and no other
// connection is idle. Otherwise it is closed. Releasing a stale token is a no-op
func (p *SocketPool) Release(tok Token, healthy bool) {
	cp, err := p.channel(tok.channel)
	if err != nil {
		return
	}

	cp.mu.Lock()
	s, ok := cp.loaned(tok)
	if !ok {
		cp.mu.Unlock()
		Logger.Warningf("Ignoring release of stale %s token", tok.channel)
		return
	}

	if healthy && !p.closed.Load() && s.epoch == p.epoch.Load() && cp.idle < 0 {
		s.state = slotIdle
		cp.idle = int(tok.index)
		cp.mu.Unlock()
		return
	}

	conn := s.conn
	cp.free(int(tok.index))
	cp.mu.Unlock()

	_ = conn.Close()
}

// Send writes a frame on the loaned connection
func (p *SocketPool) Send(tok Token, frame []byte, deadline time.Time) error {
	conn, err := p.lookup(tok)
	if err != nil {
		return err
	}
	return conn.Send(frame, deadline)
}

// SendBuffer writes the content of buf on the loaned connection. The pool holds
// its own reference to buf until the connection reports the write as complete,
// so the caller may release its reference at any time
func (p *SocketPool) SendBuffer(tok Token, buf *SendBuffer, deadline time.Time) error {
	buf.Retain()
	defer buf.Release()
	return p.Send(tok, buf.Bytes(), deadline)
}

// Receive waits for the reply on the loaned connection
func (p *SocketPool) Receive(tok Token, deadline time.Time) ([]byte, error) {
	conn, err := p.lookup(tok)
	if err != nil {
		return nil, err
	}
	return conn.Receive(deadline)
}

// SetEndpoint changes the endpoint and invalidates all connections
func (p *SocketPool) SetEndpoint(endpoint common.Endpoint) error {
	if err := endpoint.Validate(); err != nil {
		return err
	}

	p.stateMu.Lock()
	p.endpoint = endpoint
	p.config.Endpoint = endpoint
	p.epoch.Add(1)
	p.stateMu.Unlock()

	p.closeIdle()
	Logger.Infof("Endpoint changed to %s", endpoint)
	return nil
}

// Endpoint returns the current endpoint
func (p *SocketPool) Endpoint() common.Endpoint {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.endpoint
}

// InvalidateAll marks every connection as stale. Idle connections are closed
// immediately, loaned connections when they are released
func (p *SocketPool) InvalidateAll() {
	p.stateMu.Lock()
	p.epoch.Add(1)
	p.stateMu.Unlock()

	p.closeIdle()
}

// Close closes all connections, including loaned ones. Subsequent calls to
// Acquire fail, loaned tokens can still be released
func (p *SocketPool) Close() error {
	if p.closed.Swap(true) {
		return nil
	}

	var conns []IConnection
	for _, cp := range p.channels {
		cp.mu.Lock()
		for i := range cp.slots {
			s := &cp.slots[i]
			switch s.state {
			case slotIdle:
				conns = append(conns, s.conn)
				cp.free(i)
			case slotLoaned:
				// freed on release
				conns = append(conns, s.conn)
			}
		}
		cp.idle = -1
		cp.mu.Unlock()
	}

	for _, conn := range conns {
		_ = conn.Close()
	}
	return nil
}

// Stats returns a snapshot of every channel
func (p *SocketPool) Stats() []PoolStats {
	stats := make([]PoolStats, 0, len(p.channels))
	for _, ch := range common.Channels {
		cp := p.channels[ch]
		st := PoolStats{Channel: ch, Opened: p.opened[ch].Load()}
		cp.mu.Lock()
		for _, s := range cp.slots {
			switch s.state {
			case slotIdle:
				st.Idle++
			case slotLoaned:
				st.Loaned++
			}
		}
		cp.mu.Unlock()
		stats = append(stats, st)
	}
	return stats
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (p *SocketPool) channel(ch common.Channel) (*channelPool, error) {
	if int(ch) >= len(p.channels) {
		return nil, common.NewClientError(common.ErrCodeInvalidArgument, nil, "unknown channel %s", ch)
	}
	return p.channels[ch], nil
}

// lookup returns the connection of a loaned token
func (p *SocketPool) lookup(tok Token) (IConnection, error) {
	cp, err := p.channel(tok.channel)
	if err != nil {
		return nil, err
	}

	cp.mu.Lock()
	defer cp.mu.Unlock()
	s, ok := cp.loaned(tok)
	if !ok {
		return nil, common.NewClientError(common.ErrCodeInvalidArgument, nil, "stale %s connection token", tok.channel)
	}
	return s.conn, nil
}

// closeIdle closes idle connections of an old epoch
func (p *SocketPool) closeIdle() {
	epoch := p.epoch.Load()

	var conns []IConnection
	for _, cp := range p.channels {
		cp.mu.Lock()
		if cp.idle >= 0 && cp.slots[cp.idle].epoch != epoch {
			conns = append(conns, cp.slots[cp.idle].conn)
			cp.free(cp.idle)
			cp.idle = -1
		}
		cp.mu.Unlock()
	}

	for _, conn := range conns {
		_ = conn.Close()
	}
}

// loaned returns the slot of a loaned token, cp.mu must be held
func (cp *channelPool) loaned(tok Token) (*slot, bool) {
	if int(tok.index) >= len(cp.slots) {
		return nil, false
	}
	s := &cp.slots[tok.index]
	if s.state != slotLoaned || s.generation != tok.generation {
		return nil, false
	}
	return s, true
}

// alloc stores conn in a free slot and returns its index, cp.mu must be held
func (cp *channelPool) alloc(conn IConnection, epoch uint64) int {
	index := -1
	for i := range cp.slots {
		if cp.slots[i].state == slotFree {
			index = i
			break
		}
	}
	if index < 0 {
		cp.slots = append(cp.slots, slot{})
		index = len(cp.slots) - 1
	}

	s := &cp.slots[index]
	s.conn = conn
	s.epoch = epoch
	s.generation++
	s.state = slotLoaned
	return index
}

// free marks a slot as free, cp.mu must be held
func (cp *channelPool) free(index int) {
	s := &cp.slots[index]
	s.conn = nil
	s.state = slotFree
}

package hub

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorderConn struct {
	mu      sync.Mutex
	sent    []envelope
	sendErr error
	closed  bool
}

func (c *recorderConn) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, v.(envelope))
	return nil
}

func (c *recorderConn) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *recorderConn) events() []envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]envelope, len(c.sent))
	copy(out, c.sent)
	return out
}

func TestHub_EmitReachesAllUserConnections(t *testing.T) {
	h := New()

	first := &recorderConn{}
	second := &recorderConn{}
	other := &recorderConn{}
	h.register(1, first)
	h.register(1, second)
	h.register(2, other)

	h.Emit(1, "newMessage", map[string]int{"id": 7})

	require.Len(t, first.events(), 1)
	require.Len(t, second.events(), 1)
	require.Empty(t, other.events())
	require.Equal(t, "newMessage", first.events()[0].Event)
}

func TestHub_EmitToOfflineUserIsNoop(t *testing.T) {
	h := New()
	h.Emit(99, "newMessage", nil)
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	h := New()

	c := &recorderConn{}
	id := h.register(1, c)
	h.unregister(1, id)

	h.Emit(1, "newMessage", nil)
	require.Empty(t, c.events())
	require.Empty(t, h.OnlineUserIDs())
}

func TestHub_OnlineUserIDs(t *testing.T) {
	h := New()

	h.register(1, &recorderConn{})
	h.register(1, &recorderConn{})
	h.register(2, &recorderConn{})

	ids := h.OnlineUserIDs()
	require.Len(t, ids, 2)
	require.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestHub_FailedSendClosesConnection(t *testing.T) {
	h := New()

	broken := &recorderConn{sendErr: errors.New("pipe closed")}
	h.register(1, broken)

	h.Emit(1, "newMessage", nil)
	require.True(t, broken.closed)
}

func TestHub_BroadcastOnline(t *testing.T) {
	h := New()

	a := &recorderConn{}
	b := &recorderConn{}
	h.register(1, a)
	h.register(2, b)

	h.broadcastOnline()

	require.Len(t, a.events(), 1)
	require.Equal(t, EventOnlineUsers, a.events()[0].Event)
	require.Len(t, b.events(), 1)
}

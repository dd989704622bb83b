package ws

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := newTestHub()

	connA := NewConn(&websocket.Conn{})
	connB := NewConn(&websocket.Conn{})

	assert.Equal(t, 0, hub.ConnectionCount(7))

	hub.Register(7, connA)
	hub.Register(7, connB)
	assert.Equal(t, 2, hub.ConnectionCount(7))

	// Registering the same connection twice must not double-count.
	hub.Register(7, connA)
	assert.Equal(t, 2, hub.ConnectionCount(7))

	hub.Unregister(7, connA)
	assert.Equal(t, 1, hub.ConnectionCount(7))

	hub.Unregister(7, connB)
	assert.Equal(t, 0, hub.ConnectionCount(7))

	// Unregistering an unknown connection is a no-op.
	hub.Unregister(7, connA)
	assert.Equal(t, 0, hub.ConnectionCount(7))
}

func TestHub_SendToUser_UnknownUser(t *testing.T) {
	hub := newTestHub()

	// No connections registered; must not panic or block.
	hub.SendToUser(99, map[string]string{"type": "receive-message"})
}

func relayTestServer(t *testing.T, hub *Hub, userID int64) string {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		hub.Register(userID, NewConn(socket))
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestHub_SendToUser_RelaysToAllConnections(t *testing.T) {
	hub := newTestHub()
	wsURL := relayTestServer(t, hub, 7)

	dial := func() *websocket.Conn {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })

		return conn
	}

	first := dial()
	second := dial()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(7) == 2
	}, time.Second, 10*time.Millisecond)

	hub.SendToUser(7, map[string]string{"type": "receive-message", "text": "hello"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

		var payload map[string]string
		require.NoError(t, conn.ReadJSON(&payload))
		assert.Equal(t, "receive-message", payload["type"])
		assert.Equal(t, "hello", payload["text"])
	}
}

func TestHub_SendToUser_ConcurrentSenders(t *testing.T) {
	hub := newTestHub()
	wsURL := relayTestServer(t, hub, 7)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(7) == 1
	}, time.Second, 10*time.Millisecond)

	// Many senders fanning out to one connection; writes must serialize
	// so no frame is corrupted and no sender panics.
	const senders = 8
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			hub.SendToUser(7, map[string]string{
				"type": "receive-message",
				"text": fmt.Sprintf("message %d", i),
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	received := make(map[string]bool)
	for i := 0; i < senders; i++ {
		var payload map[string]string
		require.NoError(t, conn.ReadJSON(&payload))
		assert.Equal(t, "receive-message", payload["type"])
		received[payload["text"]] = true
	}
	assert.Len(t, received, senders)
	assert.Equal(t, 1, hub.ConnectionCount(7))
}

func TestHub_SendToUser_DropsDeadConnections(t *testing.T) {
	hub := newTestHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		hub.Register(7, NewConn(socket))
		// Kill the server side so the next write fails.
		socket.Close()
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(7) == 1
	}, time.Second, 10*time.Millisecond)

	hub.SendToUser(7, map[string]string{"type": "receive-message"})

	assert.Equal(t, 0, hub.ConnectionCount(7))
}

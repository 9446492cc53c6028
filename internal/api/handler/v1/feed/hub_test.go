package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.EventKind(r.URL.Query().Get("kind"))
		id, _ := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
		_ = hub.Serve(w, r, kind, uint(id))
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, kind domain.EventKind, id uint) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?kind=" + string(kind) + "&id=" + strconv.Itoa(int(id))
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readNotice(t *testing.T, conn *websocket.Conn) domain.AllocationNotice {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var n domain.AllocationNotice
	require.NoError(t, json.Unmarshal(raw, &n))
	return n
}

func TestHub_DeliversOnlyToSubscribersOfTheEvent(t *testing.T) {
	hub, srv := startHub(t)

	raffleConn := dial(t, srv, domain.KindRaffle, 1)
	walkConn := dial(t, srv, domain.KindWalk, 1)

	require.Eventually(t, func() bool {
		return hub.Subscribers(domain.KindRaffle, 1) == 1 && hub.Subscribers(domain.KindWalk, 1) == 1
	}, 5*time.Second, 10*time.Millisecond)

	hub.Broadcast(domain.AllocationNotice{Kind: domain.KindRaffle, EventID: 1, Slot: "ticket 1", Raised: 500, Remaining: 9})
	hub.Broadcast(domain.AllocationNotice{Kind: domain.KindWalk, EventID: 1, Slot: "bib 1", Raised: 1500, Remaining: 99})

	got := readNotice(t, raffleConn)
	assert.Equal(t, "ticket 1", got.Slot)
	assert.Equal(t, domain.Cents(500), got.Raised)
	assert.Equal(t, 9, got.Remaining)

	got = readNotice(t, walkConn)
	assert.Equal(t, domain.KindWalk, got.Kind)
	assert.Equal(t, "bib 1", got.Slot)
}

func TestHub_UnregistersClosedConnections(t *testing.T) {
	hub, srv := startHub(t)

	conn := dial(t, srv, domain.KindConcert, 7)
	require.Eventually(t, func() bool {
		return hub.Subscribers(domain.KindConcert, 7) == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return hub.Subscribers(domain.KindConcert, 7) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	// Run is not started: Broadcast must still return.
	for i := 0; i < broadcastBuffer+10; i++ {
		hub.Broadcast(domain.AllocationNotice{Kind: domain.KindDinner, EventID: 1})
	}
	assert.Equal(t, 0, hub.Subscribers(domain.KindDinner, 1))
}

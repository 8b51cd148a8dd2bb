package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/marianogappa/guinote/guinote"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func testSnapshot(t *testing.T) guinote.Snapshot {
	t.Helper()
	gs, err := guinote.New(guinote.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	return gs.Snapshot()
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewHub()))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", res.StatusCode)
	}
}

func TestSnapshotRoute(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before any snapshot, got %d", res.StatusCode)
	}

	snapshot := testSnapshot(t)
	hub.Publish(snapshot)

	res, err = http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", res.StatusCode)
	}
	bs, _ := io.ReadAll(res.Body)
	var got guinote.Snapshot
	if err := json.Unmarshal(bs, &got); err != nil {
		t.Fatal(err)
	}
	if got.RoundID != snapshot.RoundID || got.TrumpCard != snapshot.TrumpCard || len(got.PlayerHand) != len(snapshot.PlayerHand) {
		t.Errorf("Unexpected snapshot %s", bs)
	}

	res, err = http.Post(srv.URL+"/snapshot", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Spectators should not post, got %d", res.StatusCode)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) (int, []byte) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, bs, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Reading message: %v", err)
	}
	var msg WebsocketMessage
	if err := json.Unmarshal(bs, &msg); err != nil {
		t.Fatal(err)
	}
	return msg.GetType(), bs
}

func TestWebsocketSpectator(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	typ, bs := readMessage(t, conn)
	if typ != MessageTypeHello {
		t.Fatalf("Expected hello, got %s", bs)
	}
	var hello MessageHello
	_ = json.Unmarshal(bs, &hello)
	if id, _ := hello.Deserialize(); id == "" {
		t.Error("Expected a client ID")
	}

	snapshot := testSnapshot(t)
	hub.Publish(snapshot)

	typ, bs = readMessage(t, conn)
	if typ != MessageTypeHeresSnapshot {
		t.Fatalf("Expected a snapshot, got %s", bs)
	}
	var heres MessageHeresSnapshot
	if err := json.Unmarshal(bs, &heres); err != nil {
		t.Fatal(err)
	}
	got, err := heres.Deserialize()
	if err != nil {
		t.Fatal(err)
	}
	if got.RoundID != snapshot.RoundID {
		t.Errorf("Expected round %s, got %s", snapshot.RoundID, got.RoundID)
	}

	if err := conn.WriteJSON(NewMessageGimmeSnapshot()); err != nil {
		t.Fatal(err)
	}
	typ, bs = readMessage(t, conn)
	if typ != MessageTypeHeresSnapshot {
		t.Fatalf("Expected the snapshot again, got %s", bs)
	}
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Spectating is read-only, any origin may watch.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewRouter registers the spectator routes.
func NewRouter(hub *Hub) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}).Methods(http.MethodGet)
	r.HandleFunc("/snapshot", hub.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	return r
}

func (h *Hub) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	snapshot := h.Latest()
	if snapshot == nil {
		http.Error(w, `{"error":"no_snapshot"}`, http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write(snapshot)
}

// ServeWs upgrades a spectator's request and registers it with the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade connection")
		return
	}

	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		ID:   uuid.NewString(),
	}
	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Serve runs the hub and the spectator HTTP server until ctx is done.
func Serve(ctx context.Context, addr string, hub *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go hub.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("spectator server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

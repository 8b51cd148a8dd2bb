package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client is a spectator's websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	ID   string
}

// readPump handles incoming messages. Spectators can only ask for the latest snapshot.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, bs, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client", c.ID).Msg("unexpected close")
			}
			return
		}

		var msg WebsocketMessage
		if err := json.Unmarshal(bs, &msg); err != nil {
			log.Debug().Err(err).Str("client", c.ID).Msg("bad message")
			continue
		}
		if msg.GetType() == MessageTypeGimmeSnapshot {
			select {
			case c.hub.gimme <- c:
			case <-c.hub.done:
				return
			}
		}
	}
}

// writePump sends queued messages until the hub closes the channel.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Debug().Err(err).Str("client", c.ID).Msg("write error")
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

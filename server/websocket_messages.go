package server

import (
	"encoding/json"

	"github.com/marianogappa/guinote/guinote"
)

const (
	MessageTypeHello = iota
	MessageTypeHeresSnapshot
	MessageTypeGimmeSnapshot
)

type IWebsocketMessage[T any] interface {
	GetType() int
	Deserialize() (T, error)
}

type WebsocketMessage struct {
	Type int `json:"type"`
}

func (m WebsocketMessage) GetType() int {
	return m.Type
}

type MessageHello struct {
	WebsocketMessage
	ClientID string `json:"clientID"`
}

func NewMessageHello(clientID string) MessageHello {
	return MessageHello{WebsocketMessage: WebsocketMessage{Type: MessageTypeHello}, ClientID: clientID}
}

func (m MessageHello) Deserialize() (string, error) {
	return m.ClientID, nil
}

type MessageHeresSnapshot struct {
	WebsocketMessage
	Snapshot json.RawMessage `json:"snapshot"`
}

func NewMessageHeresSnapshot(snapshot guinote.Snapshot) (MessageHeresSnapshot, error) {
	bs, err := json.Marshal(snapshot)
	return MessageHeresSnapshot{WebsocketMessage: WebsocketMessage{Type: MessageTypeHeresSnapshot}, Snapshot: bs}, err
}

func (m MessageHeresSnapshot) Deserialize() (guinote.Snapshot, error) {
	var snapshot guinote.Snapshot
	err := json.Unmarshal(m.Snapshot, &snapshot)
	return snapshot, err
}

type MessageGimmeSnapshot struct {
	WebsocketMessage
}

func NewMessageGimmeSnapshot() MessageGimmeSnapshot {
	return MessageGimmeSnapshot{WebsocketMessage: WebsocketMessage{Type: MessageTypeGimmeSnapshot}}
}

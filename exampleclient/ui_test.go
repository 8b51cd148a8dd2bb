package exampleclient

import (
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/marianogappa/guinote/guinote"
)

func TestEventToAction(t *testing.T) {
	playing := guinote.Snapshot{
		Screen: guinote.SCREEN_PLAYING,
		PlayerHand: []guinote.HandCard{
			{Card: guinote.Card{Suit: guinote.ORO, Number: 1}},
			{Card: guinote.Card{Suit: guinote.ORO, Number: 2}, IsSelected: true},
			{Card: guinote.Card{Suit: guinote.ORO, Number: 3}},
		},
	}
	menu := guinote.Snapshot{Screen: guinote.SCREEN_MENU}

	tests := []struct {
		name     string
		event    termbox.Event
		snapshot guinote.Snapshot
		expected string
	}{
		{"q quits", termbox.Event{Type: termbox.EventKey, Ch: 'q'}, playing, "quit"},
		{"esc quits", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, menu, "quit"},
		{"digit selects", termbox.Event{Type: termbox.EventKey, Ch: '3'}, playing, "select card 2"},
		{"left moves cursor", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, playing, "select card 0"},
		{"right moves cursor", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, playing, "select card 2"},
		{"enter plays", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, playing, "play selected card"},
		{"enter advances from menu", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, menu, "advance screen"},
		{"x concedes", termbox.Event{Type: termbox.EventKey, Ch: 'x'}, playing, "concede"},
		{"resize", termbox.Event{Type: termbox.EventResize, Width: 30, Height: 100}, playing, "terminal resized to 30x100"},
		{"other keys do nothing", termbox.Event{Type: termbox.EventKey, Ch: 'z'}, playing, ""},
		{"mouse does nothing", termbox.Event{Type: termbox.EventMouse}, playing, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := eventToAction(tt.event, tt.snapshot)
			got := ""
			if action != nil {
				got = action.String()
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGetCardString(t *testing.T) {
	if s := getCardString(guinote.Card{Suit: guinote.COPA, Number: 12}); s != "[12🍷]" {
		t.Errorf("Unexpected card string %q", s)
	}
	if s := getCardString(guinote.Card{Suit: "corazon", Number: 1}); s != "[1❓]" {
		t.Errorf("Unexpected card string %q", s)
	}
}

func TestGetLastTrickString(t *testing.T) {
	if s := getLastTrickString(nil); s != "¡Empezó el reparto!" {
		t.Errorf("Unexpected string %q", s)
	}
	trick := &guinote.Trick{
		Lead:           guinote.Card{Suit: guinote.ESPADA, Number: 3},
		Follow:         guinote.Card{Suit: guinote.COPA, Number: 2},
		WinnerPlayerID: guinote.OPPONENT,
		Points:         10,
	}
	if s := getLastTrickString(trick); s != "El oponente ganó la baza [3🔪] [2🍷] (+10)" {
		t.Errorf("Unexpected string %q", s)
	}
}

func TestGetTableString(t *testing.T) {
	if s := getTableString(guinote.Snapshot{}); s != "vacía" {
		t.Errorf("Unexpected string %q", s)
	}
	card := guinote.Card{Suit: guinote.ORO, Number: 1}
	if s := getTableString(guinote.Snapshot{PlayerTableCard: &card}); s != "Vos [1💰]" {
		t.Errorf("Unexpected string %q", s)
	}
}

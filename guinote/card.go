package guinote

import (
	"fmt"
	"slices"
)

// Suit is one of the four Spanish deck suits.
type Suit string

const (
	ESPADA Suit = "espada"
	BASTO  Suit = "basto"
	COPA   Suit = "copa"
	ORO    Suit = "oro"
)

// Suits lists the four suits in deck order.
var Suits = []Suit{ESPADA, BASTO, COPA, ORO}

const (
	AS      = 1
	SOTA    = 10
	CABALLO = 11
	REY     = 12
)

// Numbers lists the ten card numbers of the Spanish 40-card deck (no 8s or 9s).
var Numbers = []int{AS, 2, 3, 4, 5, 6, 7, SOTA, CABALLO, REY}

// Card represents a Spanish deck card.
type Card struct {
	// Suit is the card's suit, which can be "espada", "basto", "copa" or "oro".
	Suit Suit `json:"suit"`

	// Number is the card's number: 1 to 7, then 10 (sota), 11 (caballo) and 12 (rey).
	Number int `json:"number"`
}

func (c Card) String() string {
	return fmt.Sprintf("%d de %s", c.Number, c.Suit)
}

// IsValid returns true if the card exists in a Guiñote deck.
func (c Card) IsValid() bool {
	switch c.Suit {
	case ESPADA, BASTO, COPA, ORO:
	default:
		return false
	}
	return c.KillPower() > 0
}

// PointValue returns what the card is worth when won in a trick.
func (c Card) PointValue() int {
	switch c.Number {
	case AS:
		return 11
	case 3:
		return 10
	case REY:
		return 4
	case CABALLO:
		return 3
	case SOTA:
		return 2
	default:
		return 0
	}
}

// KillPower returns the card's strength when deciding who wins a trick.
// It is unrelated to PointValue: a 7 has power but no points.
func (c Card) KillPower() int {
	switch c.Number {
	case AS:
		return 12
	case 3:
		return 11
	case REY:
		return 10
	case SOTA:
		return 9
	case CABALLO:
		return 8
	case 7, 6, 5, 4:
		return c.Number
	case 2:
		return 3
	default:
		return 0
	}
}

// IsTrump returns true if the card belongs to the trump suit.
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// Beats returns true if c wins a trick against other, given the suit that
// was led and the trump suit. For any two distinct cards and a led suit
// matching one of them, exactly one of a.Beats(b) and b.Beats(a) holds.
func (c Card) Beats(other Card, led Suit, trump Suit) bool {
	switch {
	case c.IsTrump(trump) && !other.IsTrump(trump):
		return true
	case other.IsTrump(trump) && !c.IsTrump(trump):
		return false
	case c.Suit == other.Suit:
		return c.KillPower() > other.KillPower()
	default:
		// Off suit and no trump: only the led card can win.
		return c.Suit == led
	}
}

// Hand represents a player's hand.
type Hand struct {
	Cards []Card `json:"cards"`
}

func (h *Hand) String() string {
	if h == nil || len(h.Cards) == 0 {
		return "empty hand"
	}
	result := "["
	for i, card := range h.Cards {
		if i > 0 {
			result += ", "
		}
		result += card.String()
	}
	result += "]"
	return result
}

func (h *Hand) validIndex(i int) error {
	if h == nil || i < 0 || i >= len(h.Cards) {
		return fmt.Errorf("%w: index %d", ErrInvalidSelection, i)
	}
	return nil
}

func (h *Hand) remove(i int) (Card, error) {
	if err := h.validIndex(i); err != nil {
		return Card{}, err
	}
	card := h.Cards[i]
	h.Cards = slices.Delete(h.Cards, i, i+1)
	return card, nil
}

func (h *Hand) hasSuit(s Suit) bool {
	for _, card := range h.Cards {
		if card.Suit == s {
			return true
		}
	}
	return false
}

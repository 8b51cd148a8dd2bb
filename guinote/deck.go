package guinote

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInsufficientCards is returned when a deal asks for more cards than the deck holds.
	ErrInsufficientCards = errors.New("insufficient cards in deck")

	// ErrEmptyDeck is returned when drawing from an exhausted stock.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrInvalidSelection is returned for a hand index out of range.
	ErrInvalidSelection = errors.New("invalid selection")
)

type deck struct {
	cards []Card
}

func makeSpanishCards() []Card {
	cards := make([]Card, 0, len(Suits)*len(Numbers))
	for _, suit := range Suits {
		for _, number := range Numbers {
			cards = append(cards, Card{Suit: suit, Number: number})
		}
	}
	return cards
}

// newDeck returns the 40 cards in a uniformly random order. rand.Shuffle is a
// Fisher-Yates shuffle, so a seeded rng always yields the same order.
func newDeck(rng *rand.Rand) *deck {
	cards := makeSpanishCards()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &deck{cards: cards}
}

func (d *deck) len() int {
	return len(d.cards)
}

// deal removes the first n cards. Nothing is removed on failure.
func (d *deck) deal(n int) (*Hand, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: asked for %d, %d left", ErrInsufficientCards, n, len(d.cards))
	}
	hand := &Hand{Cards: make([]Card, n)}
	copy(hand.Cards, d.cards[:n])
	d.cards = d.cards[n:]
	return hand, nil
}

func (d *deck) draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// bottom returns the last card of the stock, which is the one drawn last.
func (d *deck) bottom() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d.cards[len(d.cards)-1], nil
}

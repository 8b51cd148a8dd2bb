package guinote

import (
	"sort"
)

// Bot interface for choosing the opponent's actions
type Bot interface {
	ChooseAction(gameState GameState) Action
}

// SimpleBot plays legal cards without looking ahead
type SimpleBot struct{}

// NewBot creates a new simple bot
func NewBot() Bot {
	return &SimpleBot{}
}

// ChooseAction picks the cheapest card that wins the trick when following,
// and the cheapest card overall otherwise. It returns nil when it's not the
// opponent's turn.
func (b *SimpleBot) ChooseAction(gameState GameState) Action {
	if gameState.Screen != SCREEN_PLAYING || gameState.CurrentPlayerID() != OPPONENT {
		return nil
	}
	legal := gameState.LegalPlays(OPPONENT)
	if len(legal) == 0 {
		return nil
	}
	if len(legal) == 1 {
		return NewActionOpponentPlayCard(legal[0])
	}

	cards := gameState.Hands[OPPONENT].Cards
	sort.Slice(legal, func(i, j int) bool {
		return isCheaper(cards[legal[i]], cards[legal[j]], gameState.Trump)
	})

	lead := gameState.TableCards[PLAYER]
	if lead != nil {
		for _, index := range legal {
			if cards[index].Beats(*lead, lead.Suit, gameState.Trump) {
				return NewActionOpponentPlayCard(index)
			}
		}
	}
	return NewActionOpponentPlayCard(legal[0])
}

// isCheaper orders cards by what they cost to give away: points first, then
// trumps last, then kill power.
func isCheaper(left Card, right Card, trump Suit) bool {
	if left.PointValue() != right.PointValue() {
		return left.PointValue() < right.PointValue()
	}
	if left.IsTrump(trump) != right.IsTrump(trump) {
		return !left.IsTrump(trump)
	}
	return left.KillPower() < right.KillPower()
}

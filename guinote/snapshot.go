package guinote

// HandCard is a card in the player's hand as shown on screen.
type HandCard struct {
	Card       Card `json:"card"`
	IsSelected bool `json:"isSelected"`
}

// Snapshot is a copy of everything a renderer needs to draw a frame.
// It shares no memory with the GameState it was taken from.
type Snapshot struct {
	RoundID           string     `json:"roundID"`
	RoundNumber       int        `json:"roundNumber"`
	DealNumber        int        `json:"dealNumber"`
	Screen            Screen     `json:"screen"`
	PlayerHand        []HandCard `json:"playerHand"`
	OpponentHand      []Card     `json:"opponentHand"`
	OpponentCardCount int        `json:"opponentCardCount"`
	PlayerPoints      int        `json:"playerPoints"`
	OpponentPoints    int        `json:"opponentPoints"`
	WinThreshold      int        `json:"winThreshold"`
	Trump             Suit       `json:"trump"`
	TrumpCard         Card       `json:"trumpCard"`
	StockSize         int        `json:"stockSize"`
	PlayerTableCard   *Card      `json:"playerTableCard"`
	OpponentTableCard *Card      `json:"opponentTableCard"`
	LastTrick         *Trick     `json:"lastTrick"`
	TurnPlayerID      int        `json:"turnPlayerID"`
	WinnerPlayerID    int        `json:"winnerPlayerID"`
	LegalPlays        []int      `json:"legalPlays"`
}

// Snapshot returns the view of the game from the player's seat.
func (g GameState) Snapshot() Snapshot {
	s := Snapshot{
		RoundID:           g.RoundID,
		RoundNumber:       g.RoundNumber,
		DealNumber:        g.DealNumber,
		Screen:            g.Screen,
		PlayerHand:        []HandCard{},
		OpponentHand:      []Card{},
		PlayerPoints:      g.Score.Player,
		OpponentPoints:    g.Score.Opponent,
		WinThreshold:      g.Rules.WinThreshold,
		Trump:             g.Trump,
		TrumpCard:         g.TrumpCard,
		StockSize:         g.StockSize(),
		PlayerTableCard:   copyCard(g.TableCards[PLAYER]),
		OpponentTableCard: copyCard(g.TableCards[OPPONENT]),
		TurnPlayerID:      g.TurnPlayerID,
		WinnerPlayerID:    g.WinnerPlayerID,
		LegalPlays:        []int{},
	}

	if hand := g.Hands[PLAYER]; hand != nil {
		for i, card := range hand.Cards {
			s.PlayerHand = append(s.PlayerHand, HandCard{Card: card, IsSelected: i == g.SelectedCard})
		}
	}
	if hand := g.Hands[OPPONENT]; hand != nil {
		s.OpponentHand = append(s.OpponentHand, hand.Cards...)
		s.OpponentCardCount = len(hand.Cards)
	}
	if g.LastTrick != nil {
		trick := *g.LastTrick
		s.LastTrick = &trick
	}
	if g.Screen == SCREEN_PLAYING && g.TurnPlayerID == PLAYER {
		s.LegalPlays = append(s.LegalPlays, g.LegalPlays(PLAYER)...)
	}
	return s
}

func copyCard(c *Card) *Card {
	if c == nil {
		return nil
	}
	card := *c
	return &card
}

// TerminalFits returns true if a terminal of the given size can show the game.
func TerminalFits(width, height, minWidth, minHeight int) bool {
	return width >= minWidth && height >= minHeight
}

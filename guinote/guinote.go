package guinote

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Screen is what the game is currently showing. Exactly one is active.
type Screen string

const (
	SCREEN_MENU               Screen = "menu"
	SCREEN_PLAYING            Screen = "playing"
	SCREEN_ROUND_LOST         Screen = "round_lost"
	SCREEN_ROUND_WON          Screen = "round_won"
	SCREEN_TERMINAL_TOO_SMALL Screen = "terminal_too_small"
)

const (
	DefaultWinThreshold   = 101
	DefaultHandSize       = 6
	DefaultMinWidth       = 35
	DefaultMinHeight      = 140
	DefaultLastTrickBonus = 10
)

// Rules are the configurable parameters of a game.
type Rules struct {
	// WinThreshold is the number of points that wins the round.
	WinThreshold int `json:"winThreshold"`

	// HandSize is the number of cards dealt to each side.
	HandSize int `json:"handSize"`

	// MinWidth and MinHeight are the smallest usable terminal size.
	MinWidth  int `json:"minWidth"`
	MinHeight int `json:"minHeight"`

	// LastTrickBonus goes to whoever wins the last trick of a deal ("diez de últimas").
	LastTrickBonus int `json:"lastTrickBonus"`
}

// GameState represents the state of a Guiñote game.
type GameState struct {
	// RoundID identifies the current round; it changes every time a new round starts.
	RoundID string `json:"roundID"`

	// RoundNumber is the number of the current round, starting from 1.
	// A round is played until one side reaches Rules.WinThreshold.
	RoundNumber int `json:"roundNumber"`

	// DealNumber is the number of the current deal within the round, starting from 1.
	DealNumber int `json:"dealNumber"`

	// Screen is the active screen.
	Screen Screen `json:"screen"`

	// ScreenBeforeTooSmall is the screen to go back to once the terminal is big enough.
	ScreenBeforeTooSmall Screen `json:"screenBeforeTooSmall"`

	// Hands is a map of player IDs to their respective hands.
	Hands map[int]*Hand `json:"hands"`

	// Score is the points of each side in the current round.
	Score Score `json:"score"`

	// Trump is the suit of the muestra, fixed for the whole deal.
	Trump Suit `json:"trump"`

	// TrumpCard is the muestra: the bottom card of the stock, drawn last.
	TrumpCard Card `json:"trumpCard"`

	// TableCards holds the card each side played in the current trick, or nil.
	TableCards map[int]*Card `json:"tableCards"`

	// LastTrick is the most recently completed trick, nil at the start of a deal.
	LastTrick *Trick `json:"lastTrick"`

	// Tricks are the completed tricks of the current deal.
	Tricks []Trick `json:"tricks"`

	// Piles are the cards won by each player in the current deal.
	Piles map[int][]Card `json:"piles"`

	// SelectedCard is the index of the selected card in the player's hand.
	SelectedCard int `json:"selectedCard"`

	// TurnPlayerID is the player ID of the player who must play a card.
	TurnPlayerID int `json:"turnPlayerID"`

	// TrickLeaderPlayerID is the player ID of the player who leads the current trick.
	TrickLeaderPlayerID int `json:"trickLeaderPlayerID"`

	// DealLeaderPlayerID is the player who leads the first trick of the deal, or "mano".
	DealLeaderPlayerID int `json:"dealLeaderPlayerID"`

	// WinnerPlayerID is the player ID of the player who won the round, -1 while it's played.
	WinnerPlayerID int `json:"winnerPlayerID"`

	// Exited is true once the user quits.
	Exited bool `json:"exited"`

	Rules Rules `json:"rules"`

	rng  *rand.Rand
	deck *deck
}

var (
	errActionNotPossible = errors.New("action not possible")
	errGameExited        = errors.New("game exited")
	errNotYourTurn       = errors.New("not your turn")
	errIllegalPlay       = errors.New("card cannot be played now")
	errInvalidRules      = errors.New("invalid rules")
)

// New creates a game with a fresh deal, showing the menu.
func New(opts ...func(*GameState)) (*GameState, error) {
	gs := &GameState{
		Screen:             SCREEN_MENU,
		Hands:              map[int]*Hand{PLAYER: nil, OPPONENT: nil},
		TableCards:         map[int]*Card{PLAYER: nil, OPPONENT: nil},
		Piles:              map[int][]Card{PLAYER: {}, OPPONENT: {}},
		DealLeaderPlayerID: PLAYER,
		WinnerPlayerID:     -1,
		Rules: Rules{
			WinThreshold:   DefaultWinThreshold,
			HandSize:       DefaultHandSize,
			MinWidth:       DefaultMinWidth,
			MinHeight:      DefaultMinHeight,
			LastTrickBonus: DefaultLastTrickBonus,
		},
	}

	for _, opt := range opts {
		opt(gs)
	}

	// A side below the threshold must be able to take any trick without overflowing.
	maxThreshold := maxScore - maxTrickPoints - gs.Rules.LastTrickBonus
	if gs.Rules.WinThreshold < 1 || gs.Rules.WinThreshold > maxThreshold ||
		gs.Rules.HandSize < 1 || gs.Rules.LastTrickBonus < 0 {
		return nil, fmt.Errorf("%w: %+v", errInvalidRules, gs.Rules)
	}
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if err := gs.startNewRound(); err != nil {
		return nil, err
	}
	return gs, nil
}

// WithSeed makes shuffling deterministic.
func WithSeed(seed uint64) func(*GameState) {
	return func(g *GameState) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithWinThreshold(points int) func(*GameState) {
	return func(g *GameState) {
		g.Rules.WinThreshold = points
	}
}

func WithHandSize(cards int) func(*GameState) {
	return func(g *GameState) {
		g.Rules.HandSize = cards
	}
}

func WithMinTerminalSize(width, height int) func(*GameState) {
	return func(g *GameState) {
		g.Rules.MinWidth = width
		g.Rules.MinHeight = height
	}
}

func WithLastTrickBonus(points int) func(*GameState) {
	return func(g *GameState) {
		g.Rules.LastTrickBonus = points
	}
}

func (g *GameState) startNewRound() error {
	g.RoundID = uuid.NewString()
	g.RoundNumber++
	g.DealNumber = 0
	g.DealLeaderPlayerID = PLAYER
	g.WinnerPlayerID = -1
	g.Score.Reset()
	return g.startNewDeal()
}

func (g *GameState) startNewDeal() error {
	g.deck = newDeck(g.rng)
	g.DealNumber++
	g.Piles = map[int][]Card{PLAYER: {}, OPPONENT: {}}
	g.TableCards = map[int]*Card{PLAYER: nil, OPPONENT: nil}
	g.Tricks = []Trick{}
	g.LastTrick = nil
	g.SelectedCard = 0

	for _, playerID := range []int{g.DealLeaderPlayerID, g.OpponentOf(g.DealLeaderPlayerID)} {
		hand, err := g.deck.deal(g.Rules.HandSize)
		if err != nil {
			return fmt.Errorf("dealing to player %d: %w", playerID, err)
		}
		g.Hands[playerID] = hand
	}

	muestra, err := g.deck.bottom()
	if err != nil {
		return fmt.Errorf("revealing the trump: %w", ErrInsufficientCards)
	}
	g.TrumpCard = muestra
	g.Trump = muestra.Suit
	g.TurnPlayerID = g.DealLeaderPlayerID
	g.TrickLeaderPlayerID = g.DealLeaderPlayerID

	log.Debug().
		Str("round", g.RoundID).
		Int("deal", g.DealNumber).
		Str("trump", muestra.String()).
		Int("mano", g.DealLeaderPlayerID).
		Msg("new deal")
	return nil
}

// RunAction validates and runs an action. It never panics on user input:
// actions that make no sense right now return an error and change nothing.
func (g *GameState) RunAction(action Action) error {
	if g.Exited {
		return errGameExited
	}

	if action == nil || !action.IsPossible(*g) {
		return errActionNotPossible
	}

	return action.Run(g)
}

func (g *GameState) advanceScreen() error {
	switch g.Screen {
	case SCREEN_MENU:
		g.setScreen(SCREEN_PLAYING)
		return nil
	case SCREEN_ROUND_WON, SCREEN_ROUND_LOST:
		if err := g.startNewRound(); err != nil {
			return err
		}
		g.setScreen(SCREEN_MENU)
		return nil
	default:
		return errActionNotPossible
	}
}

func (g *GameState) setScreen(screen Screen) {
	log.Debug().Str("round", g.RoundID).Str("from", string(g.Screen)).Str("to", string(screen)).Msg("screen")
	g.Screen = screen
}

func (g *GameState) selectCard(index int) {
	if err := g.Hands[PLAYER].validIndex(index); err != nil {
		log.Debug().Err(err).Msg("selection ignored")
		return
	}
	g.SelectedCard = index
}

func (g *GameState) terminalResized(width, height int) {
	fits := TerminalFits(width, height, g.Rules.MinWidth, g.Rules.MinHeight)
	switch {
	case !fits && g.Screen != SCREEN_TERMINAL_TOO_SMALL:
		g.ScreenBeforeTooSmall = g.Screen
		g.setScreen(SCREEN_TERMINAL_TOO_SMALL)
	case fits && g.Screen == SCREEN_TERMINAL_TOO_SMALL:
		g.setScreen(g.ScreenBeforeTooSmall)
		g.ScreenBeforeTooSmall = ""
	}
}

func (g *GameState) concede() {
	g.finishRound(OPPONENT)
}

func (g *GameState) finishRound(winnerPlayerID int) {
	g.WinnerPlayerID = winnerPlayerID
	log.Debug().
		Str("round", g.RoundID).
		Int("winner", winnerPlayerID).
		Int("player", g.Score.Player).
		Int("opponent", g.Score.Opponent).
		Msg("round finished")
	if winnerPlayerID == PLAYER {
		g.setScreen(SCREEN_ROUND_WON)
	} else {
		g.setScreen(SCREEN_ROUND_LOST)
	}
}

// canPlay returns nil if the player may play the card at index right now.
func (g GameState) canPlay(playerID int, index int) error {
	if g.Screen != SCREEN_PLAYING {
		return errActionNotPossible
	}
	if g.TurnPlayerID != playerID {
		return errNotYourTurn
	}
	if err := g.Hands[playerID].validIndex(index); err != nil {
		return err
	}
	if !slices.Contains(g.LegalPlays(playerID), index) {
		return errIllegalPlay
	}
	return nil
}

func (g *GameState) playCard(playerID int, index int) error {
	if err := g.canPlay(playerID, index); err != nil {
		return err
	}

	card := g.Hands[playerID].Cards[index]
	completes := g.TableCards[g.OpponentOf(playerID)] != nil

	var (
		trick    Trick
		score    = g.Score
		dealOver bool
	)
	if completes {
		trick, dealOver = g.pendingTrick(playerID, card)
		points := trick.Points
		if dealOver {
			points += g.Rules.LastTrickBonus
		}
		if err := score.AwardPoints(trick.WinnerPlayerID, points); err != nil {
			return fmt.Errorf("awarding trick to player %d: %w", trick.WinnerPlayerID, err)
		}
	}

	if _, err := g.Hands[playerID].remove(index); err != nil {
		return err
	}
	g.TableCards[playerID] = &card

	if playerID == PLAYER {
		g.SelectedCard = max(0, min(g.SelectedCard, len(g.Hands[PLAYER].Cards)-1))
	}

	if !completes {
		g.TurnPlayerID = g.OpponentOf(playerID)
		return nil
	}
	return g.completeTrick(trick, score, dealOver)
}

// pendingTrick resolves the trick that playerID would complete by playing
// card, and reports whether it would be the last one of the deal.
func (g GameState) pendingTrick(playerID int, card Card) (Trick, bool) {
	leader := g.TrickLeaderPlayerID
	lead, follow := *g.TableCards[leader], card
	if playerID == leader {
		lead, follow = card, *g.TableCards[g.OpponentOf(leader)]
	}

	result := ResolveTrick(lead, lead.Suit, follow, g.Trump)
	winner := leader
	if result.Winner == FOLLOW {
		winner = g.OpponentOf(leader)
	}

	dealOver := g.StockSize() == 0 &&
		len(g.Hands[playerID].Cards) == 1 &&
		len(g.Hands[g.OpponentOf(playerID)].Cards) == 0

	return Trick{
		LeaderPlayerID: leader,
		Lead:           lead,
		Follow:         follow,
		WinnerPlayerID: winner,
		Points:         result.Points,
	}, dealOver
}

// completeTrick applies a trick whose award was already checked into score.
func (g *GameState) completeTrick(trick Trick, score Score, dealOver bool) error {
	winner := trick.WinnerPlayerID

	g.Tricks = append(g.Tricks, trick)
	g.LastTrick = &trick
	g.Piles[winner] = append(g.Piles[winner], trick.Lead, trick.Follow)
	g.TableCards = map[int]*Card{PLAYER: nil, OPPONENT: nil}
	g.TrickLeaderPlayerID = winner
	g.TurnPlayerID = winner
	g.Score = score

	g.refillHands(winner)

	log.Debug().Str("round", g.RoundID).Stringer("trick", trick).Bool("last", dealOver).Msg("trick resolved")

	if g.Score.HasWon(winner, g.Rules.WinThreshold) {
		g.finishRound(winner)
		return nil
	}

	if dealOver {
		// Vueltas: nobody reached the threshold, deal again keeping the score.
		g.DealLeaderPlayerID = g.OpponentOf(g.DealLeaderPlayerID)
		return g.startNewDeal()
	}
	return nil
}

// refillHands draws one card each from the stock, trick winner first.
func (g *GameState) refillHands(winnerPlayerID int) {
	for _, playerID := range []int{winnerPlayerID, g.OpponentOf(winnerPlayerID)} {
		card, err := g.deck.draw()
		if errors.Is(err, ErrEmptyDeck) {
			return
		}
		g.Hands[playerID].Cards = append(g.Hands[playerID].Cards, card)
	}
}

// LegalPlays returns the indexes of the cards the player may play now.
// While there are cards in the stock anything goes. Once it's exhausted
// (arrastre) the follower must follow suit and beat the lead if able to,
// otherwise trump if able to.
func (g GameState) LegalPlays(playerID int) []int {
	hand := g.Hands[playerID]
	if hand == nil {
		return nil
	}
	all := make([]int, len(hand.Cards))
	for i := range all {
		all[i] = i
	}

	lead := g.TableCards[g.OpponentOf(playerID)]
	if lead == nil || g.StockSize() > 0 {
		return all
	}

	var following, beating, trumps []int
	for i, card := range hand.Cards {
		if card.Suit == lead.Suit {
			following = append(following, i)
			if card.KillPower() > lead.KillPower() {
				beating = append(beating, i)
			}
		}
		if card.IsTrump(g.Trump) {
			trumps = append(trumps, i)
		}
	}

	switch {
	case len(beating) > 0:
		return beating
	case len(following) > 0:
		return following
	case len(trumps) > 0:
		return trumps
	default:
		return all
	}
}

// StockSize returns the number of cards left to draw, muestra included.
func (g GameState) StockSize() int {
	if g.deck == nil {
		return 0
	}
	return g.deck.len()
}

func (g GameState) CurrentPlayerID() int {
	return g.TurnPlayerID
}

func (g GameState) OpponentOf(playerID int) int {
	if playerID == PLAYER {
		return OPPONENT
	}
	return PLAYER
}

// checkInvariants verifies every card is in exactly one place.
func (g GameState) checkInvariants() error {
	seen := map[Card]string{}
	place := func(where string, cards ...Card) error {
		for _, card := range cards {
			if !card.IsValid() {
				return fmt.Errorf("invalid card %v in %s", card, where)
			}
			if other, ok := seen[card]; ok {
				return fmt.Errorf("card %v is both in %s and %s", card, other, where)
			}
			seen[card] = where
		}
		return nil
	}

	if g.deck != nil {
		if err := place("stock", g.deck.cards...); err != nil {
			return err
		}
	}
	for _, playerID := range []int{PLAYER, OPPONENT} {
		if hand := g.Hands[playerID]; hand != nil {
			if err := place(fmt.Sprintf("hand %d", playerID), hand.Cards...); err != nil {
				return err
			}
		}
		if card := g.TableCards[playerID]; card != nil {
			if err := place(fmt.Sprintf("table %d", playerID), *card); err != nil {
				return err
			}
		}
		if err := place(fmt.Sprintf("pile %d", playerID), g.Piles[playerID]...); err != nil {
			return err
		}
	}

	if len(seen) != len(Suits)*len(Numbers) {
		return fmt.Errorf("expected %d cards, found %d", len(Suits)*len(Numbers), len(seen))
	}
	return nil
}

func (g *GameState) GameStateString() string {
	result := fmt.Sprintf("=== Round %d, deal %d, %s, player %d's turn ===\n", g.RoundNumber, g.DealNumber, g.Screen, g.TurnPlayerID)
	result += fmt.Sprintf("Scores: P0=%d, P1=%d\n", g.Score.Player, g.Score.Opponent)
	result += fmt.Sprintf("Trump: %s (stock %d)\n", g.TrumpCard.String(), g.StockSize())
	result += fmt.Sprintf("Player 0 hand: %s\n", g.Hands[PLAYER].String())
	result += fmt.Sprintf("Player 1 hand: %s\n", g.Hands[OPPONENT].String())
	if g.LastTrick != nil {
		result += fmt.Sprintf("Last trick: %s\n", g.LastTrick.String())
	}
	return result
}

package guinote

import (
	"encoding/json"
	"fmt"
)

const (
	ADVANCE_SCREEN     = "advance_screen"
	SELECT_CARD        = "select_card"
	PLAY_SELECTED_CARD = "play_selected_card"
	OPPONENT_PLAY_CARD = "opponent_play_card"
	TERMINAL_RESIZED   = "terminal_resized"
	CONCEDE            = "concede"
	QUIT               = "quit"
)

// Action is a command sent to the game by the input or opponent collaborators.
type Action interface {
	IsPossible(g GameState) bool
	Run(g *GameState) error
	GetName() string
	String() string
}

type act struct {
	Name string `json:"name"`
}

func (a act) GetName() string {
	return a.Name
}

// ActionAdvanceScreen starts the game from the menu, or goes back to the
// menu with a new round once the current one is over.
type ActionAdvanceScreen struct {
	act
}

func NewActionAdvanceScreen() Action {
	return ActionAdvanceScreen{act: act{Name: ADVANCE_SCREEN}}
}

func (a ActionAdvanceScreen) IsPossible(g GameState) bool {
	switch g.Screen {
	case SCREEN_MENU, SCREEN_ROUND_WON, SCREEN_ROUND_LOST:
		return true
	}
	return false
}

func (a ActionAdvanceScreen) Run(g *GameState) error {
	return g.advanceScreen()
}

func (a ActionAdvanceScreen) String() string {
	return "advance screen"
}

// ActionSelectCard moves the selection cursor in the player's hand. An index
// out of range is ignored.
type ActionSelectCard struct {
	act
	Index int `json:"index"`
}

func NewActionSelectCard(index int) Action {
	return ActionSelectCard{act: act{Name: SELECT_CARD}, Index: index}
}

func (a ActionSelectCard) IsPossible(g GameState) bool {
	return g.Screen == SCREEN_PLAYING
}

func (a ActionSelectCard) Run(g *GameState) error {
	g.selectCard(a.Index)
	return nil
}

func (a ActionSelectCard) String() string {
	return fmt.Sprintf("select card %d", a.Index)
}

// ActionPlaySelectedCard plays the card under the player's selection cursor.
type ActionPlaySelectedCard struct {
	act
}

func NewActionPlaySelectedCard() Action {
	return ActionPlaySelectedCard{act: act{Name: PLAY_SELECTED_CARD}}
}

func (a ActionPlaySelectedCard) IsPossible(g GameState) bool {
	return g.canPlay(PLAYER, g.SelectedCard) == nil
}

func (a ActionPlaySelectedCard) Run(g *GameState) error {
	return g.playCard(PLAYER, g.SelectedCard)
}

func (a ActionPlaySelectedCard) String() string {
	return "play selected card"
}

// ActionOpponentPlayCard plays the opponent's card at Index, as chosen by
// whatever drives the opponent.
type ActionOpponentPlayCard struct {
	act
	Index int `json:"index"`
}

func NewActionOpponentPlayCard(index int) Action {
	return ActionOpponentPlayCard{act: act{Name: OPPONENT_PLAY_CARD}, Index: index}
}

func (a ActionOpponentPlayCard) IsPossible(g GameState) bool {
	return g.canPlay(OPPONENT, a.Index) == nil
}

func (a ActionOpponentPlayCard) Run(g *GameState) error {
	return g.playCard(OPPONENT, a.Index)
}

func (a ActionOpponentPlayCard) String() string {
	return fmt.Sprintf("opponent plays card %d", a.Index)
}

// ActionTerminalResized reports the terminal size. It is possible on any screen.
type ActionTerminalResized struct {
	act
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewActionTerminalResized(width, height int) Action {
	return ActionTerminalResized{act: act{Name: TERMINAL_RESIZED}, Width: width, Height: height}
}

func (a ActionTerminalResized) IsPossible(g GameState) bool {
	return true
}

func (a ActionTerminalResized) Run(g *GameState) error {
	g.terminalResized(a.Width, a.Height)
	return nil
}

func (a ActionTerminalResized) String() string {
	return fmt.Sprintf("terminal resized to %dx%d", a.Width, a.Height)
}

// ActionConcede gives the round to the opponent.
type ActionConcede struct {
	act
}

func NewActionConcede() Action {
	return ActionConcede{act: act{Name: CONCEDE}}
}

func (a ActionConcede) IsPossible(g GameState) bool {
	return g.Screen == SCREEN_PLAYING
}

func (a ActionConcede) Run(g *GameState) error {
	g.concede()
	return nil
}

func (a ActionConcede) String() string {
	return "concede"
}

type ActionQuit struct {
	act
}

func NewActionQuit() Action {
	return ActionQuit{act: act{Name: QUIT}}
}

func (a ActionQuit) IsPossible(g GameState) bool {
	return true
}

func (a ActionQuit) Run(g *GameState) error {
	g.Exited = true
	return nil
}

func (a ActionQuit) String() string {
	return "quit"
}

func SerializeAction(action Action) []byte {
	bs, _ := json.Marshal(action)
	return bs
}

func DeserializeAction(bs []byte) (Action, error) {
	var actionName struct {
		Name string `json:"name"`
	}

	err := json.Unmarshal(bs, &actionName)
	if err != nil {
		return nil, err
	}

	var action Action
	switch actionName.Name {
	case ADVANCE_SCREEN:
		action = &ActionAdvanceScreen{}
	case SELECT_CARD:
		action = &ActionSelectCard{}
	case PLAY_SELECTED_CARD:
		action = &ActionPlaySelectedCard{}
	case OPPONENT_PLAY_CARD:
		action = &ActionOpponentPlayCard{}
	case TERMINAL_RESIZED:
		action = &ActionTerminalResized{}
	case CONCEDE:
		action = &ActionConcede{}
	case QUIT:
		action = &ActionQuit{}
	default:
		return nil, fmt.Errorf("unknown action type %v", actionName.Name)
	}

	err = json.Unmarshal(bs, action)
	if err != nil {
		return nil, err
	}

	return action, nil
}

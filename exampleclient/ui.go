package exampleclient

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog/log"

	"github.com/marianogappa/guinote/guinote"
)

type ui struct{}

func NewUI() (*ui, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &ui{}, nil
}

func (u *ui) Close() {
	termbox.Close()
}

// Run plays on the terminal until the user quits. publish, if not nil, gets
// every frame's snapshot.
func Run(state *guinote.GameState, bot guinote.Bot, publish func(guinote.Snapshot)) error {
	u, err := NewUI()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer u.Close()

	w, h := termbox.Size()
	if err := state.RunAction(guinote.NewActionTerminalResized(w, h)); err != nil {
		return err
	}

	for !state.Exited {
		snapshot := state.Snapshot()
		if publish != nil {
			publish(snapshot)
		}
		if err := u.render(snapshot); err != nil {
			return err
		}

		if action := bot.ChooseAction(*state); action != nil {
			if err := state.RunAction(action); err != nil {
				return fmt.Errorf("running bot action %v: %w", action, err)
			}
			continue
		}

		event := termbox.PollEvent()
		if event.Type == termbox.EventError {
			return event.Err
		}
		action := eventToAction(event, snapshot)
		if action == nil {
			continue
		}
		if err := state.RunAction(action); err != nil {
			log.Debug().Err(err).Str("action", action.String()).Msg("action ignored")
		}
	}
	return nil
}

func eventToAction(event termbox.Event, snapshot guinote.Snapshot) guinote.Action {
	switch event.Type {
	case termbox.EventResize:
		return guinote.NewActionTerminalResized(event.Width, event.Height)
	case termbox.EventKey:
	default:
		return nil
	}

	switch {
	case event.Key == termbox.KeyEsc || event.Key == termbox.KeyCtrlC || event.Key == termbox.KeyCtrlD || event.Ch == 'q':
		return guinote.NewActionQuit()
	case event.Ch >= '1' && event.Ch <= '9':
		return guinote.NewActionSelectCard(int(event.Ch - '1'))
	case event.Key == termbox.KeyArrowLeft:
		return guinote.NewActionSelectCard(selectedIndex(snapshot) - 1)
	case event.Key == termbox.KeyArrowRight:
		return guinote.NewActionSelectCard(selectedIndex(snapshot) + 1)
	case event.Ch == 'x':
		return guinote.NewActionConcede()
	case event.Key == termbox.KeyEnter || event.Key == termbox.KeySpace:
		if snapshot.Screen == guinote.SCREEN_PLAYING {
			return guinote.NewActionPlaySelectedCard()
		}
		return guinote.NewActionAdvanceScreen()
	}
	return nil
}

func selectedIndex(snapshot guinote.Snapshot) int {
	for i, hc := range snapshot.PlayerHand {
		if hc.IsSelected {
			return i
		}
	}
	return 0
}

func (u *ui) render(s guinote.Snapshot) error {
	err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	if err != nil {
		return err
	}

	switch s.Screen {
	case guinote.SCREEN_MENU:
		renderMenu(s)
	case guinote.SCREEN_PLAYING:
		renderGame(s)
	case guinote.SCREEN_ROUND_WON, guinote.SCREEN_ROUND_LOST:
		renderRoundOver(s)
	case guinote.SCREEN_TERMINAL_TOO_SMALL:
		renderTooSmall()
	}

	return termbox.Flush()
}

func renderMenu(s guinote.Snapshot) {
	_, my := termbox.Size()
	printCenteredAt(my/2-2, "Guiñote", termbox.AttrBold)
	printCenteredAt(my/2, fmt.Sprintf("Ronda %d, se juega a %d puntos", s.RoundNumber, s.WinThreshold), termbox.ColorDefault)
	printCenteredAt(my/2+2, "Empezar partida <Enter>", termbox.ColorDefault)
	printCenteredAt(my-2, "Salir <Q>", termbox.ColorDefault)
}

func renderTooSmall() {
	_, my := termbox.Size()
	printCenteredAt(my/2, "La terminal es muy chica", termbox.AttrBold)
	printCenteredAt(my/2+1, "Agrandala para seguir jugando", termbox.ColorDefault)
}

func renderRoundOver(s guinote.Snapshot) {
	_, my := termbox.Size()
	if s.Screen == guinote.SCREEN_ROUND_WON {
		printCenteredAt(my/2-2, "¡Ganaste la ronda! 🥰", termbox.AttrBold)
	} else {
		printCenteredAt(my/2-2, "Perdiste la ronda 😭", termbox.AttrBold)
	}
	printCenteredAt(my/2, fmt.Sprintf("Vos: %d puntos, Oponente: %d puntos", s.PlayerPoints, s.OpponentPoints), termbox.ColorDefault)
	printCenteredAt(my-2, "Presioná Enter para volver al menú", termbox.ColorDefault)
}

func renderGame(s guinote.Snapshot) {
	mx, my := termbox.Size()

	// Display opponent's hand (face down)
	printAt(0, 0, strings.Repeat("[] ", s.OpponentCardCount), termbox.ColorDefault)

	printUpToAt(mx-1, 0, fmt.Sprintf("Ronda %d, reparto %d", s.RoundNumber, s.DealNumber))
	printUpToAt(mx-1, 1, fmt.Sprintf("Vos: %v puntos", s.PlayerPoints))
	printUpToAt(mx-1, 2, fmt.Sprintf("Oponente: %v puntos", s.OpponentPoints))
	printUpToAt(mx-1, 3, fmt.Sprintf("Se juega a %v", s.WinThreshold))

	trump := fmt.Sprintf("Triunfo: %v   Mazo: %d", getCardString(s.TrumpCard), s.StockSize)
	if s.StockSize == 0 {
		trump = fmt.Sprintf("Triunfo: %v   Arrastre", suitEmoji(s.Trump))
	}
	printAt(0, my/2-3, trump, termbox.ColorDefault)

	printAt(0, my/2-1, "Mesa: "+getTableString(s), termbox.ColorDefault)
	printAt(0, my/2, getLastTrickString(s.LastTrick), termbox.ColorDefault)

	// Display your hand
	x := printAt(0, my-4, "Tu mano: ", termbox.ColorDefault)
	for i, hc := range s.PlayerHand {
		attr := termbox.ColorDefault
		if hc.IsSelected {
			attr = termbox.AttrReverse
		}
		x = printAt(x, my-4, fmt.Sprintf("%d. %v", i+1, getCardString(hc.Card)), attr)
		x = printAt(x, my-4, "  ", termbox.ColorDefault)
	}

	if s.TurnPlayerID == guinote.PLAYER {
		printAt(0, my-2, "Tu turno: ←/→ o 1-9 para elegir, Enter para jugar, X para abandonar", termbox.ColorDefault)
	} else {
		printAt(0, my-2, "Esperando al oponente...", termbox.ColorDefault)
	}
}

// printAt writes s starting at x, y and returns the column after it.
func printAt(x, y int, s string, attr termbox.Attribute) int {
	for _, r := range s {
		termbox.SetCell(x, y, r, attr, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Write so that the output ends at x, y
func printUpToAt(x, y int, s string) {
	printAt(x-runewidth.StringWidth(s)+1, y, s, termbox.ColorDefault)
}

func printCenteredAt(y int, s string, attr termbox.Attribute) {
	mx, _ := termbox.Size()
	printAt((mx-runewidth.StringWidth(s))/2, y, s, attr)
}

func getTableString(s guinote.Snapshot) string {
	var parts []string
	if s.PlayerTableCard != nil {
		parts = append(parts, "Vos "+getCardString(*s.PlayerTableCard))
	}
	if s.OpponentTableCard != nil {
		parts = append(parts, "Oponente "+getCardString(*s.OpponentTableCard))
	}
	if len(parts) == 0 {
		return "vacía"
	}
	return strings.Join(parts, "  ")
}

func getLastTrickString(trick *guinote.Trick) string {
	if trick == nil {
		return "¡Empezó el reparto!"
	}
	cards := getCardString(trick.Lead) + " " + getCardString(trick.Follow)
	if trick.WinnerPlayerID == guinote.PLAYER {
		return fmt.Sprintf("Ganaste la baza %v (+%d)", cards, trick.Points)
	}
	return fmt.Sprintf("El oponente ganó la baza %v (+%d)", cards, trick.Points)
}

func getCardString(card guinote.Card) string {
	return fmt.Sprintf("[%v%v]", card.Number, suitEmoji(card.Suit))
}

func suitEmoji(suit guinote.Suit) string {
	switch suit {
	case guinote.ESPADA:
		return "🔪"
	case guinote.BASTO:
		return "🌿"
	case guinote.ORO:
		return "💰"
	case guinote.COPA:
		return "🍷"
	default:
		return "❓"
	}
}

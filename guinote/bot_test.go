package guinote

import "testing"

func TestBotOnlyPlaysOnItsTurn(t *testing.T) {
	gs := newTestGame(t)
	bot := NewBot()

	if action := bot.ChooseAction(*gs); action != nil {
		t.Errorf("Bot should not play from the menu, chose %v", action)
	}
	mustRun(t, gs, NewActionAdvanceScreen())
	if action := bot.ChooseAction(*gs); action != nil {
		t.Errorf("Bot should not play on the player's turn, chose %v", action)
	}
}

func TestBotChoosesCheapestWinningCard(t *testing.T) {
	tests := []struct {
		name     string
		lead     Card
		hand     []Card
		expected int
	}{
		{"wins with the cheapest card of the suit", Card{COPA, REY}, []Card{{COPA, AS}, {COPA, 3}, {ESPADA, 2}}, 1},
		{"trumps when it can't win in suit", Card{COPA, AS}, []Card{{BASTO, 3}, {ORO, 2}, {ORO, SOTA}}, 1},
		{"throws the cheapest card when it can't win", Card{ORO, AS}, []Card{{BASTO, 3}, {COPA, 4}, {ESPADA, REY}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGame(t)
			mustRun(t, gs, NewActionAdvanceScreen())
			gs.Trump = ORO
			lead := tt.lead
			gs.TableCards[PLAYER] = &lead
			gs.TurnPlayerID = OPPONENT
			gs.Hands[OPPONENT] = &Hand{Cards: tt.hand}

			action := NewBot().ChooseAction(*gs)
			play, ok := action.(ActionOpponentPlayCard)
			if !ok {
				t.Fatalf("Expected an opponent play, got %v", action)
			}
			if play.Index != tt.expected {
				t.Errorf("Expected card %d (%v), got %d (%v)", tt.expected, tt.hand[tt.expected], play.Index, tt.hand[play.Index])
			}
		})
	}
}

func TestBotLeadsCheapestCard(t *testing.T) {
	gs := newTestGame(t)
	mustRun(t, gs, NewActionAdvanceScreen())
	gs.Trump = ORO
	gs.TurnPlayerID = OPPONENT
	gs.TrickLeaderPlayerID = OPPONENT
	gs.Hands[OPPONENT] = &Hand{Cards: []Card{{COPA, AS}, {ORO, 2}, {BASTO, 2}, {ESPADA, REY}}}

	play, ok := NewBot().ChooseAction(*gs).(ActionOpponentPlayCard)
	if !ok || play.Index != 2 {
		t.Errorf("Expected the bot to lead 2 de basto, got %+v", play)
	}
}

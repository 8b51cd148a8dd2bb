package guinote

import (
	"testing"
)

func TestSerializeDeserializeAction(t *testing.T) {
	actions := []Action{
		NewActionAdvanceScreen(),
		NewActionSelectCard(3),
		NewActionPlaySelectedCard(),
		NewActionOpponentPlayCard(2),
		NewActionTerminalResized(120, 40),
		NewActionConcede(),
		NewActionQuit(),
	}

	for _, action := range actions {
		bs := SerializeAction(action)
		got, err := DeserializeAction(bs)
		if err != nil {
			t.Fatalf("Deserializing %s: %v", bs, err)
		}
		if got.GetName() != action.GetName() {
			t.Errorf("Expected %s, got %s", action.GetName(), got.GetName())
		}
		if got.String() != action.String() {
			t.Errorf("Expected %q, got %q", action.String(), got.String())
		}
	}
}

func TestDeserializeActionErrors(t *testing.T) {
	for _, bs := range []string{`{"name":"throw_card"}`, `{}`, `not json`, `{"name":"select_card","index":"one"}`} {
		if _, err := DeserializeAction([]byte(bs)); err == nil {
			t.Errorf("Expected error deserializing %s", bs)
		}
	}
}

func TestDeserializedActionRuns(t *testing.T) {
	gs := newTestGame(t)
	mustRun(t, gs, NewActionAdvanceScreen())

	action, err := DeserializeAction([]byte(`{"name":"select_card","index":4}`))
	if err != nil {
		t.Fatal(err)
	}
	mustRun(t, gs, action)
	if gs.SelectedCard != 4 {
		t.Errorf("Expected card 4 selected, got %d", gs.SelectedCard)
	}
}

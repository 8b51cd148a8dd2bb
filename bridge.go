package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/marianogappa/guinote/guinote"
)

var errNoGame = errors.New("no game started")

// runActionJSON runs a serialized action against state and returns the
// resulting snapshot. Bad or impossible actions are logged and leave the
// game as it was.
func runActionJSON(state *guinote.GameState, bs []byte) ([]byte, error) {
	if state == nil {
		return nil, errNoGame
	}
	action, err := guinote.DeserializeAction(bs)
	if err != nil {
		log.Warn().Err(err).Bytes("action", bs).Msg("bad action")
		return snapshotJSON(state)
	}
	if err := state.RunAction(action); err != nil {
		log.Warn().Err(err).Str("action", action.String()).Msg("action ignored")
	}
	return snapshotJSON(state)
}

// runBotAction lets the bot move if it's its turn.
func runBotAction(state *guinote.GameState, bot guinote.Bot) ([]byte, error) {
	if state == nil || bot == nil {
		return nil, errNoGame
	}
	if action := bot.ChooseAction(*state); action != nil {
		if err := state.RunAction(action); err != nil {
			log.Error().Err(err).Str("action", action.String()).Msg("bot action failed")
		}
	}
	return snapshotJSON(state)
}

func snapshotJSON(state *guinote.GameState) ([]byte, error) {
	bs, err := json.Marshal(state.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshalling snapshot: %w", err)
	}
	return bs, nil
}

//go:build tinygo
// +build tinygo

package main

import (
	"fmt"
	"syscall/js"

	"github.com/rs/zerolog/log"

	"github.com/marianogappa/guinote/guinote"
)

func main() {
	js.Global().Set("guinoteNew", js.FuncOf(guinoteNew))
	js.Global().Set("guinoteRunAction", js.FuncOf(guinoteRunAction))
	js.Global().Set("guinoteBotRunAction", js.FuncOf(guinoteBotRunAction))
	select {}
}

var (
	state *guinote.GameState
	bot   guinote.Bot
)

// guinoteNew takes an optional seed.
func guinoteNew(this js.Value, p []js.Value) interface{} {
	opts := []func(*guinote.GameState){}
	if len(p) > 0 && p[0].Type() == js.TypeNumber {
		opts = append(opts, guinote.WithSeed(uint64(p[0].Int())))
	}

	var err error
	state, err = guinote.New(opts...)
	if err != nil {
		panic(fmt.Errorf("creating game: %w", err))
	}
	bot = guinote.NewBot()

	nbs, err := snapshotJSON(state)
	if err != nil {
		panic(err)
	}
	return toJS(nbs)
}

func guinoteRunAction(this js.Value, p []js.Value) interface{} {
	jsonBytes := make([]byte, p[0].Length())
	js.CopyBytesToGo(jsonBytes, p[0])

	nbs, err := runActionJSON(state, jsonBytes)
	if err != nil {
		log.Error().Err(err).Msg("running action")
		return js.Null()
	}
	return toJS(nbs)
}

func guinoteBotRunAction(this js.Value, p []js.Value) interface{} {
	nbs, err := runBotAction(state, bot)
	if err != nil {
		log.Error().Err(err).Msg("running action")
		return js.Null()
	}
	return toJS(nbs)
}

func toJS(bs []byte) js.Value {
	buffer := js.Global().Get("Uint8Array").New(len(bs))
	js.CopyBytesToJS(buffer, bs)
	return buffer
}

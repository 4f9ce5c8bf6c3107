package main

import (
	"encoding/json"
	"strings"
	"zk-ruleta/sdk"
)

// Placeholder scoring hub. It carries the same two-method surface a
// production hub exposes (start_game, end_game) but keeps no state and
// checks no callers: each call just re-emits its arguments as an event so
// game contracts can compile and integrate against it during development.

// HubSDK is the slice of the host sdk the stub uses.
type HubSDK interface {
	Log(msg string)
	Abort(msg string)
}

// RealSDK forwards to zk-ruleta/sdk.
type RealSDK struct{}

func (RealSDK) Log(msg string)   { sdk.Log(msg) }
func (RealSDK) Abort(msg string) { sdk.Abort(msg) }

// startGameImpl re-emits a session registration.
// Payload: "gameId|sessionId|player1|player2|player1Points|player2Points"
func startGameImpl(payload *string, chain HubSDK) *string {
	in := *payload
	gameId := nextField(&in)
	sessionId := nextField(&in)
	player1 := nextField(&in)
	player2 := nextField(&in)
	player1Points := nextField(&in)
	player2Points := nextField(&in)
	if in != "" {
		chain.Abort("too many arguments")
	}

	emit(chain, "gameStarted", map[string]string{
		"gameId":        gameId,
		"sessionId":     sessionId,
		"player1":       player1,
		"player2":       player2,
		"player1Points": player1Points,
		"player2Points": player2Points,
	})
	return nil
}

// endGameImpl re-emits a session result.
// Payload: "sessionId|player1Won" with the flag as "1" or "0".
func endGameImpl(payload *string, chain HubSDK) *string {
	in := *payload
	sessionId := nextField(&in)
	player1Won := nextField(&in)
	if in != "" {
		chain.Abort("too many arguments")
	}

	emit(chain, "gameEnded", map[string]string{
		"sessionId":  sessionId,
		"player1Won": player1Won,
	})
	return nil
}

func emit(chain HubSDK, eventType string, attributes map[string]string) {
	b, err := json.Marshal(struct {
		Type       string            `json:"type"`
		Attributes map[string]string `json:"attributes"`
	}{eventType, attributes})
	if err != nil {
		chain.Abort("failed to marshal " + eventType + " event")
	}
	chain.Log(string(b))
}

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	logs     []string
	aborted  bool
	abortMsg string
}

func (f *fakeChain) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *fakeChain) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic("Abort called: " + msg)
}

type event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func lastEvent(t *testing.T, chain *fakeChain) event {
	t.Helper()
	require.NotEmpty(t, chain.logs)
	var ev event
	require.NoError(t, json.Unmarshal([]byte(chain.logs[len(chain.logs)-1]), &ev))
	return ev
}

func TestStartGameReEmitsArguments(t *testing.T) {
	chain := &fakeChain{}
	payload := "vsc:ruleta|7|hive:p1|hive:p2|100|200"
	resp := startGameImpl(&payload, chain)
	assert.Nil(t, resp)

	ev := lastEvent(t, chain)
	assert.Equal(t, "gameStarted", ev.Type)
	assert.Equal(t, map[string]string{
		"gameId":        "vsc:ruleta",
		"sessionId":     "7",
		"player1":       "hive:p1",
		"player2":       "hive:p2",
		"player1Points": "100",
		"player2Points": "200",
	}, ev.Attributes)
}

func TestEndGameReEmitsArguments(t *testing.T) {
	chain := &fakeChain{}
	payload := "7|1"
	resp := endGameImpl(&payload, chain)
	assert.Nil(t, resp)

	ev := lastEvent(t, chain)
	assert.Equal(t, "gameEnded", ev.Type)
	assert.Equal(t, map[string]string{
		"sessionId":  "7",
		"player1Won": "1",
	}, ev.Attributes)
}

func TestStartGameTooManyArguments(t *testing.T) {
	chain := &fakeChain{}
	payload := "vsc:ruleta|7|hive:p1|hive:p2|100|200|extra"

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Abort panic, but function did not panic")
		}
		assert.True(t, chain.aborted)
		assert.Equal(t, "too many arguments", chain.abortMsg)
		assert.Empty(t, chain.logs, "no event on rejected call")
	}()
	startGameImpl(&payload, chain)
}

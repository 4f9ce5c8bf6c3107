package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"
)

func TestComputeCommitmentDeterministic(t *testing.T) {
	chain := newChain(t)
	salt := strings.Repeat("2a", 32)

	run := func(payload string) string {
		p := payload
		resp := computeCommitmentImpl(&p, chain)
		req.NotNil(t, resp)
		return *resp
	}

	pos0 := run(salt + "|0")
	pos1 := run(salt + "|1")

	assert.Equal(t, pos0, run(salt+"|0"), "same inputs must yield the same commitment")
	assert.NotEqual(t, pos0, pos1, "distinct positions must yield distinct commitments")

	// Pinned vectors for sha256(salt || positionByte) with salt = 32x 0x2a.
	assert.Equal(t, "64f65d058a52db5a5858de27457fb3b99674fbeaeb61d64d6149716f11e21227", pos0)
	assert.Equal(t, "6eb8979e9aa798080933e8104c45ae6013ea468b8acd3c0ffe77d87058da7a09", pos1)
	assert.Equal(t, "05aa3fad752a4b6d179d48fff78fbe72e8a2fc7df4ab4e41ab0fb3247cef2592", run(salt+"|3"))
}

func TestComputeCommitmentBadSalt(t *testing.T) {
	chain := newChain(t)
	payload := "zz|0"
	defer expectAbort(t, chain, "invalid salt: want 32 bytes hex")
	computeCommitmentImpl(&payload, chain)
}

func TestAlivePlayers(t *testing.T) {
	chain := newChain(t)
	const sid = 7
	joinAs(t, chain, "hive:p1", sid, 100)
	joinAs(t, chain, "hive:p2", sid, 100)
	joinAs(t, chain, "hive:p3", sid, 100)

	query := func() []string {
		payload := "7"
		resp := alivePlayersImpl(&payload, chain)
		req.NotNil(t, resp)
		var alive []string
		req.NoError(t, json.Unmarshal([]byte(*resp), &alive))
		return alive
	}

	assert.Equal(t, []string{"hive:p1", "hive:p2", "hive:p3"}, query())

	// Hazard in chamber 0 eliminates the host on the first shot; join
	// order is preserved among survivors.
	loadAs(t, chain, "hive:p1", sid, 0)
	fireAs(t, chain, "hive:p1", sid, validProof)
	assert.Equal(t, []string{"hive:p2", "hive:p3"}, query())
}

func TestGetSessionJSON(t *testing.T) {
	chain := newChain(t)
	const sid = 7
	joinAs(t, chain, "hive:p1", sid, 100)
	joinAs(t, chain, "hive:p2", sid, 200)
	loadAs(t, chain, "hive:p1", sid, 3)

	payload := "7"
	resp := getSessionImpl(&payload, chain)
	req.NotNil(t, resp)

	var view struct {
		SessionID        uint64   `json:"session_id"`
		Phase            uint8    `json:"phase"`
		CurrentTurn      uint8    `json:"current_turn"`
		CurrentChamber   uint8    `json:"current_chamber"`
		HazardCommitment string   `json:"hazard_commitment"`
		HazardPosition   uint8    `json:"hazard_position"`
		ShotsFired       uint64   `json:"shots_fired"`
		Players          []Player `json:"players"`
		Eliminated       []string `json:"eliminated"`
		Winner           *string  `json:"winner"`
		HubPlayer1       string   `json:"hub_player1"`
		HubPlayer2       string   `json:"hub_player2"`
	}
	req.NoError(t, json.Unmarshal([]byte(*resp), &view))

	assert.Equal(t, uint64(7), view.SessionID)
	assert.Equal(t, uint8(Playing), view.Phase)
	assert.Equal(t, uint8(3), view.HazardPosition)
	req.Len(t, view.Players, 2)
	assert.Equal(t, int64(200), view.Players[1].Points)
	assert.Nil(t, view.Winner)

	want := computeCommitment(testSalt(), 3)
	assert.Equal(t, encodeHex(want[:]), view.HazardCommitment)
}

func TestGetSessionNotFound(t *testing.T) {
	chain := newChain(t)
	payload := "404"
	defer expectAbort(t, chain, errGameNotFound)
	getSessionImpl(&payload, chain)
}

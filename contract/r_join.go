package main

// joinImpl registers the sender into a session lobby.
//
// Payload: "sessionId|points". Points are the caller's scoring stake,
// carried through to the hub unmodified.
//
// A fresh session id lazily creates a Waiting lobby; re-using an id whose
// state expired on the host does the same, by design. Returns the new
// roster size.
func joinImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	sessionId := parseU64Fast(nextField(&in))
	points := parseI64(nextField(&in), chain)
	require(in == "", "too many arguments", chain)

	sender := senderAddress(chain)
	s := loadOrInitSession(sessionId, sender, chain)

	require(s.Phase == Waiting, errWrongPhase, chain)
	require(len(s.Players) < maxPlayers, errLobbyFull, chain)
	for i := range s.Players {
		require(s.Players[i].Address != sender, errAlreadyJoined, chain)
	}

	s.Players = append(s.Players, Player{
		Address: sender,
		Alive:   true,
		Points:  points,
	})

	// The hub speaks a 2-player interface; snapshot the first two joiners.
	switch len(s.Players) {
	case 1:
		s.HubPlayer1 = sender
	case 2:
		s.HubPlayer2 = sender
	}

	saveSession(s, chain)
	EmitLobbyJoined(chain, sessionId, sender, len(s.Players))

	ret := UInt64ToString(uint64(len(s.Players)))
	return &ret
}

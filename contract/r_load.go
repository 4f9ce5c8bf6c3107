package main

// loadRevolverImpl commits the hazard position and starts the game.
//
// Payload: "sessionId|commitmentHex|position". Only the host (the player at
// roster index 0) may call it, once, with at least two players present.
//
// The commitment is stored verbatim for auditability; it is not checked
// against the revealed position here. Registers the session with the
// scoring hub before the state write, so a failing hub aborts the start.
func loadRevolverImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	sessionId := parseU64Fast(nextField(&in))
	commitment := decodeHex32(nextField(&in), "commitment", chain)
	position := parseU8Fast(nextField(&in))
	require(in == "", "too many arguments", chain)

	sender := senderAddress(chain)
	s := loadSession(sessionId, chain)

	require(len(s.Players) >= minPlayers, errNotEnoughPlayers, chain)
	require(s.Phase != Finished, errGameAlreadyEnded, chain)
	require(s.Phase != Playing, errAlreadyStarted, chain)
	require(position < numChambers, errInvalidChamber, chain)
	require(s.Players[0].Address == sender, errNotPlayer, chain)

	s.HazardCommitment = commitment
	s.HazardPosition = position
	s.Phase = Playing
	s.CurrentTurn = 0
	s.CurrentChamber = 0

	hubStartGame(s, chain)

	saveSession(s, chain)
	EmitRevolverLoaded(chain, sessionId)
	return nil
}

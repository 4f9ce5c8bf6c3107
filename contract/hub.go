package main

import "zk-ruleta/sdk"

// Client side of the scoring hub's two-method interface. The hub address is
// configuration (see admin.go); both calls are fire-and-forget, and a
// failing hub aborts the whole entry point through the host.

func hubAddress(chain SDKInterface) sdk.Address {
	ptr := chain.StateGetObject(hubKey)
	require(ptr != nil && *ptr != "", errHubNotSet, chain)
	return sdk.Address(*ptr)
}

// hubStartGame registers the session with the hub using the first two
// roster entries, the only ones the 2-player hub interface can carry.
//
// Payload: "gameId|sessionId|player1|player2|player1Points|player2Points"
func hubStartGame(s *Session, chain SDKInterface) {
	p1 := &s.Players[0]
	p2 := &s.Players[1]

	payload := contractId(chain) +
		"|" + UInt64ToString(s.SessionID) +
		"|" + p1.Address +
		"|" + p2.Address +
		"|" + Int64ToString(p1.Points) +
		"|" + Int64ToString(p2.Points)

	chain.ContractCall(hubAddress(chain), "start_game", payload)
}

// hubEndGame reports the outcome. The hub only wants to know whether its
// player1 won.
//
// Payload: "sessionId|player1Won" with the flag as "1" or "0".
func hubEndGame(s *Session, winner string, chain SDKInterface) {
	flag := "0"
	if winner == s.HubPlayer1 {
		flag = "1"
	}
	payload := UInt64ToString(s.SessionID) + "|" + flag
	chain.ContractCall(hubAddress(chain), "end_game", payload)
}

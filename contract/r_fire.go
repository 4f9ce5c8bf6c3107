package main

import (
	"crypto/sha256"
	"encoding/binary"
)

// fireImpl pulls the trigger for the sender.
//
// Payload: "sessionId|proofHex". The contract determines hit or miss from
// the static cylinder: the chamber counter advances each shot and a shot is
// fatal exactly when it equals the hazard position.
//
// On a fatal shot with two or more survivors the cylinder auto-reloads with
// a deterministic new hazard position for the next round. With one survivor
// the session finishes and the result is reported to the hub.
//
// Returns "hit" or "miss".
func fireImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	sessionId := parseU64Fast(nextField(&in))
	proof := decodeHex32(nextField(&in), "proof", chain)
	require(in == "", "too many arguments", chain)

	sender := senderAddress(chain)
	s := loadSession(sessionId, chain)

	require(s.Phase == Playing, errWrongPhase, chain)
	current := &s.Players[s.CurrentTurn]
	require(current.Address == sender, errNotYourTurn, chain)
	require(current.Alive, errPlayerEliminated, chain)
	require(s.CurrentChamber < numChambers, errInvalidChamber, chain)

	verifyProof(proof, chain)

	s.ShotsFired++
	hit := s.CurrentChamber == s.HazardPosition

	if hit {
		current.Alive = false
		s.Eliminated = append(s.Eliminated, sender)
		EmitPlayerEliminated(chain, sessionId, sender)

		if countAlive(s) == 1 {
			winner := lastAlive(s)
			s.Phase = Finished
			s.Winner = &winner
			hubEndGame(s, winner, chain)
			EmitSessionWon(chain, sessionId, winner)
		} else {
			s.HazardPosition = deriveHazardPosition(s.SessionID, s.ShotsFired)
			s.CurrentChamber = 0
			advanceTurn(s)
			EmitCylinderReloaded(chain, sessionId)
		}
	} else {
		EmitShotMissed(chain, sessionId, sender)
		s.CurrentChamber++
		advanceTurn(s)
	}

	saveSession(s, chain)

	ret := "miss"
	if hit {
		ret = "hit"
	}
	return &ret
}

// verifyProof gates a shot on proof validity. Currently a structural check
// that only rejects the all-zero sentinel; it stands in for algebraic proof
// verification against the stored commitment, which is not wired up yet.
func verifyProof(proof [32]byte, chain SDKInterface) {
	require(proof != [32]byte{}, errInvalidProof, chain)
}

// deriveHazardPosition computes the reloaded hazard chamber from public
// chain state: sha256 over the big-endian session id and shot counter,
// first digest byte modulo the chamber count. Deterministic and observer-
// predictable; this is a liveness mechanism, not a security primitive.
func deriveHazardPosition(sessionId, shotsFired uint64) uint8 {
	var seed [16]byte
	binary.BigEndian.PutUint64(seed[0:8], sessionId)
	binary.BigEndian.PutUint64(seed[8:16], shotsFired)
	sum := sha256.Sum256(seed[:])
	return sum[0] % numChambers
}

func countAlive(s *Session) int {
	count := 0
	for i := range s.Players {
		if s.Players[i].Alive {
			count++
		}
	}
	return count
}

// lastAlive returns the first (and at the call sites, only) alive player.
func lastAlive(s *Session) string {
	for i := range s.Players {
		if s.Players[i].Alive {
			return s.Players[i].Address
		}
	}
	return ""
}

// advanceTurn walks forward circularly from CurrentTurn, at most one full
// rotation, and stops at the first alive player. The bound keeps the scan
// terminating even if the alive invariant were ever broken; in that case
// CurrentTurn stays unchanged.
func advanceTurn(s *Session) {
	n := len(s.Players)
	if n == 0 {
		return
	}
	next := (int(s.CurrentTurn) + 1) % n
	for i := 0; i < n; i++ {
		if s.Players[next].Alive {
			s.CurrentTurn = uint8(next)
			return
		}
		next = (next + 1) % n
	}
}

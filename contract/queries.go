package main

import "crypto/sha256"

// Read-only accessors. No auth, no mutation.

// getSessionImpl returns the full session record as JSON.
// Payload: "sessionId"
func getSessionImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	sessionId := parseU64Fast(nextField(&in))
	require(in == "", "too many arguments", chain)

	s := loadSession(sessionId, chain)

	view := struct {
		*Session
		HazardCommitment string `json:"hazard_commitment"`
	}{s, encodeHex(s.HazardCommitment[:])}

	out := ToJSON(view, "session", chain)
	return &out
}

// alivePlayersImpl returns the addresses of surviving players in join
// order, as a JSON array.
// Payload: "sessionId"
func alivePlayersImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	sessionId := parseU64Fast(nextField(&in))
	require(in == "", "too many arguments", chain)

	s := loadSession(sessionId, chain)

	alive := make([]string, 0, len(s.Players))
	for i := range s.Players {
		if s.Players[i].Alive {
			alive = append(alive, s.Players[i].Address)
		}
	}

	out := ToJSON(alive, "alive players", chain)
	return &out
}

// computeCommitmentImpl is the pure commitment helper used off-chain by
// hosts building a hidden hazard position, and by tests.
// Payload: "saltHex|position". Returns hex of sha256(salt || positionByte).
func computeCommitmentImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	salt := decodeHex32(nextField(&in), "salt", chain)
	position := parseU8Fast(nextField(&in))
	require(in == "", "too many arguments", chain)

	sum := computeCommitment(salt, position)
	out := encodeHex(sum[:])
	return &out
}

// computeCommitment hashes the salt followed by the single position byte.
func computeCommitment(salt [32]byte, position uint8) [32]byte {
	preimage := make([]byte, 0, 33)
	preimage = append(preimage, salt[:]...)
	preimage = append(preimage, position)
	return sha256.Sum256(preimage)
}

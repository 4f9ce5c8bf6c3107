package main

import (
	"encoding/binary"
)

// ---------- Binary State Codec ----------

// codecVersion increments when storage encoding changes.
// Used to detect incompatible on-chain state.
const codecVersion uint8 = 1

// sessionKey constructs the state key for storing a session.
// Format: "s:<sessionId>"
func sessionKey(id uint64) string { return "s:" + UInt64ToString(id) }

// saveSession serializes the session into binary form and writes it to
// chain state. Called exactly once per mutating entry point, after all
// validation passed.
func saveSession(s *Session, chain SDKInterface) {
	chain.StateSetObject(sessionKey(s.SessionID), string(encodeSession(s)))
}

// loadSession retrieves a session by id. Aborts when no state exists.
func loadSession(id uint64, chain SDKInterface) *Session {
	ptr := chain.StateGetObject(sessionKey(id))
	require(ptr != nil && *ptr != "", errGameNotFound, chain)
	return decodeSession([]byte(*ptr), chain)
}

// loadOrInitSession returns the stored session, or a fresh Waiting one when
// the id is unknown. Join is the only entry point that initializes lazily;
// a session recreated after host expiry simply starts a new lobby. Both hub
// snapshots default to the first caller, matching a single-entry roster.
func loadOrInitSession(id uint64, sender string, chain SDKInterface) *Session {
	ptr := chain.StateGetObject(sessionKey(id))
	if ptr == nil || *ptr == "" {
		return &Session{
			SessionID:  id,
			Phase:      Waiting,
			HubPlayer1: sender,
			HubPlayer2: sender,
		}
	}
	return decodeSession([]byte(*ptr), chain)
}

// encodeSession serializes all session fields into a compact byte slice.
//
// Layout:
//
//	version | ID | Phase | Turn | Chamber | HazardPos | ShotsFired |
//	Commitment(32) | PlayerCount + players | ElimCount + addresses |
//	Winner? | HubPlayer1 | HubPlayer2
//
// Players are address (u16 len + bytes), alive flag, points (i64).
func encodeSession(s *Session) []byte {
	out := make([]byte, 0, 64+len(s.Players)*48)

	w8 := func(x byte) { out = append(out, x) }
	w64 := func(x uint64) {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], x)
		out = append(out, tmp[:]...)
	}
	writeStr := func(str string) {
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(len(str)))
		out = append(out, tmp[:]...)
		out = append(out, str...)
	}

	w8(codecVersion)
	w64(s.SessionID)
	w8(byte(s.Phase))
	w8(s.CurrentTurn)
	w8(s.CurrentChamber)
	w8(s.HazardPosition)
	w64(s.ShotsFired)
	out = append(out, s.HazardCommitment[:]...)

	w8(byte(len(s.Players)))
	for i := range s.Players {
		p := &s.Players[i]
		writeStr(p.Address)
		if p.Alive {
			w8(1)
		} else {
			w8(0)
		}
		w64(uint64(p.Points))
	}

	w8(byte(len(s.Eliminated)))
	for _, addr := range s.Eliminated {
		writeStr(addr)
	}

	if s.Winner != nil {
		w8(1)
		writeStr(*s.Winner)
	} else {
		w8(0)
	}

	writeStr(s.HubPlayer1)
	writeStr(s.HubPlayer2)
	return out
}

// decodeSession reads bytes from chain storage and reconstructs a *Session,
// ensuring no trailing bytes remain.
func decodeSession(b []byte, chain SDKInterface) *Session {
	r := &rd{b: b, chain: chain}
	require(r.u8() == codecVersion, "unsupported version", chain)

	s := &Session{}
	s.SessionID = r.u64()
	s.Phase = Phase(r.u8())
	s.CurrentTurn = r.u8()
	s.CurrentChamber = r.u8()
	s.HazardPosition = r.u8()
	s.ShotsFired = r.u64()
	copy(s.HazardCommitment[:], r.bytes(32))

	playerCount := int(r.u8())
	s.Players = make([]Player, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		p := Player{}
		p.Address = r.str()
		p.Alive = r.u8() == 1
		p.Points = int64(r.u64())
		s.Players = append(s.Players, p)
	}

	elimCount := int(r.u8())
	s.Eliminated = make([]string, 0, elimCount)
	for i := 0; i < elimCount; i++ {
		s.Eliminated = append(s.Eliminated, r.str())
	}

	if r.u8() == 1 {
		w := r.str()
		s.Winner = &w
	}

	s.HubPlayer1 = r.str()
	s.HubPlayer2 = r.str()

	r.mustEnd()
	return s
}

// rd is a binary reader utility over a byte slice,
// providing big-endian integer reads with safety checks.
type rd struct {
	b     []byte // raw buffer
	i     int    // current read index
	chain SDKInterface
}

// need ensures that n bytes are available from current position.
func (r *rd) need(n int) { require(r.i+n <= len(r.b), "decode overflow", r.chain) }

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

// str reads a length-prefixed string (2-byte length).
func (r *rd) str() string {
	r.need(2)
	l := int(binary.BigEndian.Uint16(r.b[r.i : r.i+2]))
	r.i += 2
	return string(r.bytes(l))
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() { require(r.i == len(r.b), "trailing bytes", r.chain) }

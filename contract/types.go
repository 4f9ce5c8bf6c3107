package main

// Phase is the lifecycle stage of a session.
type Phase uint8

const (
	Waiting  Phase = 0 // lobby open, players joining
	Playing  Phase = 1 // revolver loaded, turns running
	Finished Phase = 2 // one player left standing
)

const (
	// minPlayers is the smallest roster the host can start with.
	minPlayers = 2
	// maxPlayers caps the lobby.
	maxPlayers = 3
	// numChambers is the cylinder size; chamber indices are 0..5.
	numChambers = 6
)

// Player is one roster entry. Alive flips to false exactly once;
// entries are never removed.
type Player struct {
	Address string `json:"address"`
	Alive   bool   `json:"alive"`
	Points  int64  `json:"points"`
}

// Session is the full state of one game, keyed by SessionID.
//
// Players keeps join order, which doubles as turn order; the player at
// index 0 is the host. HubPlayer1/HubPlayer2 snapshot the first two
// joiners because the scoring hub only speaks a 2-player interface.
type Session struct {
	SessionID        uint64   `json:"session_id"`
	Phase            Phase    `json:"phase"`
	CurrentTurn      uint8    `json:"current_turn"`
	CurrentChamber   uint8    `json:"current_chamber"`
	HazardCommitment [32]byte `json:"-"`
	HazardPosition   uint8    `json:"hazard_position"`
	ShotsFired       uint64   `json:"shots_fired"`
	Players          []Player `json:"players"`
	Eliminated       []string `json:"eliminated"`
	Winner           *string  `json:"winner"`
	HubPlayer1       string   `json:"hub_player1"`
	HubPlayer2       string   `json:"hub_player2"`
}

package main

// Abort tags surfaced to callers. Game entry points fail with exactly one
// tag from this closed set; clients match on the string verbatim.
const (
	errGameNotFound     = "GameNotFound"
	errNotPlayer        = "NotPlayer"
	errWrongPhase       = "WrongPhase"
	errNotYourTurn      = "NotYourTurn"
	errGameAlreadyEnded = "GameAlreadyEnded"
	errLobbyFull        = "LobbyFull"
	errAlreadyJoined    = "AlreadyJoined"
	errPlayerEliminated = "PlayerEliminated"
	errInvalidProof     = "InvalidProof"
	errInvalidChamber   = "InvalidChamber"
	errNotEnoughPlayers = "NotEnoughPlayers"
	errAlreadyStarted   = "AlreadyStarted"
)

// Config surface tags, outside the game error set.
const (
	errNotAdmin           = "NotAdmin"
	errNotInitialized     = "NotInitialized"
	errAlreadyInitialized = "AlreadyInitialized"
	errHubNotSet          = "HubNotSet"
)

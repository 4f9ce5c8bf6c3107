package main

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and attributes,
// and logs it to the blockchain state as JSON.
func emitEvent(chain SDKInterface, eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitLobbyJoined emits an event when a player enters a session lobby.
func EmitLobbyJoined(chain SDKInterface, sessionId uint64, player string, count int) {
	emitEvent(chain, "lobbyJoined", map[string]string{
		"session": UInt64ToString(sessionId),
		"player":  player,
		"count":   UInt64ToString(uint64(count)),
	})
}

// EmitRevolverLoaded emits an event when the host commits the hazard
// position and play begins.
func EmitRevolverLoaded(chain SDKInterface, sessionId uint64) {
	emitEvent(chain, "revolverLoaded", map[string]string{
		"session": UInt64ToString(sessionId),
	})
}

// EmitShotMissed emits an event when a shot lands on an empty chamber.
func EmitShotMissed(chain SDKInterface, sessionId uint64, player string) {
	emitEvent(chain, "shotMissed", map[string]string{
		"session": UInt64ToString(sessionId),
		"player":  player,
	})
}

// EmitPlayerEliminated emits an event when a shot is fatal.
func EmitPlayerEliminated(chain SDKInterface, sessionId uint64, player string) {
	emitEvent(chain, "playerEliminated", map[string]string{
		"session": UInt64ToString(sessionId),
		"player":  player,
	})
}

// EmitCylinderReloaded emits an event when the cylinder auto-reloads after
// an elimination. The new hazard position is derivable from public state,
// so it is deliberately not included.
func EmitCylinderReloaded(chain SDKInterface, sessionId uint64) {
	emitEvent(chain, "cylinderReloaded", map[string]string{
		"session": UInt64ToString(sessionId),
	})
}

// EmitSessionWon emits the terminal event naming the last player standing.
func EmitSessionWon(chain SDKInterface, sessionId uint64, winner string) {
	emitEvent(chain, "sessionWon", map[string]string{
		"session": UInt64ToString(sessionId),
		"winner":  winner,
	})
}

// EmitUpgradeAnnounced emits the code hash recorded by admin_upgrade.
func EmitUpgradeAnnounced(chain SDKInterface, codeHash string) {
	emitEvent(chain, "upgradeAnnounced", map[string]string{
		"codeHash": codeHash,
	})
}

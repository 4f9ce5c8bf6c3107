//go:build !test

package main

// Excluded from test builds: wasm export directives only compile for the
// wasm target the contract ships as.

//go:wasmexport start_game
func StartGame(payload *string) *string {
	return startGameImpl(payload, RealSDK{})
}

//go:wasmexport end_game
func EndGame(payload *string) *string {
	return endGameImpl(payload, RealSDK{})
}

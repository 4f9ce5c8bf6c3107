//go:build !test

package main

// Exported entry points. Thin wrappers binding the production sdk; all
// logic lives in the *Impl functions so tests can inject FakeSDK.
// Excluded from test builds: wasm export directives only compile for the
// wasm target the contract ships as.

//go:wasmexport r_join
func JoinSession(payload *string) *string {
	return joinImpl(payload, RealSDK{})
}

//go:wasmexport r_load
func LoadRevolver(payload *string) *string {
	return loadRevolverImpl(payload, RealSDK{})
}

//go:wasmexport r_fire
func Fire(payload *string) *string {
	return fireImpl(payload, RealSDK{})
}

//go:wasmexport r_get
func GetSession(payload *string) *string {
	return getSessionImpl(payload, RealSDK{})
}

//go:wasmexport r_alive
func AlivePlayers(payload *string) *string {
	return alivePlayersImpl(payload, RealSDK{})
}

//go:wasmexport r_hash
func ComputeCommitment(payload *string) *string {
	return computeCommitmentImpl(payload, RealSDK{})
}

//go:wasmexport admin_init
func AdminInit(payload *string) *string {
	return adminInitImpl(payload, RealSDK{})
}

//go:wasmexport admin_get_admin
func AdminGetAdmin(payload *string) *string {
	return getAdminImpl(RealSDK{})
}

//go:wasmexport admin_set_admin
func AdminSetAdmin(payload *string) *string {
	return setAdminImpl(payload, RealSDK{})
}

//go:wasmexport admin_get_hub
func AdminGetHub(payload *string) *string {
	return getHubImpl(RealSDK{})
}

//go:wasmexport admin_set_hub
func AdminSetHub(payload *string) *string {
	return setHubImpl(payload, RealSDK{})
}

//go:wasmexport admin_upgrade
func AdminUpgrade(payload *string) *string {
	return upgradeImpl(payload, RealSDK{})
}

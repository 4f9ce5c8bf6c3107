//go:build !test

package sdk

// Host bindings provided by the VSC wasm runtime. The contract is compiled
// with TinyGo; on-chain state, env access and cross-contract calls are host
// calls, not in-process facilities.

//go:wasmimport sdk db.setObject
func hostStateSet(key, value *string)

//go:wasmimport sdk db.getObject
func hostStateGet(key *string) *string

//go:wasmimport sdk system.getEnvKey
func hostGetEnvKey(key *string) *string

//go:wasmimport sdk system.log
func hostLog(msg *string)

//go:wasmimport sdk system.abort
func hostAbort(msg *string)

//go:wasmimport sdk contracts.call
func hostContractCall(contractId, method, payload *string) *string

// StateSetObject writes a value under key in this contract's state.
func StateSetObject(key, value string) {
	hostStateSet(&key, &value)
}

// StateGetObject reads a value by key. Returns nil when the key is unset.
func StateGetObject(key string) *string {
	return hostStateGet(&key)
}

// GetEnvKey reads a single field of the call environment,
// e.g. "msg.sender" or "contract.id".
func GetEnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

// Log emits a log line visible to indexers and clients.
func Log(msg string) {
	hostLog(&msg)
}

// Abort terminates the current call. The host discards all state writes
// made by the call, so aborting never leaves partial mutations behind.
func Abort(msg string) {
	hostAbort(&msg)
}

// ContractCall invokes method on another contract with the given payload.
// A failing callee aborts this call as well.
func ContractCall(contractId Address, method, payload string) *string {
	id := string(contractId)
	return hostContractCall(&id, &method, &payload)
}

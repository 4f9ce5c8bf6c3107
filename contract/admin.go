package main

// Contract configuration: admin identity and scoring hub address, stored
// under cfg: keys. Pure pass-through config, gated on the admin account.

const (
	adminKey   = "cfg:admin"
	hubKey     = "cfg:hub"
	upgradeKey = "cfg:upgrade"
)

// adminInitImpl seeds admin and hub address. Callable once, by anyone,
// right after deployment.
// Payload: "adminAddress|hubAddress"
func adminInitImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	admin := nextField(&in)
	hub := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(admin != "", "admin address is mandatory", chain)
	require(hub != "", "hub address is mandatory", chain)

	require(chain.StateGetObject(adminKey) == nil, errAlreadyInitialized, chain)

	chain.StateSetObject(adminKey, admin)
	chain.StateSetObject(hubKey, hub)
	return nil
}

func requireAdmin(chain SDKInterface) {
	ptr := chain.StateGetObject(adminKey)
	require(ptr != nil && *ptr != "", errNotInitialized, chain)
	require(senderAddress(chain) == *ptr, errNotAdmin, chain)
}

func getAdminImpl(chain SDKInterface) *string {
	ptr := chain.StateGetObject(adminKey)
	require(ptr != nil && *ptr != "", errNotInitialized, chain)
	return ptr
}

func setAdminImpl(payload *string, chain SDKInterface) *string {
	newAdmin := *payload
	require(newAdmin != "", "admin address is mandatory", chain)
	requireAdmin(chain)
	chain.StateSetObject(adminKey, newAdmin)
	return nil
}

func getHubImpl(chain SDKInterface) *string {
	ptr := chain.StateGetObject(hubKey)
	require(ptr != nil && *ptr != "", errHubNotSet, chain)
	return ptr
}

func setHubImpl(payload *string, chain SDKInterface) *string {
	newHub := *payload
	require(newHub != "", "hub address is mandatory", chain)
	requireAdmin(chain)
	chain.StateSetObject(hubKey, newHub)
	return nil
}

// upgradeImpl records the announced replacement code hash. Code swaps
// happen through host deployment transactions; keeping the hash on-chain
// lets anyone audit that the deployed bytes match the announcement.
// Payload: "codeHashHex"
func upgradeImpl(payload *string, chain SDKInterface) *string {
	hash := decodeHex32(*payload, "code hash", chain)
	requireAdmin(chain)
	chain.StateSetObject(upgradeKey, encodeHex(hash[:]))
	EmitUpgradeAnnounced(chain, encodeHex(hash[:]))
	return nil
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"
)

func TestAdminInitOnce(t *testing.T) {
	chain := newChain(t)

	assert.Equal(t, testAdmin, *getAdminImpl(chain))
	assert.Equal(t, testHub, *getHubImpl(chain))

	payload := "hive:other|vsc:other"
	defer expectAbort(t, chain, errAlreadyInitialized)
	adminInitImpl(&payload, chain)
}

func TestSetHubNonAdminRejected(t *testing.T) {
	chain := newChain(t)
	chain.sender = "hive:p1"

	payload := "vsc:evil-hub"
	defer expectAbort(t, chain, errNotAdmin)
	setHubImpl(&payload, chain)
}

func TestSetHubByAdmin(t *testing.T) {
	chain := newChain(t)

	payload := "vsc:hub2"
	setHubImpl(&payload, chain)
	assert.Equal(t, "vsc:hub2", *getHubImpl(chain))
}

func TestSetAdminRotates(t *testing.T) {
	chain := newChain(t)

	payload := "hive:admin2"
	setAdminImpl(&payload, chain)
	assert.Equal(t, "hive:admin2", *getAdminImpl(chain))

	// The previous admin lost the gate.
	hub := "vsc:hub3"
	defer expectAbort(t, chain, errNotAdmin)
	setHubImpl(&hub, chain)
}

func TestUpgradeRecordsHash(t *testing.T) {
	chain := newChain(t)
	hash := strings.Repeat("ab", 32)

	payload := hash
	upgradeImpl(&payload, chain)

	stored := chain.StateGetObject(upgradeKey)
	req.NotNil(t, stored)
	assert.Equal(t, hash, *stored)
}

func TestUpgradeNonAdminRejected(t *testing.T) {
	chain := newChain(t)
	chain.sender = "hive:p1"

	payload := strings.Repeat("ab", 32)
	defer expectAbort(t, chain, errNotAdmin)
	upgradeImpl(&payload, chain)
}

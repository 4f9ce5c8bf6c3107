package main

import (
	"strings"
	"testing"
)

const (
	testAdmin = "hive:admin"
	testHub   = "vsc:hub"
)

var (
	validProof = strings.Repeat("aa", 32)
	zeroProof  = strings.Repeat("00", 32)
)

// newChain builds a FakeSDK with admin and hub config already seeded,
// the state every deployed contract starts from.
func newChain(t *testing.T) *FakeSDK {
	t.Helper()
	chain := NewFakeSDK(testAdmin)
	payload := testAdmin + "|" + testHub
	adminInitImpl(&payload, chain)
	return chain
}

func joinAs(t *testing.T, chain *FakeSDK, sender string, sessionId uint64, points int64) string {
	t.Helper()
	chain.sender = sender
	payload := UInt64ToString(sessionId) + "|" + Int64ToString(points)
	resp := joinImpl(&payload, chain)
	if resp == nil {
		t.Fatalf("join returned nil response")
	}
	return *resp
}

func testSalt() [32]byte {
	var salt [32]byte
	for i := range salt {
		salt[i] = 0x2a
	}
	return salt
}

// loadAs has the given sender commit the hazard position, with a
// commitment built the same way an off-chain host would.
func loadAs(t *testing.T, chain *FakeSDK, sender string, sessionId uint64, position uint8) {
	t.Helper()
	chain.sender = sender
	commitment := computeCommitment(testSalt(), position)
	payload := UInt64ToString(sessionId) + "|" + encodeHex(commitment[:]) + "|" + UInt64ToString(uint64(position))
	loadRevolverImpl(&payload, chain)
}

func fireAs(t *testing.T, chain *FakeSDK, sender string, sessionId uint64, proofHex string) string {
	t.Helper()
	chain.sender = sender
	payload := UInt64ToString(sessionId) + "|" + proofHex
	resp := fireImpl(&payload, chain)
	if resp == nil {
		t.Fatalf("fire returned nil response")
	}
	return *resp
}

func mustSession(t *testing.T, chain *FakeSDK, sessionId uint64) *Session {
	t.Helper()
	return loadSession(sessionId, chain)
}

// helper for check for aborts in testing mode
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}

// ---------- Env Helpers ----------

func senderAddress(chain SDKInterface) string {
	ptr := chain.GetEnvKey("msg.sender")
	require(ptr != nil && *ptr != "", "sender missing", chain)
	return *ptr
}

func contractId(chain SDKInterface) string {
	ptr := chain.GetEnvKey("contract.id")
	require(ptr != nil && *ptr != "", "contract id missing", chain)
	return *ptr
}

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- Parsing Helpers ----------

// nextField pops the next '|' separated field from s.
func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func parseU64Fast(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}

func parseU8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

// parseI64 parses a signed decimal, aborting on malformed input.
// Points may be negative, so the fast unsigned parsers don't apply.
func parseI64(s string, chain SDKInterface) int64 {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		chain.Abort(fmt.Sprintf("failed to parse '%s' to int64: %v", s, err))
	}
	return val
}

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

func Int64ToString(val int64) string {
	return strconv.FormatInt(val, 10)
}

// ---------- Hex Helpers ----------

// decodeHex32 parses a 64-char hex field into a fixed 32-byte value.
// Commitments, salts and proofs all travel as this shape.
func decodeHex32(s string, what string, chain SDKInterface) [32]byte {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		chain.Abort("invalid " + what + ": want 32 bytes hex")
	}
	copy(out[:], b)
	return out
}

func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

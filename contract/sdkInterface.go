package main

import (
	"fmt"
	"zk-ruleta/sdk"
)

// --- SDK interface abstraction ---

// SDKInterface is the slice of the host sdk the contract uses.
// Entry point impls take it as a parameter so tests can inject FakeSDK.
type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	GetEnvKey(key string) *string
	Log(msg string)
	Abort(msg string)
	ContractCall(contractId sdk.Address, method, payload string) *string
}

// RealSDK is the production implementation that forwards to zk-ruleta/sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) GetEnvKey(key string) *string      { return sdk.GetEnvKey(key) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) ContractCall(contractId sdk.Address, method, payload string) *string {
	return sdk.ContractCall(contractId, method, payload)
}

// fake sdk for testing

// ContractCallRecord captures one outgoing cross-contract call.
type ContractCallRecord struct {
	Contract sdk.Address
	Method   string
	Payload  string
}

// FakeSDK keeps chain state in a map and records logs and contract calls.
// Abort panics, matching the host behavior of never returning; tests
// recover via expectAbort. Because every entry point validates before its
// first StateSetObject, an aborted call leaves the map untouched, same as
// the host discarding writes.
type FakeSDK struct {
	state      map[string]string
	sender     string
	contractId string
	logs       []string
	calls      []ContractCallRecord
	aborted    bool
	abortMsg   string
}

func NewFakeSDK(sender string) *FakeSDK {
	return &FakeSDK{
		state:      make(map[string]string),
		sender:     sender,
		contractId: "vsc:ruleta",
	}
}

func (f *FakeSDK) StateSetObject(key, value string) {
	f.state[key] = value
}

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) GetEnvKey(key string) *string {
	switch key {
	case "msg.sender":
		return &f.sender
	case "contract.id":
		return &f.contractId
	}
	return nil
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) ContractCall(contractId sdk.Address, method, payload string) *string {
	f.calls = append(f.calls, ContractCallRecord{
		Contract: contractId,
		Method:   method,
		Payload:  payload,
	})
	return nil
}
